package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/securelogin/internal/policy"
)

var (
	colorSuccess = lipgloss.Color("#00ff00")
	colorWarning = lipgloss.Color("#ffaa00")
	colorError   = lipgloss.Color("#ff0000")
	colorPrimary = lipgloss.Color("#00ffff")
	colorMuted   = lipgloss.Color("#666666")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

func severityStyle(s policy.Severity) lipgloss.Style {
	switch s {
	case policy.SeveritySuccess:
		return successStyle
	case policy.SeverityWarning:
		return warningStyle
	default:
		return errorStyle
	}
}
