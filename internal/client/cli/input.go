package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// noTerminal is the fd passed to GetPassword for input that is not a file.
const noTerminal = -1

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// Surrounding whitespace is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// terminalFd returns the descriptor behind in, or noTerminal when in is not
// an *os.File.
func terminalFd(in io.Reader) int {
	if f, ok := in.(*os.File); ok {
		return int(f.Fd())
	}
	return noTerminal
}

// GetPassword prints prompt to w and reads a password. When fd is a terminal
// the input is not echoed; otherwise one line is taken from reader, so
// scripted input works. Only the line ending is stripped. reader must wrap
// the same input as fd.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(reader *bufio.Reader, fd int, prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return nil, err
	}

	if fd != noTerminal && isTerminal(fd) {
		pw, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return nil, err
		}
		return pw, nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
