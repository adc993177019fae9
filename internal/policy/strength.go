package policy

import (
	"strings"
	"unicode/utf8"
)

// Verdict is the strength class of a password.
type Verdict string

const (
	VerdictStrong   Verdict = "Strong"
	VerdictModerate Verdict = "Moderate"
	VerdictWeak     Verdict = "Weak"
)

// Severity tags a result for presentation only.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

const (
	// MinPasswordLength is the shortest length that passes the length rule.
	MinPasswordLength = 8

	// MaxScore is the number of strength rules.
	MaxScore = 4

	// AcceptableScore is the lowest score allowed when registering or
	// changing a password.
	AcceptableScore = 3
)

// Feedback lines, one per failed rule.
const (
	FeedbackLength  = "Password should be at least 8 characters long."
	FeedbackCase    = "Include both uppercase and lowercase letters."
	FeedbackDigit   = "Add at least one number (0-9)."
	FeedbackSpecial = "Include at least one special character (!@#$%^&*)."

	// SuggestionPrefix starts the extra feedback line of a weak result.
	SuggestionPrefix = "Suggested Strong Password: "
)

// StrengthResult is the outcome of one evaluation.
type StrengthResult struct {
	Verdict  Verdict  `json:"verdict"`
	Feedback []string `json:"feedback"`
	Severity Severity `json:"severity"`
	Score    int      `json:"score"`

	// Suggestion is set only for weak passwords; it is also the last
	// Feedback line, prefixed with SuggestionPrefix.
	Suggestion string `json:"suggestion,omitempty"`
}

// Summary returns the headline shown next to the verdict.
func (r StrengthResult) Summary() string {
	switch r.Verdict {
	case VerdictStrong:
		return "Strong Password!"
	case VerdictModerate:
		return "Moderate Password - Consider adding more security features."
	default:
		return "Weak Password - Improve it using the suggestions above."
	}
}

// Acceptable reports whether the password may be stored.
func (r StrengthResult) Acceptable() bool {
	return r.Score >= AcceptableScore
}

// Evaluator scores passwords and suggests a replacement for weak ones.
type Evaluator struct {
	gen *Generator
}

// NewEvaluator returns an Evaluator taking suggestions from gen. A nil gen
// uses the process-wide generator.
func NewEvaluator(gen *Generator) *Evaluator {
	if gen == nil {
		gen = defaultGenerator
	}
	return &Evaluator{gen: gen}
}

// Evaluate checks password against the four strength rules.
func (e *Evaluator) Evaluate(password string) StrengthResult {
	var (
		score    int
		feedback []string
	)

	if utf8.RuneCountInString(password) >= MinPasswordLength {
		score++
	} else {
		feedback = append(feedback, FeedbackLength)
	}

	if strings.ContainsAny(password, upperLetters) && strings.ContainsAny(password, lowerLetters) {
		score++
	} else {
		feedback = append(feedback, FeedbackCase)
	}

	if strings.ContainsAny(password, digits) {
		score++
	} else {
		feedback = append(feedback, FeedbackDigit)
	}

	if strings.ContainsAny(password, SpecialChars) {
		score++
	} else {
		feedback = append(feedback, FeedbackSpecial)
	}

	res := StrengthResult{Score: score}
	switch {
	case score == MaxScore:
		res.Verdict, res.Severity = VerdictStrong, SeveritySuccess
	case score == AcceptableScore:
		res.Verdict, res.Severity = VerdictModerate, SeverityWarning
	default:
		res.Verdict, res.Severity = VerdictWeak, SeverityError
		res.Suggestion = e.gen.Generate()
		feedback = append(feedback, SuggestionPrefix+res.Suggestion)
	}
	if feedback == nil {
		feedback = []string{}
	}
	res.Feedback = feedback
	return res
}

var defaultEvaluator = NewEvaluator(nil)

// Evaluate scores password using the process-wide generator for suggestions.
func Evaluate(password string) StrengthResult {
	return defaultEvaluator.Evaluate(password)
}
