package policy

import "regexp"

const (
	MinUsernameLength = 5
	MaxUsernameLength = 15

	UsernameValidMessage   = "Valid Username!"
	UsernameInvalidMessage = "Username must be 5-15 characters long and contain only lowercase letters, numbers, '_', '-', and '.'"
)

// usernamePattern must span the whole input; Go's $ only matches at the end
// of text outside multi-line mode.
var usernamePattern = regexp.MustCompile(`^[a-z0-9_.-]{5,15}$`)

// ValidateUsername reports whether username is acceptable, along with the
// message to show the user.
func ValidateUsername(username string) (bool, string) {
	if usernamePattern.MatchString(username) {
		return true, UsernameValidMessage
	}
	return false, UsernameInvalidMessage
}
