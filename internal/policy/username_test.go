package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"too short", "ab1", false},
		{"minimum length", "abcde", true},
		{"uppercase", "ABcde12", false},
		{"dots", "abc..de", true},
		{"all allowed symbols", "a_b-c.d9", true},
		{"four chars", "abcd", false},
		{"fifteen chars", strings.Repeat("a", 15), true},
		{"sixteen chars", strings.Repeat("a", 16), false},
		{"empty", "", false},
		{"space inside", "abc de", false},
		{"trailing newline", "abcde\n", false},
		{"leading junk", "!abcde", false},
		{"unicode letter", "abcdé", false},
		{"digits only", "12345", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidateUsername(tt.username)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, UsernameValidMessage, msg)
			} else {
				assert.Equal(t, UsernameInvalidMessage, msg)
			}
		})
	}
}

func TestValidateUsername_Idempotent(t *testing.T) {
	for _, u := range []string{"abcde", "ab", "ABCDE"} {
		first, _ := ValidateUsername(u)
		for range 3 {
			again, _ := ValidateUsername(u)
			assert.Equal(t, first, again)
		}
	}
}
