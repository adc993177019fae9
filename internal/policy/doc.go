// Package policy holds the credential rules shared by every SecureLogin
// component: password strength scoring, strong password generation and
// username format validation.
//
// All functions are pure and total. They never return errors, accept any
// string (empty, very long, non-ASCII) and keep no shared mutable state, so
// they are safe to call from multiple goroutines. The only randomness is the
// suggestion drawn by the Generator for weak passwords; the Source it draws
// from can be injected for deterministic tests.
package policy
