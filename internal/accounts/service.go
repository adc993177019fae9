// Package accounts implements the registration, login and credential update
// rules on top of a credential store.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/securelogin/internal/policy"
)

// UpdateRequest carries the optional changes submitted from the dashboard.
// Empty fields mean "leave unchanged". CurrentPassword proves the caller owns
// the account; it is checked at the server boundary, in-process callers are
// trusted.
type UpdateRequest struct {
	CurrentPassword string `json:"-"`
	NewUsername    string `json:"new_username,omitempty"`
	NewPassword    string `json:"new_password,omitempty"`
	RepeatPassword string `json:"repeat_password,omitempty"`
}

// UpdateResult reports which parts of an update were applied. Username is the
// user's name after the update.
type UpdateResult struct {
	Username        string `json:"username"`
	Renamed         bool   `json:"renamed"`
	PasswordChanged bool   `json:"password_changed"`
}

// Changed reports whether anything was written.
func (r UpdateResult) Changed() bool {
	return r.Renamed || r.PasswordChanged
}

// Service is implemented by the store-backed LocalService and by the gRPC
// client.
type Service interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Update(ctx context.Context, current string, req UpdateRequest) (UpdateResult, error)

	Evaluate(ctx context.Context, password string) (policy.StrengthResult, error)
	Generate(ctx context.Context) (string, error)
	ValidateUsername(ctx context.Context, username string) (bool, string, error)
}
