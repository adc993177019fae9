package rpc

import "github.com/dmitrijs2005/securelogin/internal/policy"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct{}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Username string `json:"username"`
}

type UpdateRequest struct {
	Current         string `json:"current"`
	CurrentPassword string `json:"current_password"`
	NewUsername     string `json:"new_username,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
	RepeatPassword  string `json:"repeat_password,omitempty"`
}

// UpdateResponse carries a possibly partial result. Failures lists the
// reasons (see Reason) of the parts that were rejected.
type UpdateResponse struct {
	Username        string   `json:"username"`
	Renamed         bool     `json:"renamed"`
	PasswordChanged bool     `json:"password_changed"`
	Failures        []string `json:"failures,omitempty"`
}

type EvaluatePasswordRequest struct {
	Password string `json:"password"`
}

type EvaluatePasswordResponse struct {
	Result policy.StrengthResult `json:"result"`
}

type GeneratePasswordRequest struct{}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

type ValidateUsernameRequest struct {
	Username string `json:"username"`
}

type ValidateUsernameResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}
