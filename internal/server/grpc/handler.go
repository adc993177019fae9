package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/securelogin/internal/accounts"
	"github.com/dmitrijs2005/securelogin/internal/logging"
	"github.com/dmitrijs2005/securelogin/internal/rpc"
)

type handler struct {
	accounts accounts.Service
	logger   logging.Logger
}

var _ rpc.AccountServiceServer = (*handler)(nil)

func (h *handler) fail(ctx context.Context, op string, err error) error {
	if len(rpc.Reasons(err)) == 0 {
		h.logger.Error(ctx, op+" failed", "error", err)
	} else {
		h.logger.Info(ctx, op+" rejected", "reason", err.Error())
	}
	return rpc.ToStatus(err)
}

func (h *handler) Register(ctx context.Context, req *rpc.RegisterRequest) (*rpc.RegisterResponse, error) {
	if err := h.accounts.Register(ctx, req.Username, req.Password); err != nil {
		return nil, h.fail(ctx, "register", err)
	}
	h.logger.Info(ctx, "Registered", "username", req.Username)
	return &rpc.RegisterResponse{}, nil
}

func (h *handler) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.LoginResponse, error) {
	if err := h.accounts.Login(ctx, req.Username, req.Password); err != nil {
		return nil, h.fail(ctx, "login", err)
	}
	return &rpc.LoginResponse{Username: req.Username}, nil
}

// Update answers with the applied part of the change and the reasons of the
// rejected part. Only bad current credentials, a missing user or a backend
// failure is a status error.
func (h *handler) Update(ctx context.Context, req *rpc.UpdateRequest) (*rpc.UpdateResponse, error) {
	if err := h.accounts.Login(ctx, req.Current, req.CurrentPassword); err != nil {
		return nil, h.fail(ctx, "update", err)
	}

	res, err := h.accounts.Update(ctx, req.Current, accounts.UpdateRequest{
		NewUsername:    req.NewUsername,
		NewPassword:    req.NewPassword,
		RepeatPassword: req.RepeatPassword,
	})

	failures := rpc.Reasons(err)
	if errors.Is(err, accounts.ErrUserNotFound) || (err != nil && len(failures) == 0) {
		return nil, h.fail(ctx, "update", err)
	}

	if err != nil {
		h.logger.Info(ctx, "update partly rejected", "username", req.Current, "failures", failures)
	}
	return &rpc.UpdateResponse{
		Username:        res.Username,
		Renamed:         res.Renamed,
		PasswordChanged: res.PasswordChanged,
		Failures:        failures,
	}, nil
}

func (h *handler) EvaluatePassword(ctx context.Context, req *rpc.EvaluatePasswordRequest) (*rpc.EvaluatePasswordResponse, error) {
	res, err := h.accounts.Evaluate(ctx, req.Password)
	if err != nil {
		return nil, h.fail(ctx, "evaluate", err)
	}
	return &rpc.EvaluatePasswordResponse{Result: res}, nil
}

func (h *handler) GeneratePassword(ctx context.Context, _ *rpc.GeneratePasswordRequest) (*rpc.GeneratePasswordResponse, error) {
	pw, err := h.accounts.Generate(ctx)
	if err != nil {
		return nil, h.fail(ctx, "generate", err)
	}
	return &rpc.GeneratePasswordResponse{Password: pw}, nil
}

func (h *handler) ValidateUsername(ctx context.Context, req *rpc.ValidateUsernameRequest) (*rpc.ValidateUsernameResponse, error) {
	ok, msg, err := h.accounts.ValidateUsername(ctx, req.Username)
	if err != nil {
		return nil, h.fail(ctx, "validate username", err)
	}
	return &rpc.ValidateUsernameResponse{Valid: ok, Message: msg}, nil
}
