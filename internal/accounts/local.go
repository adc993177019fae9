package accounts

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/securelogin/internal/logging"
	"github.com/dmitrijs2005/securelogin/internal/policy"
	"github.com/dmitrijs2005/securelogin/internal/store"
)

// LocalService applies the account rules directly against a store.
// Every mutation loads the full mapping and saves it back.
type LocalService struct {
	store store.Store
	eval  *policy.Evaluator
	gen   *policy.Generator
	log   logging.Logger

	// serializes load-modify-save cycles within this process
	mu sync.Mutex
}

// NewLocalService returns a LocalService. A nil gen uses the process-wide
// generator.
func NewLocalService(st store.Store, gen *policy.Generator, log logging.Logger) *LocalService {
	if gen == nil {
		gen = policy.NewGenerator(nil)
	}
	if log == nil {
		log = logging.Nop()
	}
	return &LocalService{
		store: st,
		eval:  policy.NewEvaluator(gen),
		gen:   gen,
		log:   log.With("module", "accounts"),
	}
}

func (s *LocalService) Register(ctx context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}

	if hasUser(creds, username) {
		return ErrUsernameTaken
	}
	if !validUsername(username) {
		return ErrInvalidUsername
	}
	if !s.eval.Evaluate(password).Acceptable() {
		return ErrWeakPassword
	}

	creds[username] = password
	if err := s.store.Save(ctx, creds); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	s.log.Info(ctx, "user registered", "username", username)
	return nil
}

func (s *LocalService) Login(ctx context.Context, username, password string) error {
	creds, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}

	stored, ok := creds[username]
	if !ok || subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		s.log.Debug(ctx, "login rejected", "username", username)
		return ErrInvalidCredentials
	}

	s.log.Info(ctx, "user logged in", "username", username)
	return nil
}

// Update applies the rename and the password change independently. Whatever
// succeeded is saved once; failures are joined into the returned error, so a
// caller may get both a non-empty result and an error.
func (s *LocalService) Update(ctx context.Context, current string, req UpdateRequest) (UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := UpdateResult{Username: current}

	creds, err := s.store.Load(ctx)
	if err != nil {
		return res, fmt.Errorf("load credentials: %w", err)
	}
	if !hasUser(creds, current) {
		return res, ErrUserNotFound
	}

	var errs []error

	if req.NewUsername != "" && req.NewUsername != current {
		switch {
		case hasUser(creds, req.NewUsername):
			errs = append(errs, ErrUsernameTaken)
		case !validUsername(req.NewUsername):
			errs = append(errs, ErrInvalidUsername)
		default:
			creds[req.NewUsername] = creds[current]
			delete(creds, current)
			res.Username = req.NewUsername
			res.Renamed = true
		}
	}

	if req.NewPassword != "" {
		switch {
		case req.NewPassword != req.RepeatPassword:
			errs = append(errs, ErrPasswordMismatch)
		case !s.eval.Evaluate(req.NewPassword).Acceptable():
			errs = append(errs, ErrWeakPassword)
		default:
			creds[res.Username] = req.NewPassword
			res.PasswordChanged = true
		}
	}

	if res.Changed() {
		if err := s.store.Save(ctx, creds); err != nil {
			return UpdateResult{Username: current}, fmt.Errorf("save credentials: %w", err)
		}
		s.log.Info(ctx, "credentials updated",
			"username", res.Username, "renamed", res.Renamed, "password_changed", res.PasswordChanged)
	}

	return res, errors.Join(errs...)
}

func (s *LocalService) Evaluate(_ context.Context, password string) (policy.StrengthResult, error) {
	return s.eval.Evaluate(password), nil
}

func (s *LocalService) Generate(context.Context) (string, error) {
	return s.gen.Generate(), nil
}

func (s *LocalService) ValidateUsername(_ context.Context, username string) (bool, string, error) {
	ok, msg := policy.ValidateUsername(username)
	return ok, msg, nil
}

func hasUser(creds store.Credentials, username string) bool {
	_, ok := creds[username]
	return ok
}

func validUsername(username string) bool {
	ok, _ := policy.ValidateUsername(username)
	return ok
}
