package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/securelogin/internal/accounts"
	"github.com/dmitrijs2005/securelogin/internal/common"
	"github.com/dmitrijs2005/securelogin/internal/policy"
)

func (a *App) login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter Username:", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, a.inFd, "Enter Password:", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.accounts.Login(ctx, username, string(password))
	if errors.Is(err, accounts.ErrInvalidCredentials) {
		a.println(errorStyle.Render("Invalid Username or Password!"))
		return nil
	}
	if err != nil {
		return err
	}

	a.println(successStyle.Render("Login Successful! Redirecting..."))
	a.setPassword(password)
	a.session.LogIn(username)
	a.showScreen()
	return nil
}

// printStrength shows the verdict headline in the severity colour followed
// by the feedback lines.
func (a *App) printStrength(res policy.StrengthResult) {
	a.println(severityStyle(res.Severity).Render(res.Summary()))
	for _, msg := range res.Feedback {
		a.println("  " + msg)
	}
}

func (a *App) register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter Username:", a.out)
	if err != nil {
		return err
	}

	valid, msg, err := a.accounts.ValidateUsername(ctx, username)
	if err != nil {
		return err
	}
	if valid {
		a.println(successStyle.Render(msg))
	} else {
		a.println(errorStyle.Render(msg))
	}

	password, err := GetPassword(a.reader, a.inFd, "Enter Password:", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	strength, err := a.accounts.Evaluate(ctx, string(password))
	if err != nil {
		return err
	}
	a.printStrength(strength)

	err = a.accounts.Register(ctx, username, string(password))
	switch {
	case errors.Is(err, accounts.ErrUsernameTaken):
		a.println(errorStyle.Render("Username already exists! Choose a different one."))
	case errors.Is(err, accounts.ErrInvalidUsername), errors.Is(err, accounts.ErrWeakPassword):
		a.println(errorStyle.Render("Invalid Username or Weak Password!"))
	case err != nil:
		return err
	default:
		a.println(successStyle.Render("Registration Successful! Redirecting to Login Page..."))
		a.session.Screen = ScreenLogin
		a.showScreen()
	}
	return nil
}

func (a *App) suggest(ctx context.Context) error {
	pw, err := a.accounts.Generate(ctx)
	if err != nil {
		return err
	}
	a.println(policy.SuggestionPrefix + pw)
	return nil
}
