package cli

import (
	"bytes"
	"context"
	"errors"

	"github.com/dmitrijs2005/securelogin/internal/accounts"
	"github.com/dmitrijs2005/securelogin/internal/common"
)

// updateMessages are shown, in this order, for each rejected part of an
// update.
var updateMessages = []struct {
	err error
	msg string
}{
	{accounts.ErrUsernameTaken, "Username already taken! Choose a different one."},
	{accounts.ErrInvalidUsername, "Invalid Username Format!"},
	{accounts.ErrPasswordMismatch, "Passwords do not match!"},
	{accounts.ErrWeakPassword, "Weak Password! Please improve it."},
}

func (a *App) update(ctx context.Context) error {
	newUsername, err := GetSimpleText(a.reader, "Change Username (Optional):", a.out)
	if err != nil {
		return err
	}

	newPassword, err := GetPassword(a.reader, a.inFd, "Change Password (Optional):", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	var repeat []byte
	if len(newPassword) > 0 {
		repeat, err = GetPassword(a.reader, a.inFd, "Repeat New Password:", a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(repeat)
	}

	res, err := a.accounts.Update(ctx, a.session.CurrentUser, accounts.UpdateRequest{
		CurrentPassword: string(a.password),
		NewUsername:     newUsername,
		NewPassword:     string(newPassword),
		RepeatPassword:  string(repeat),
	})

	switch {
	case errors.Is(err, accounts.ErrUserNotFound):
		a.println(errorStyle.Render("Your account no longer exists. Logging out."))
		return a.logout(ctx)
	case errors.Is(err, accounts.ErrInvalidCredentials):
		a.println(errorStyle.Render("Your credentials are no longer valid. Logging out."))
		return a.logout(ctx)
	}

	if res.Renamed {
		a.session.CurrentUser = res.Username
	}
	if res.PasswordChanged {
		a.setPassword(newPassword)
	}

	handled := false
	for _, m := range updateMessages {
		if errors.Is(err, m.err) {
			a.println(errorStyle.Render(m.msg))
			handled = true
		}
	}

	if res.Changed() {
		a.println(successStyle.Render("Credentials Updated Successfully!"))
	} else if err == nil {
		a.println(mutedStyle.Render("Nothing to update."))
	}

	if err != nil && !handled {
		return err
	}
	return nil
}

func (a *App) whoami(context.Context) error {
	a.println("Logged in as " + a.session.CurrentUser)
	return nil
}

// setPassword keeps a copy of pw for later updates, wiping the previous one.
func (a *App) setPassword(pw []byte) {
	common.WipeByteArray(a.password)
	a.password = bytes.Clone(pw)
}

func (a *App) logout(context.Context) error {
	a.setPassword(nil)
	a.session.LogOut()
	a.println("Logged out.")
	a.showScreen()
	return nil
}
