package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/planandgo/internal/client/services"
	"github.com/dmitrijs2005/planandgo/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errPasswordMismatch = errors.New("passwords do not match")

// Login prompts for credentials and stores the session on success. The
// password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		a.logger.Info(ctx, "login unsuccessful", "username", userName, "error", err)
		return err
	}

	name := user.DisplayName()
	if name == "" {
		name = userName
	}
	a.setLoggedIn(name)
	a.printf("Logged in as %s\n", name)
	return nil
}

// Register creates an account. As in the mobile app the user is not logged
// in afterwards.
func (a *App) Register(ctx context.Context) error {
	fields := map[string]any{}
	for _, f := range []struct{ key, prompt string }{
		{"username", "Enter username"},
		{"email", "Enter email"},
		{"mobile", "Enter mobile number (+905551234567)"},
	} {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		fields[f.key] = v
	}

	password, err := a.readNewPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	fields["password"] = string(password)

	if _, err := a.authService.Register(ctx, fields); err != nil {
		return err
	}

	a.printf("Registration successful. You can log in now.\n")
	return nil
}

// ResetPassword requests a reset token and, if the user continues, sets the
// new password with it straight away.
func (a *App) ResetPassword(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	token, err := a.authService.ResetPassword(ctx, userName, email)
	if err != nil {
		return err
	}

	a.printf("Reset token: %s\n", token)
	answer, err := getSimpleText(a.reader, "Set a new password now? (y/n)", a.out)
	if err != nil || !isYes(answer) {
		a.printf("Use 'confirm' with this token later.\n")
		return nil
	}
	return a.confirmWithToken(ctx, token)
}

// ConfirmReset completes a reset with a token obtained earlier.
func (a *App) ConfirmReset(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", a.out)
	if err != nil {
		return err
	}
	return a.confirmWithToken(ctx, token)
}

func (a *App) confirmWithToken(ctx context.Context, token string) error {
	password, err := a.readNewPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.ConfirmResetPassword(ctx, token, password, password); err != nil {
		return err
	}
	a.printf("Password updated. You can log in now.\n")
	return nil
}

func (a *App) readNewPassword() ([]byte, error) {
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return nil, err
	}
	again, err := getPassword("Repeat password", a.out)
	if err != nil {
		common.WipeByteArray(password)
		return nil, err
	}
	defer common.WipeByteArray(again)

	if string(password) != string(again) {
		common.WipeByteArray(password)
		return nil, errPasswordMismatch
	}
	return password, nil
}

// Logout destroys the local session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.setLoggedOut()
	a.printf("Logged out\n")
	return nil
}

// WhoAmI prints the cached user and what the access token says about itself.
func (a *App) WhoAmI(ctx context.Context) error {
	info, err := a.authService.SessionInfo(ctx)
	if err != nil {
		if errors.Is(err, services.ErrNotLoggedIn) {
			a.printf("Not logged in\n")
			return nil
		}
		return err
	}

	a.printf("User: %s\n", a.displayUser())
	if info.UserID != "" {
		a.printf("User ID: %s\n", info.UserID)
	}
	if info.Subject != "" {
		a.printf("Subject: %s\n", info.Subject)
	}
	if !info.ExpiresAt.IsZero() {
		state := "valid"
		if info.Expired(time.Now()) {
			state = "expired, will be refreshed on next request"
		}
		a.printf("Access token expires: %s (%s)\n", info.ExpiresAt.Local().Format(time.DateTime), state)
	}
	return nil
}
