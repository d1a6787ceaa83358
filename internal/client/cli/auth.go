package cli

import (
	"context"
	"errors"
	"os"

	"github.com/ErikMirg/BSC-Portal/internal/client/api"
	"github.com/ErikMirg/BSC-Portal/internal/client/services"
	"github.com/ErikMirg/BSC-Portal/internal/client/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, validates them locally and exchanges them
// for a token. Validation failures and rejected credentials are shown next
// to the offending field; transport failures get a generic message. On
// success the session becomes authenticated and the own profile opens.
func (a *App) Login(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter login", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if errs := validation.ValidateLoginForm(login, string(password)); !errs.OK() {
		printFieldErrors(errs)
		return nil
	}

	token, err := a.auth.Login(ctx, login, string(password))
	if err != nil {
		printFieldErrors(validation.Errors{validation.FieldPassword: loginErrorMessage(err)})
		return nil
	}

	a.state = services.StateAuthenticated
	printlnFn("Logged in.")
	if token.RequiresPasswordChange {
		printlnFn("Your password must be changed. Contact an administrator.")
	}
	return a.MyProfile(ctx)
}

// Logout drops the stored credential and returns to the anonymous state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(); err != nil {
		a.log.Error(ctx, "logout failed", "err", err)
		return err
	}
	a.state = services.StateAnonymous
	printlnFn("Logged out.")
	return nil
}

// loginErrorMessage maps a failed credential exchange to the message shown
// under the password field. Rejections (401/422) never leak which of the
// two inputs was wrong.
func loginErrorMessage(err error) string {
	if api.IsUnauthorized(err) || api.IsStatus(err, 422) {
		return "Invalid login or password"
	}
	if errors.Is(err, api.ErrUnavailable) {
		return "Server is unavailable, try again later"
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Login failed, try again later"
}
