package cli

import (
	"context"
	"errors"
	"os"

	"github.com/ErikMirg/BSC-Portal/internal/client/api"
	"github.com/ErikMirg/BSC-Portal/internal/client/models"
	"github.com/ErikMirg/BSC-Portal/internal/client/validation"
)

// AddUser runs the provisioning form: login, password and role are read,
// validated locally and submitted. Server-side rejections are mapped back
// onto the fields they concern; a created user lands on the profile view.
func (a *App) AddUser(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter login for the new account", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	role, err := getSimpleText(a.reader, "Role (employee/admin, empty for employee)", os.Stdout)
	if err != nil {
		return err
	}
	if role == "" {
		role = string(models.RoleEmployee)
	}

	req := models.NewUserRequest{Login: login, Password: string(password), Role: models.Role(role)}

	if errs := validation.ValidateNewUser(req); !errs.OK() {
		printFieldErrors(errs)
		return nil
	}

	if err := a.profiles.CreateUser(ctx, req); err != nil {
		printFieldErrors(createUserErrors(err))
		return nil
	}

	printlnFn("User created.")
	return a.MyProfile(ctx)
}

// createUserErrors maps a failed provisioning call onto form fields. A
// plain-string rejection concerns the login (typically "already taken");
// field-scoped errors keep their fields; anything else becomes a generic
// login-field message.
func createUserErrors(err error) validation.Errors {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if len(apiErr.Fields) > 0 {
			return validation.Errors(apiErr.Fields)
		}
		if apiErr.Message != "" {
			return validation.Errors{validation.FieldLogin: apiErr.Message}
		}
	}
	if errors.Is(err, api.ErrUnavailable) {
		return validation.Errors{validation.FieldLogin: "Server is unavailable, try again later"}
	}
	return validation.Errors{validation.FieldLogin: "Failed to create the user"}
}
