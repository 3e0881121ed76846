// Package validators holds the account-data validation rules shared by the
// server handlers and the REST client. Rules are pure functions over the
// request payloads: they report the first violation and never transform the
// input beyond the documented password trim.
package validators

import (
	"fmt"
	"strings"

	"github.com/usiverse/userd/models"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// CreationRequiredFields checks an account-creation payload for the minimum
// required fields. username, password (or password_hash) and email must be
// present and non-empty. Checks run in a fixed order — password family,
// then username, then email — so exactly one error is reported when several
// fields are invalid at once.
func CreationRequiredFields(req models.CreateAccountRequest) error {
	if req.Password != nil {
		password := *req.Password
		if strings.TrimSpace(password) == "" {
			return fmt.Errorf("%w: the field is present but empty", ErrPasswordRequired)
		}
		if len([]rune(strings.TrimSpace(password))) < minPasswordLen {
			return fmt.Errorf("%w: given password is too small", ErrPasswordTooSmall)
		}
	} else if req.PasswordHash == "" {
		return fmt.Errorf("%w: the password field is not present", ErrPasswordRequired)
	}

	if err := usernameOK(req.Username); err != nil {
		return err
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: the field is not present or empty", ErrEmailRequired)
	}

	return nil
}

// UserUpdateFieldsOK checks an account-update payload. The username naming
// the target record is always required. When new_password is supplied it
// must satisfy the same minimum length as a creation password; the stored
// value is trimmed of surrounding whitespace in place.
func UserUpdateFieldsOK(req *models.UpdateAccountRequest) error {
	if err := usernameOK(req.Username); err != nil {
		return err
	}

	if req.NewPassword != nil {
		password := strings.TrimSpace(*req.NewPassword)
		if password == "" {
			return fmt.Errorf("%w: the new_password is present but empty", ErrPasswordTooSmall)
		}
		if len([]rune(password)) < minPasswordLen {
			return fmt.Errorf("%w: given new_password is too small", ErrPasswordTooSmall)
		}
		req.NewPassword = &password
	}

	return nil
}

func usernameOK(username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return fmt.Errorf("%w: the field is not present or empty", ErrUserNameRequired)
	}
	if len([]rune(trimmed)) < minUsernameLen {
		return fmt.Errorf("%w: given username is too small", ErrUserNameTooSmall)
	}
	return nil
}
