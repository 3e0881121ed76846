package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usiverse/userd/models"
)

func strptr(s string) *string { return &s }

func validCreation() models.CreateAccountRequest {
	return models.CreateAccountRequest{
		Account: models.Account{
			Username: "bob.sprocket",
			Email:    "bob.sprocket@example.com",
		},
		Password: strptr("1234567890"),
	}
}

func TestCreationRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.CreateAccountRequest)
		wantErr error
	}{
		{
			name:   "valid payload",
			mutate: func(r *models.CreateAccountRequest) {},
		},
		{
			name: "password hash instead of password",
			mutate: func(r *models.CreateAccountRequest) {
				r.Password = nil
				r.PasswordHash = "some-opaque-hash"
			},
		},
		{
			name: "six rune unicode password",
			mutate: func(r *models.CreateAccountRequest) {
				r.Password = strptr("пароль")
			},
		},
		{
			name: "missing password family",
			mutate: func(r *models.CreateAccountRequest) {
				r.Password = nil
			},
			wantErr: ErrPasswordRequired,
		},
		{
			name: "whitespace only password",
			mutate: func(r *models.CreateAccountRequest) {
				r.Password = strptr("   ")
			},
			wantErr: ErrPasswordRequired,
		},
		{
			name: "five character password",
			mutate: func(r *models.CreateAccountRequest) {
				r.Password = strptr("12345")
			},
			wantErr: ErrPasswordTooSmall,
		},
		{
			name: "padded short password",
			mutate: func(r *models.CreateAccountRequest) {
				r.Password = strptr("  12345  ")
			},
			wantErr: ErrPasswordTooSmall,
		},
		{
			name: "missing username",
			mutate: func(r *models.CreateAccountRequest) {
				r.Username = ""
			},
			wantErr: ErrUserNameRequired,
		},
		{
			name: "whitespace username",
			mutate: func(r *models.CreateAccountRequest) {
				r.Username = "   "
			},
			wantErr: ErrUserNameRequired,
		},
		{
			name: "two character username",
			mutate: func(r *models.CreateAccountRequest) {
				r.Username = "bo"
			},
			wantErr: ErrUserNameTooSmall,
		},
		{
			name: "padded short username",
			mutate: func(r *models.CreateAccountRequest) {
				r.Username = " bo "
			},
			wantErr: ErrUserNameTooSmall,
		},
		{
			name: "missing email",
			mutate: func(r *models.CreateAccountRequest) {
				r.Email = ""
			},
			wantErr: ErrEmailRequired,
		},
		{
			name: "password error reported before username error",
			mutate: func(r *models.CreateAccountRequest) {
				r.Password = nil
				r.Username = "bo"
			},
			wantErr: ErrPasswordRequired,
		},
		{
			name: "username error reported before email error",
			mutate: func(r *models.CreateAccountRequest) {
				r.Username = "bo"
				r.Email = ""
			},
			wantErr: ErrUserNameTooSmall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreation()
			tt.mutate(&req)

			err := CreationRequiredFields(req)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestUserUpdateFieldsOK(t *testing.T) {
	t.Run("username required", func(t *testing.T) {
		req := models.UpdateAccountRequest{}
		err := UserUpdateFieldsOK(&req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUserNameRequired))
	})

	t.Run("short target username", func(t *testing.T) {
		req := models.UpdateAccountRequest{Username: "bo"}
		err := UserUpdateFieldsOK(&req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUserNameTooSmall))
	})

	t.Run("no new password is fine", func(t *testing.T) {
		req := models.UpdateAccountRequest{Username: "bob.sprocket"}
		assert.NoError(t, UserUpdateFieldsOK(&req))
	})

	t.Run("empty new password rejected", func(t *testing.T) {
		req := models.UpdateAccountRequest{Username: "bob.sprocket", NewPassword: strptr("  ")}
		err := UserUpdateFieldsOK(&req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPasswordTooSmall))
	})

	t.Run("short new password rejected", func(t *testing.T) {
		req := models.UpdateAccountRequest{Username: "bob.sprocket", NewPassword: strptr("12345")}
		err := UserUpdateFieldsOK(&req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPasswordTooSmall))
	})

	t.Run("new password trimmed in place", func(t *testing.T) {
		req := models.UpdateAccountRequest{Username: "bob.sprocket", NewPassword: strptr("  tiktoktiktok  ")}
		require.NoError(t, UserUpdateFieldsOK(&req))
		require.NotNil(t, req.NewPassword)
		assert.Equal(t, "tiktoktiktok", *req.NewPassword)
	})
}
