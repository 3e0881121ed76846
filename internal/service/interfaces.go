package service

import (
	"context"

	"github.com/usiverse/userd/models"
)

// AccountDirectory owns the account lifecycle: CRUD, uniqueness,
// authentication and the bulk dump/load used for backups and test fixtures.
// Implementations hold no in-process mutable state; the uniqueness invariant
// is backed by the persistence layer's unique constraint.
type AccountDirectory interface {
	// Has reports whether an account with the exact username exists.
	Has(ctx context.Context, username string) (bool, error)

	// Get returns the stored account or ErrUserNotFound. The record
	// carries password_hash, never a plaintext password.
	Get(ctx context.Context, username string) (models.Account, error)

	// Find returns all accounts matching every key/value pair of
	// criteria; empty criteria returns all accounts.
	Find(ctx context.Context, criteria map[string]any) ([]models.Account, error)

	// Add creates a new account from the given fields and returns the
	// freshly stored record.
	Add(ctx context.Context, req models.CreateAccountRequest) (models.Account, error)

	// Update merges the given fields onto an existing account, handling
	// new_password and new_username, and returns the refreshed record.
	Update(ctx context.Context, req models.UpdateAccountRequest) (models.Account, error)

	// Remove deletes the account or fails with ErrUserRemoveFailed when
	// the username is unknown. Removing twice fails the second time.
	Remove(ctx context.Context, username string) error

	// Count returns the total number of accounts.
	Count(ctx context.Context) (int64, error)

	// Dump returns every account on the system for backup or fixture
	// capture.
	Dump(ctx context.Context) ([]models.Account, error)

	// Load inserts the given records verbatim: no validation, no
	// uniqueness pre-check. Administrative bulk bootstrap only.
	Load(ctx context.Context, accounts []models.Account) error

	// Authenticate verifies the plaintext password against the stored
	// hash. A wrong password is a false result; an unknown user is
	// ErrUserNotFound.
	Authenticate(ctx context.Context, username, password string) (bool, error)

	// SecretForAccessToken returns the access secret stored under the
	// given access token on any account. The boolean reports presence;
	// an unknown token is not an error.
	SecretForAccessToken(ctx context.Context, token string) (string, bool, error)
}

// AppInfoService exposes the identity of the running service for the status
// endpoint.
type AppInfoService interface {
	Name() string
	Version() string
}
