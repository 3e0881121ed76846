package store

import (
	"context"

	"github.com/usiverse/userd/models"
)

// AccountRepository is the persistence adapter for the account collection.
// All state of the service lives behind this interface; implementations must
// serialize conflicting writes (at minimum, enforce username uniqueness with
// a storage-level constraint surfaced as [ErrUsernameTaken]).
type AccountRepository interface {
	// FindByUsername returns the record with the exact username, or
	// ErrAccountNotFound.
	FindByUsername(ctx context.Context, username string) (models.Account, error)

	// Find returns all records whose fields match every key/value pair in
	// criteria. Empty or nil criteria returns all records in stored order.
	Find(ctx context.Context, criteria map[string]any) ([]models.Account, error)

	// Insert persists a new account record. Returns ErrUsernameTaken when
	// the username is already present.
	Insert(ctx context.Context, account models.Account) error

	// InsertMany persists the given records verbatim inside one
	// transaction. Used by the bulk load operation.
	InsertMany(ctx context.Context, accounts []models.Account) error

	// Replace overwrites the record identified by id with the given
	// account. Returns ErrAccountNotFound if no such record exists and
	// ErrUsernameTaken when a rename collides with an existing username.
	Replace(ctx context.Context, id string, account models.Account) error

	// Remove deletes the record with the given username, or returns
	// ErrAccountNotFound.
	Remove(ctx context.Context, username string) error

	// Count returns the total number of account records.
	Count(ctx context.Context) (int64, error)
}
