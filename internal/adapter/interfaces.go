// Package adapter provides the typed REST client for the user service.
// Programs embedding the client get the same validation and error taxonomy
// as the server: invalid payloads are rejected before any request is made,
// and wire error kinds are mapped back to the domain sentinel errors.
package adapter

import (
	"context"

	"github.com/usiverse/userd/models"
)

// UserServiceClient is the programmatic surface of the user service REST
// API. All calls are synchronous and honor ctx cancellation.
type UserServiceClient interface {
	// Ping fetches the service status document from the root endpoint.
	Ping(ctx context.Context) (models.StatusResponse, error)

	// Accounts lists every account on the service.
	Accounts(ctx context.Context) ([]models.Account, error)

	// Account fetches a single account by username.
	Account(ctx context.Context, username string) (models.Account, error)

	// AddAccount creates an account and returns the stored record. The
	// payload is validated locally before the request is sent.
	AddAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error)

	// UpdateAccount merges fields onto an existing account and returns
	// the refreshed record.
	UpdateAccount(ctx context.Context, req models.UpdateAccountRequest) (models.Account, error)

	// RemoveAccount deletes the account.
	RemoveAccount(ctx context.Context, username string) error

	// Authenticate verifies the plaintext password server-side.
	Authenticate(ctx context.Context, username, password string) (bool, error)

	// Dump exports every account for backup or fixture capture.
	Dump(ctx context.Context) ([]models.Account, error)

	// Load bulk-imports records verbatim.
	Load(ctx context.Context, accounts []models.Account) error
}
