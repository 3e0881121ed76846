package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an insert or a rename trips the
	// unique index on the username column. The index is the source of
	// truth for username uniqueness; any in-process existence check is a
	// fast path only.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrAccountNotFound is returned when a query expected to match an
	// account record produces an empty result set.
	ErrAccountNotFound = errors.New("account was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a
	// result row into an account record fails.
	ErrScanningRow = errors.New("failed to scan account row")
)
