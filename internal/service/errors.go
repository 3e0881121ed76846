package service

import "errors"

// Domain errors raised by the account directory. The HTTP layer maps each
// of them to a wire error kind and status; nothing here is retried
// automatically.
var (
	// ErrUserPresent is returned when an add or a rename targets a
	// username that is already taken.
	ErrUserPresent = errors.New("username is present and cannot be used")

	// ErrUserNotFound is returned when a lookup, update, remove or
	// authenticate names a username that does not exist.
	ErrUserNotFound = errors.New("unknown username")

	// ErrUserAddFailed wraps add failures not covered by a more specific
	// kind, such as a creation payload carrying neither password nor
	// password_hash.
	ErrUserAddFailed = errors.New("error adding user")

	// ErrUserRemoveFailed is returned when the username to remove is not
	// present on the system.
	ErrUserRemoveFailed = errors.New("error removing user")
)

var (
	ErrAppNameIsNotSpecified = errors.New("application name is not specified")
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
