package validators

import "errors"

// Validation failures raised against caller-supplied account data. Always
// caused by the caller's input and recoverable by correcting it; callers
// match with [errors.Is].
var (
	// ErrUserNameRequired is returned when the username field is missing,
	// empty, or whitespace-only.
	ErrUserNameRequired = errors.New("the username field is required")

	// ErrUserNameTooSmall is returned when the trimmed username is shorter
	// than the minimum of 3 characters.
	ErrUserNameTooSmall = errors.New("the username must be at least 3 characters")

	// ErrPasswordRequired is returned when neither a password nor a
	// password_hash is supplied, or the password is empty/whitespace-only.
	ErrPasswordRequired = errors.New("the password field is required")

	// ErrPasswordTooSmall is returned when the trimmed password is shorter
	// than the minimum of 6 characters.
	ErrPasswordTooSmall = errors.New("the password must be at least 6 characters")

	// ErrEmailRequired is returned when the email field is missing, empty,
	// or whitespace-only.
	ErrEmailRequired = errors.New("the email field is required")
)
