package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrUnsupportedDBDriver indicates that the configured database driver
	// is neither "pgx" nor "sqlite3".
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing listen address or request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
