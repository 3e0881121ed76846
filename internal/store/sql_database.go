package store

import (
	"database/sql"

	"github.com/usiverse/userd/internal/logger"
)

// Dialect identifies the SQL backend a [DB] is connected to. It selects the
// driver-specific constraint-violation detection and the goose dialect used
// for migrations.
type Dialect string

const (
	// DialectPostgres is the PostgreSQL backend via the pgx stdlib driver.
	DialectPostgres Dialect = "pgx"

	// DialectSQLite is the embedded SQLite backend.
	DialectSQLite Dialect = "sqlite3"
)

// DB wraps a sql.DB together with the dialect it speaks.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// Dialect returns the SQL dialect of the underlying connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}
