package store

import (
	"github.com/usiverse/userd/internal/logger"
)

// Storages aggregates the repositories handed to the service layer.
type Storages struct {
	AccountRepository AccountRepository
}

// NewStorages wires the repositories over an established database
// connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
	}
}
