package utils

import (
	"strings"

	"github.com/google/uuid"
)

const accountIDPrefix = "user-"

// NewAccountID generates a fresh account identifier in the form
// "user-" followed by 32 hexadecimal characters.
func NewAccountID() string {
	return accountIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
