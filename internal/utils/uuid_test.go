package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountID_Format(t *testing.T) {
	id := NewAccountID()

	require.True(t, strings.HasPrefix(id, "user-"))

	hexPart := strings.TrimPrefix(id, "user-")
	assert.Len(t, hexPart, 32)
	for _, r := range hexPart {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestNewAccountID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewAccountID()
		require.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}
