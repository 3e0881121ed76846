package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// TestFromRequest verifies that a logger attached to a request context via
// WithContext is recovered by FromRequest.
func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("request-role")
	l.Logger = l.Output(&buf)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	got := FromRequest(req)
	got.Info().Msg("from request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request-role", entry["role"])
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("parent")
	l.Logger = l.Output(&buf)

	child := l.GetChildLogger()
	child.Info().Msg("child entry")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent", entry["role"])
}
