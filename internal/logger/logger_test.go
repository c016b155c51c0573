package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNew_Fields verifies role, timestamp and caller fields on every entry.
func TestNew_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New("test-role", zerolog.DebugLevel, &buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNew_Level verifies that entries below the configured level are dropped.
func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New("lvl", zerolog.WarnLevel, &buf)

	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l, closeFn := NewClientLogger("client", zerolog.InfoLevel, path)
	l.Info().Str("username", "admin").Msg("logged in")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"username":"admin"`)
	assert.Contains(t, string(data), `"role":"client"`)
}

func TestNewClientLogger_FallbackOnUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "client.log")

	l, closeFn := NewClientLogger("client", zerolog.InfoLevel, path)
	require.NotNil(t, l)
	assert.NoError(t, closeFn())
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New("parent", zerolog.DebugLevel, &buf)

	child := parent.GetChildLogger()
	child.Info().Msg("from child")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "parent", entry["role"])
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New("ctx", zerolog.DebugLevel, &buf)

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("via context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx", entry["role"])
	assert.Equal(t, "via context", entry["message"])
}
