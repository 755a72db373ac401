package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger verifies the production defaults: Info level and a role
// field on every entry.
func TestNewLogger(t *testing.T) {
	l := NewLogger("oidc-server")
	require.NotNil(t, l)
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Info().Msg("started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "oidc-server", entry["role"])
	assert.Equal(t, "started", entry["message"])
	assert.Contains(t, entry, "time")
}

// TestNop verifies that the no-op logger is disabled entirely.
func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// TestGetChildLogger verifies that the child inherits the parent's fields
// and writer.
func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)

	child.Info().Msg("from child")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent", entry["role"])
}

// TestFromConfig_Defaults verifies that an empty section yields an Info
// level JSON logger.
func TestFromConfig_Defaults(t *testing.T) {
	l, err := FromConfig(map[string]any{})

	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

// TestFromConfig_Level verifies level parsing.
func TestFromConfig_Level(t *testing.T) {
	l, err := FromConfig(map[string]any{"level": "debug"})

	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

// TestFromConfig_BadLevel verifies that an unknown level name is an error.
func TestFromConfig_BadLevel(t *testing.T) {
	_, err := FromConfig(map[string]any{"level": "loudest"})
	assert.Error(t, err)
}

// TestFromConfig_FileOutput verifies that a file path is opened for append
// and receives entries.
func TestFromConfig_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")

	l, err := FromConfig(map[string]any{"output": path})
	require.NoError(t, err)

	l.Info().Msg("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

// TestFromConfig_BadOutput verifies that an unopenable output path is an
// error.
func TestFromConfig_BadOutput(t *testing.T) {
	_, err := FromConfig(map[string]any{"output": filepath.Join(t.TempDir(), "no", "such", "dir", "server.log")})
	assert.Error(t, err)
}

// TestFromConfig_ConsoleFormat verifies that the console format is accepted.
func TestFromConfig_ConsoleFormat(t *testing.T) {
	l, err := FromConfig(map[string]any{"format": "console", "level": "warn"})

	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}
