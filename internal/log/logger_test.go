package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gridos.log")
	require.NoError(t, Init(&Config{Level: "debug", Format: "json", File: path}))
	defer Close()

	NewModuleLogger("test", "logger").Debug("hello", "k", "v")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"module":"test"`)
	assert.Contains(t, string(data), `"service":"gridos"`)
}

func TestInit_AgainKeepsEarlierLoggersWriting(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	require.NoError(t, Init(&Config{Level: "info", Format: "text", File: first}))
	defer Close()
	early := NewModuleLogger("test", "early")

	require.NoError(t, Init(&Config{Level: "info", Format: "text", File: second}))
	early.Info("still here")
	NewModuleLogger("test", "late").Info("new output")

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "still here")
	assert.NotContains(t, string(data), "new output")

	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(data), "new output")
}

func TestClose_IsRepeatable(t *testing.T) {
	require.NoError(t, Init(&Config{File: filepath.Join(t.TempDir(), "gridos.log")}))

	Close()
	Close()
}
