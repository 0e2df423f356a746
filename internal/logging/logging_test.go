package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestParseLevel(t *testing.T) {
	for input, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestInit_WritesToFile(t *testing.T) {
	restoreDefault(t)
	path := filepath.Join(t.TempDir(), "nested", "tasktrack.log")

	closer, err := Init("warn", path)
	require.NoError(t, err)

	slog.Info("dropped below threshold")
	slog.Warn("task update rejected", "id", 7)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "task update rejected")
	assert.Contains(t, string(data), "id=7")
	assert.NotContains(t, string(data), "dropped below threshold")
}

func TestInit_InvalidLevel(t *testing.T) {
	_, err := Init("loud", filepath.Join(t.TempDir(), "x.log"))
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	logger := Setup(&buf, slog.LevelDebug)
	logger.Debug("task created", "id", 1)

	assert.Same(t, logger, Logger)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "task created")
}
