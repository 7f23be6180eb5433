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

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "chapter", 2)

	out := buf.String()

	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "chapter=2")
	assert.Contains(t, out, "proctor")
}

func TestNewUnknownLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, "chatty")

	logger.Debug("debug")
	logger.Info("info")

	assert.NotContains(t, buf.String(), "debug")
	assert.Contains(t, buf.String(), "info")
}

func TestSetup(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
	})

	path := filepath.Join(t.TempDir(), "log", "proctor.log")

	closer, err := Setup(path, "debug")
	require.NoError(t, err)

	slog.Debug("written to file")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "written to file")
}
