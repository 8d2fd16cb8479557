package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-scene/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scene.log")

	logger, closer, err := New(config.LogConfig{Level: "info", File: path})
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("scene loop started", "ticks", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err, "log file missing")
	out := string(data)
	assert.Contains(t, out, "scene loop started")
	assert.Contains(t, out, "ticks=3")
	assert.NotContains(t, out, "hidden", "debug line written at info level")
}

func TestNewBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestNewWithoutFile(t *testing.T) {
	logger, closer, err := New(config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	logger.Info("discarded")
	assert.NoError(t, closer.Close())
}

func TestNewWriterPrefix(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, log.WarnLevel).Warn("careful")
	assert.Contains(t, buf.String(), "scene")
	assert.Contains(t, buf.String(), "careful")
}
