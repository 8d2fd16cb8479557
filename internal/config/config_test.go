package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-scene/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultSceneYAML)
	require.NoError(t, err, "embedded defaults must parse")
	assert.Equal(t, Default(), cfg)
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
screen:
  tick_rate: 30
  clear_color: blue
input:
  release_delay: 80ms
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Screen.TickRate)
	assert.Equal(t, 80*time.Millisecond, cfg.Input.ReleaseDelay)
	// Untouched sections keep their defaults
	assert.Equal(t, ":23234", cfg.SSH.Address)
	assert.Equal(t, Default().Storage.Path, cfg.Storage.Path)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("screen: [not, a, map"))
	assert.Error(t, err)
}

func TestRuntime(t *testing.T) {
	tests := []struct {
		name    string
		screen  ScreenConfig
		want    core.RuntimeConfig
		wantErr bool
	}{
		{
			name:   "defaults",
			screen: ScreenConfig{},
			want:   core.DefaultConfig(),
		},
		{
			name:   "explicit",
			screen: ScreenConfig{Width: 100, Height: 30, TickRate: 20, ClearColor: "dark_gray"},
			want:   core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 20, ClearColor: core.ColorDarkGray},
		},
		{
			name:    "unknown color",
			screen:  ScreenConfig{ClearColor: "chartreuse"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Screen = tt.screen
			got, err := cfg.Runtime()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingCustomPath(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err, "a missing custom file is an error")
	assert.Equal(t, Default(), cfg, "a failed Load still returns defaults")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	assert.Equal(t, filepath.Join(home, ".scene", "x.db"), ExpandHome("~/.scene/x.db"))
	assert.Equal(t, "/tmp/x.db", ExpandHome("/tmp/x.db"))
}
