package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/scene.yaml
var defaultSceneYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			TickRate:   60,
			ClearColor: "default",
		},
		Input: InputConfig{
			ReleaseDelay: 150 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.scene/scene.log",
		},
		Storage: StorageConfig{
			Path: "~/.scene/history.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Window: WindowConfig{
			Title: "scene",
			CellW: 6,
			CellH: 16,
		},
	}
}
