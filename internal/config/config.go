// Package config provides YAML-based configuration loading for the scene
// runtime, its backends and the CLI.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-scene/internal/core"
)

// Config contains all engine configuration.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Input   InputConfig   `yaml:"input"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
	Window  WindowConfig  `yaml:"window"`
}

// ScreenConfig defines the frame buffer and loop pacing.
type ScreenConfig struct {
	Width      int    `yaml:"width"`       // Cells; 0 uses the terminal size
	Height     int    `yaml:"height"`      // Cells; 0 uses the terminal size
	TickRate   int    `yaml:"tick_rate"`   // Ticks per second
	ClearColor string `yaml:"clear_color"` // Palette name, "default" keeps the terminal color
}

// InputConfig defines input synthesis for terminals.
type InputConfig struct {
	ReleaseDelay time.Duration `yaml:"release_delay"` // Key-up delay after the last press or repeat
}

// LogConfig defines where and how much the runtime logs.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file; stdout belongs to the display
}

// StorageConfig defines the history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SSHConfig defines the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// WindowConfig defines the desktop window backend.
type WindowConfig struct {
	Title string `yaml:"title"`
	CellW int    `yaml:"cell_width"`  // Pixels per cell
	CellH int    `yaml:"cell_height"` // Pixels per cell
}

// Runtime converts the screen section to a core.RuntimeConfig.
// An unknown clear color is an error.
func (c Config) Runtime() (core.RuntimeConfig, error) {
	rt := core.DefaultConfig()
	if c.Screen.Width > 0 {
		rt.ScreenW = c.Screen.Width
	}
	if c.Screen.Height > 0 {
		rt.ScreenH = c.Screen.Height
	}
	if c.Screen.TickRate > 0 {
		rt.TickRate = c.Screen.TickRate
	}
	if c.Screen.ClearColor != "" {
		color, ok := core.ParseColor(c.Screen.ClearColor)
		if !ok {
			return rt, fmt.Errorf("config: unknown clear color %q", c.Screen.ClearColor)
		}
		rt.ClearColor = color
	}
	return rt, nil
}
