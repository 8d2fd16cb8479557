package core

import "time"

// RuntimeConfig contains the settings a scene and its loop are built with.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in cells
	ScreenH    int   // Screen height in cells
	TickRate   int   // Frame-rate cap in ticks per second (default 60)
	ClearColor Color // Color the frame buffer is cleared to every tick
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		ClearColor: ColorDefault,
	}
}

// TickInterval returns the minimum duration of one tick.
// A non-positive tick rate disables the cap.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TickRate)
}
