package gfx

import (
	"path/filepath"
	"time"
)

// Sound is a loaded sound resource.
type Sound interface {
	Name() string
}

// Audio loads and plays sounds. Backends without an audio device use Silent.
type Audio interface {
	Load(path string) (Sound, error)
	// Tone synthesizes a square-wave beep.
	Tone(name string, freq float64, d time.Duration) Sound
	Play(s Sound)
	Stop()
}

// Silent accepts every call and plays nothing.
type Silent struct{}

type silentSound string

func (s silentSound) Name() string { return string(s) }

// Load returns a named placeholder without touching the file.
func (Silent) Load(path string) (Sound, error) {
	return silentSound(filepath.Base(path)), nil
}

// Tone returns a named placeholder.
func (Silent) Tone(name string, _ float64, _ time.Duration) Sound {
	return silentSound(name)
}

// Play does nothing.
func (Silent) Play(Sound) {}

// Stop does nothing.
func (Silent) Stop() {}
