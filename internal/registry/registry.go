// Package registry provides a global registry for demo scenes.
// Demos register themselves in init() functions, allowing the CLI and the
// SSH server to discover and build them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// Demo populates a scene with objects.
type Demo interface {
	// ID returns a unique identifier (e.g., "widgets").
	// Used for CLI commands and history storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Build adds the demo's objects to s. It runs before the loop starts, or
	// from an object callback when switching demos, never concurrently.
	Build(s *scene.Scene, env Env) error
}

// PickRecorder stores files chosen in a demo.
type PickRecorder interface {
	SavePick(demoID, path string) (int64, error)
}

// Env carries the outside resources a demo may use. Every field is optional.
type Env struct {
	Root   fs.FS        // File tree for browsing demos
	Picks  PickRecorder // Nil disables pick history
	Audio  gfx.Audio    // Nil behaves as gfx.Silent
	Logger *log.Logger
}

// Sound returns the configured audio or a silent stand-in.
func (e Env) Sound() gfx.Audio {
	if e.Audio == nil {
		return gfx.Silent{}
	}
	return e.Audio
}

// DemoInfo contains metadata about a registered demo.
type DemoInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a demo.
type Factory func() Demo

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a demo factory to the registry.
// Typically called from a demo's init() function.
// Panics if a demo with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered demos, sorted by ID.
func List() []DemoInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DemoInfo, 0, len(factories))
	for id := range factories {
		result = append(result, DemoInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new demo by its ID.
// Returns an error if the demo ID is not registered.
func Create(id string) (Demo, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown demo %q", id)
	}

	return f(), nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Switch clears s and builds the demo id in its place.
// Objects already in the scene are deleted at the next sweep.
func Switch(s *scene.Scene, id string, env Env) error {
	d, err := Create(id)
	if err != nil {
		return err
	}
	s.Clear()
	s.ResetViewport()
	if err := d.Build(s, env); err != nil {
		return fmt.Errorf("registry: build %s: %w", id, err)
	}
	return nil
}
