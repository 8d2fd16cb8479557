package scene

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-scene/internal/core"
)

// Scene bundles the registry with the viewport and input state that
// objects consult during callbacks.
type Scene struct {
	*Registry

	viewport core.Viewport
	fallback core.Viewport
	input    Dispatcher
	logger   *log.Logger
}

// New creates an empty scene whose default viewport covers the screen.
// A nil logger discards output.
func New(cfg core.RuntimeConfig, logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	vp := core.NewViewport(0, 0, cfg.ScreenW, cfg.ScreenH)
	s := &Scene{
		viewport: vp,
		fallback: vp,
		logger:   logger,
	}
	s.Registry = NewRegistry(s)
	return s
}

// Viewport returns the current viewport.
func (s *Scene) Viewport() core.Viewport { return s.viewport }

// SetViewport makes vp current.
func (s *Scene) SetViewport(vp core.Viewport) { s.viewport = vp }

// ResetViewport makes the default viewport current again.
func (s *Scene) ResetViewport() { s.viewport = s.fallback }

// DefaultViewport returns the screen-sized viewport at the origin.
func (s *Scene) DefaultViewport() core.Viewport { return s.fallback }

// Camera returns the current viewport for in-place moves.
func (s *Scene) Camera() *core.Viewport { return &s.viewport }

// IsPressed reports whether b is currently held.
func (s *Scene) IsPressed(b core.Button) bool { return s.input.IsPressed(b) }

// Logger returns the scene's logger.
func (s *Scene) Logger() *log.Logger { return s.logger }

// resize follows a change of the output size. The current viewport is
// resized too when it was the same size as the default one.
func (s *Scene) resize(w, h int) {
	if s.viewport.W == s.fallback.W && s.viewport.H == s.fallback.H {
		s.viewport.W, s.viewport.H = w, h
	}
	s.fallback.W, s.fallback.H = w, h
}
