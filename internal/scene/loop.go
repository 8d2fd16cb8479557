package scene

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-scene/internal/core"
)

// Loop drives a scene against a platform, one tick at a time.
type Loop struct {
	scene    *Scene
	platform Platform
	clock    Clock
	screen   *core.Screen
	config   core.RuntimeConfig
	logger   *log.Logger

	last  time.Time
	ticks uint64
}

// NewLoop creates a loop with a frame buffer sized from cfg.
// A nil clock uses SystemClock.
func NewLoop(s *Scene, p Platform, clock Clock, cfg core.RuntimeConfig) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		scene:    s,
		platform: p,
		clock:    clock,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		logger:   s.Logger(),
	}
}

// Screen returns the frame buffer.
func (l *Loop) Screen() *core.Screen { return l.screen }

// Ticks returns the number of completed ticks.
func (l *Loop) Ticks() uint64 { return l.ticks }

// Tick runs one iteration and reports whether the loop should stop.
// A cancelled context counts as a quit request in the input phase; the
// frame is still presented.
func (l *Loop) Tick(ctx context.Context) bool {
	now := l.clock.Now()
	var elapsed time.Duration
	if !l.last.IsZero() {
		elapsed = now.Sub(l.last)
	}
	l.last = now

	l.scene.Sweep()

	for _, o := range l.scene.Objects() {
		if u, ok := o.(Updater); ok && !o.Entity().disabled {
			u.Update(elapsed)
		}
	}

	l.screen.Clear(l.config.ClearColor)
	drawStart := l.clock.Now()
	canvas := NewCanvas(l.screen, l.scene.Viewport())
	for _, o := range l.scene.Objects() {
		if d, ok := o.(Drawer); ok && !o.Entity().hidden {
			d.Draw(canvas, elapsed)
		}
	}

	mx, my := l.platform.MousePosition()
	res := l.scene.input.Dispatch(l.scene.Objects(), l.scene.Viewport(), elapsed, l.platform.PollEvents(), mx, my)
	if res.Resized {
		l.logger.Debug("frame resized", "width", res.W, "height", res.H)
		l.screen.Resize(res.W, res.H)
		l.scene.resize(res.W, res.H)
	}
	quit := res.Quit || ctx.Err() != nil

	l.platform.Present(l.screen)
	l.ticks++

	if interval := l.config.TickInterval(); interval > 0 {
		if rest := interval - l.clock.Now().Sub(drawStart); rest > 0 {
			l.clock.Sleep(rest)
		}
	}
	return quit
}

// Run ticks until a quit event arrives or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	l.logger.Info("scene loop started",
		"width", l.screen.Width(),
		"height", l.screen.Height(),
		"tick_rate", l.config.TickRate,
		"objects", l.scene.Len(),
	)
	start := l.clock.Now()

	for !l.Tick(ctx) {
	}

	l.logger.Info("scene loop stopped",
		"ticks", l.ticks,
		"duration", l.clock.Now().Sub(start).Round(time.Millisecond),
	)
}
