// Package anim plays named frame sequences from a sprite sheet.
package anim

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// Sheet is an indexed set of same-size frames.
type Sheet interface {
	Len() int
	Frame(i int) *core.Image
}

// Animation is a sequence of sheet indices shown for Interval each.
// Indices may repeat or appear in any order.
type Animation struct {
	Frames   []int
	Interval time.Duration
}

// State is the playback state of a Player.
type State int

const (
	Stopped State = iota
	Playing
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	default:
		return "Unknown"
	}
}

// Player advances the current frame of a named animation by elapsed time.
// It is a component: the owning object forwards Update and Draw.
type Player struct {
	sheet      Sheet
	animations map[string]Animation

	state   State
	current string
	frame   int
	acc     time.Duration
	looping bool
}

// NewPlayer creates a stopped player over the given sheet.
func NewPlayer(sheet Sheet) *Player {
	return &Player{
		sheet:      sheet,
		animations: make(map[string]Animation),
	}
}

// Add registers an animation under name, replacing any previous one.
func (p *Player) Add(name string, frames []int, interval time.Duration) {
	p.animations[name] = Animation{
		Frames:   append([]int(nil), frames...),
		Interval: interval,
	}
}

// Play starts the named animation from its first frame.
// An unknown name returns an error and leaves the player untouched.
func (p *Player) Play(name string, looping bool) error {
	if _, ok := p.animations[name]; !ok {
		return fmt.Errorf("anim: unknown animation %q", name)
	}
	p.state = Playing
	p.current = name
	p.frame = 0
	p.acc = 0
	p.looping = looping
	return nil
}

// Stop resets the player to the stopped state.
func (p *Player) Stop() {
	p.state = Stopped
	p.current = ""
	p.frame = 0
	p.acc = 0
}

// Update accumulates elapsed time and advances at most one frame.
// The accumulator restarts from zero on every advance, so large gaps are
// not caught up.
func (p *Player) Update(elapsed time.Duration) {
	if p.state != Playing {
		return
	}
	a := p.animations[p.current]

	p.acc += elapsed
	if p.acc < a.Interval {
		return
	}
	p.acc = 0
	p.frame++
	if p.frame >= len(a.Frames) {
		if p.looping {
			p.frame = 0
		} else {
			p.Stop()
		}
	}
}

// Draw renders the current frame at a world position. It draws nothing
// when stopped or when the frame's sheet index is out of range.
func (p *Player) Draw(c *scene.Canvas, x, y int, opts core.DrawOptions) {
	idx, ok := p.SheetIndex()
	if !ok || p.sheet == nil || idx < 0 || idx >= p.sheet.Len() {
		return
	}
	c.Image(p.sheet.Frame(idx), x, y, opts)
}

// State returns the playback state.
func (p *Player) State() State { return p.state }

// Playing reports whether an animation is running.
func (p *Player) Playing() bool { return p.state == Playing }

// Looping reports whether the current animation wraps around.
func (p *Player) Looping() bool { return p.looping }

// Current returns the name of the running animation, or "" when stopped.
func (p *Player) Current() string { return p.current }

// FrameIndex returns the position within the running animation.
func (p *Player) FrameIndex() int { return p.frame }

// Elapsed returns the time accumulated toward the next advance.
func (p *Player) Elapsed() time.Duration { return p.acc }

// SheetIndex returns the sheet index of the current frame.
func (p *Player) SheetIndex() (int, bool) {
	if p.state != Playing {
		return 0, false
	}
	a := p.animations[p.current]
	if p.frame < 0 || p.frame >= len(a.Frames) {
		return 0, false
	}
	return a.Frames[p.frame], true
}
