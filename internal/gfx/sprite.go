package gfx

import (
	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// Sprite is a sheet split into same-size frames, numbered row-major.
type Sprite struct {
	frames []*core.Image
	w, h   int
}

// NewSprite splits sheet into cols×rows frames. Remainder cells at the
// right and bottom edges are dropped.
func NewSprite(sheet *core.Image, cols, rows int) *Sprite {
	cols, rows = max(cols, 1), max(rows, 1)
	s := &Sprite{w: sheet.W() / cols, h: sheet.H() / rows}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s.frames = append(s.frames, sheet.Crop(c*s.w, r*s.h, s.w, s.h))
		}
	}
	return s
}

// SpriteFromFrames builds a sprite from ready-made frames.
func SpriteFromFrames(frames ...*core.Image) *Sprite {
	s := &Sprite{frames: frames}
	if len(frames) > 0 {
		s.w, s.h = frames[0].W(), frames[0].H()
	}
	return s
}

// Len returns the number of frames.
func (s *Sprite) Len() int { return len(s.frames) }

// Size returns the frame size in cells.
func (s *Sprite) Size() (int, int) { return s.w, s.h }

// Frame returns frame i, or nil when out of range.
func (s *Sprite) Frame(i int) *core.Image {
	if i < 0 || i >= len(s.frames) {
		return nil
	}
	return s.frames[i]
}

// Draw draws frame i at a world position; out-of-range frames draw nothing.
func (s *Sprite) Draw(c *scene.Canvas, i, x, y int, opts core.DrawOptions) {
	if f := s.Frame(i); f != nil {
		c.Image(f, x, y, opts)
	}
}
