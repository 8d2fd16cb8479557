// Package widget provides the UI objects built on the scene runtime:
// labels, progress bars, pictures, dialogs, lists, a file browser, a text
// box and a console.
package widget

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

func fontOrDefault(f gfx.Font) gfx.Font {
	if f == nil {
		return gfx.NewCellFont(core.ColorWhite)
	}
	return f
}

// Label draws a single caption.
type Label struct {
	scene.Base

	Caption string
	font    gfx.Font
}

// NewLabel creates a label at a world position.
func NewLabel(caption string, x, y int, font gfx.Font) *Label {
	l := &Label{Caption: caption, font: fontOrDefault(font)}
	l.X, l.Y = x, y
	return l
}

// SetCaption replaces the text.
func (l *Label) SetCaption(caption string) { l.Caption = caption }

// Draw implements scene.Drawer.
func (l *Label) Draw(c *scene.Canvas, _ time.Duration) {
	l.font.PutString(c, l.Caption, l.X, l.Y)
}

// ProgressBar shows a 0..100 value as a filled bar with a percentage.
type ProgressBar struct {
	scene.Base

	W, H     int
	Back     core.Color
	Fill     core.Color
	font     gfx.Font
	progress int
}

// NewProgressBar creates an empty bar. A nil font hides the percentage.
func NewProgressBar(x, y, w, h int, font gfx.Font) *ProgressBar {
	p := &ProgressBar{
		W:    w,
		H:    h,
		Back: core.ColorWhite,
		Fill: core.ColorGreen,
		font: font,
	}
	p.X, p.Y = x, y
	return p
}

// SetProgress stores p clamped to 0..100.
func (p *ProgressBar) SetProgress(v int) { p.progress = core.Clamp(v, 0, 100) }

// Progress returns the current value.
func (p *ProgressBar) Progress() int { return p.progress }

// Draw implements scene.Drawer.
func (p *ProgressBar) Draw(c *scene.Canvas, _ time.Duration) {
	outer := core.NewRect(p.X, p.Y, p.W, p.H)
	c.Block(outer.X, outer.Y, outer.W, outer.H, p.Back, true)

	inner := outer
	if outer.H >= 3 {
		inner = outer.Inset(1)
	}
	if filled := inner.W * p.progress / 100; filled > 0 {
		c.Block(inner.X, inner.Y, filled, inner.H, p.Fill, true)
	}

	if p.font != nil {
		text := fmt.Sprintf("%d%%", p.progress)
		x := p.X + (p.W-gfx.Measure(p.font, text))/2
		p.font.PutString(c, text, x, p.Y+p.H/2)
	}
}

// PictureBox draws an image.
type PictureBox struct {
	scene.Base

	Image   *core.Image
	Options core.DrawOptions
}

// NewPictureBox creates a picture box at a world position.
func NewPictureBox(img *core.Image, x, y int) *PictureBox {
	p := &PictureBox{Image: img}
	p.X, p.Y = x, y
	return p
}

// SetImage replaces the picture.
func (p *PictureBox) SetImage(img *core.Image) { p.Image = img }

// Draw implements scene.Drawer.
func (p *PictureBox) Draw(c *scene.Canvas, _ time.Duration) {
	c.Image(p.Image, p.X, p.Y, p.Options)
}
