package widget

import (
	"time"

	"github.com/vovakirdan/tui-scene/internal/choice"
	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// DialogFunc receives the dialog's ID and whether OK was chosen.
type DialogFunc func(id scene.ID, ok bool)

// Dialog is a modal message box with an OK button, or OK and Cancel.
// It takes focus when added and gives it back when dismissed with Return.
type Dialog struct {
	scene.Base

	W, H     int
	Back     core.Color
	font     gfx.Font
	lines    []string
	cancel   bool
	selected bool // true while OK is highlighted
	callback DialogFunc
}

// NewDialog creates an OK dialog.
func NewDialog(message string, x, y, w, h int, back core.Color, font gfx.Font, callback DialogFunc) *Dialog {
	d := &Dialog{
		W:        w,
		H:        h,
		Back:     back,
		font:     fontOrDefault(font),
		selected: true,
		callback: callback,
	}
	d.X, d.Y = x, y

	cw, ch := d.font.GlyphSize()
	maxChars := (w - 2*cw) / cw
	maxLines := (h - 3*ch) / ch
	d.lines = choice.Wrap(message, maxChars)
	if len(d.lines) > maxLines {
		d.lines = d.lines[:max(maxLines, 0)]
	}
	return d
}

// NewConfirm creates an OK/Cancel dialog. Left and Right toggle the choice.
func NewConfirm(message string, x, y, w, h int, back core.Color, font gfx.Font, callback DialogFunc) *Dialog {
	d := NewDialog(message, x, y, w, h, back, font, callback)
	d.cancel = true
	return d
}

// Lines returns the wrapped message.
func (d *Dialog) Lines() []string { return d.lines }

// OK reports whether OK is highlighted.
func (d *Dialog) OK() bool { return d.selected }

// Create implements scene.Creator.
func (d *Dialog) Create() { d.PushFocus() }

// OnKeyPress implements scene.KeyPressHandler.
func (d *Dialog) OnKeyPress(_ time.Duration, b core.Button) {
	switch b {
	case core.ButtonLeft, core.ButtonRight:
		if d.cancel {
			d.selected = !d.selected
		}
	case core.ButtonReturn:
		// Focus goes back first so a dialog opened by the callback keeps it.
		d.PopFocus()
		d.Delete()
		if d.callback != nil {
			d.callback(d.ID(), d.selected)
		}
	}
}

// Draw implements scene.Drawer.
func (d *Dialog) Draw(c *scene.Canvas, _ time.Duration) {
	cw, ch := d.font.GlyphSize()

	c.Block(d.X, d.Y, d.W, d.H, d.Back, true)
	c.Block(d.X, d.Y, d.W, d.H, core.ColorWhite, false)

	for i, line := range d.lines {
		d.font.PutString(c, line, d.X+cw, d.Y+ch+i*ch)
	}

	buttonW := max(d.W/4, 4)
	buttonY := d.Y + d.H - 2*ch
	if !d.cancel {
		d.button(c, "OK", d.X+d.W/2, buttonY, buttonW, true)
		return
	}
	d.button(c, "OK", d.X+d.W/4, buttonY, buttonW, d.selected)
	d.button(c, "Cancel", d.X+d.W*3/4, buttonY, buttonW, !d.selected)
}

func (d *Dialog) button(c *scene.Canvas, caption string, cx, y, w int, active bool) {
	_, ch := d.font.GlyphSize()
	col := core.ColorDarkGray
	if active {
		col = core.ColorRed
	}
	c.Block(cx-w/2, y, w, ch, col, true)
	d.font.PutString(c, caption, cx-gfx.Measure(d.font, caption)/2, y)
}
