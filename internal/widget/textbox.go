package widget

import (
	"time"
	"unicode"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// BlinkInterval is how long a text cursor stays on or off.
const BlinkInterval = 500 * time.Millisecond

// TextBox is a single-line editor with an insertion cursor and a
// horizontally scrolling window.
type TextBox struct {
	scene.Base

	Width int

	// OnSubmit is called with the text when Return is typed.
	OnSubmit func(id scene.ID, text string)

	font     gfx.Font
	text     []rune
	insert   int
	start    int
	maxChars int
	cursorOn bool
	blink    time.Duration
}

// NewTextBox creates an empty text box width cells wide.
func NewTextBox(x, y, width int, font gfx.Font) *TextBox {
	font = fontOrDefault(font)
	cw, _ := font.GlyphSize()
	t := &TextBox{
		Width:    width,
		font:     font,
		maxChars: max(width/cw, 1),
		cursorOn: true,
	}
	t.X, t.Y = x, y
	return t
}

// Text returns the current contents.
func (t *TextBox) Text() string { return string(t.text) }

// SetText replaces the contents and puts the cursor at the end.
func (t *TextBox) SetText(s string) {
	t.text = []rune(s)
	t.insert = len(t.text)
	t.start = max(0, t.insert-t.maxChars+1)
}

// Cursor returns the insertion index and the first visible index.
func (t *TextBox) Cursor() (insert, start int) { return t.insert, t.start }

// Visible returns the part of the text inside the window.
func (t *TextBox) Visible() string {
	end := min(t.start+t.maxChars, len(t.text))
	return string(t.text[t.start:end])
}

// CursorOn reports whether the blinking cursor is currently shown.
func (t *TextBox) CursorOn() bool { return t.cursorOn }

// OnTextInput implements scene.TextInputHandler.
func (t *TextBox) OnTextInput(_ time.Duration, ch rune) {
	t.wake()
	switch {
	case ch == '\b':
		if t.insert > 0 {
			t.text = append(t.text[:t.insert-1], t.text[t.insert:]...)
			t.insert--
		}
	case ch == '\n':
		if t.OnSubmit != nil {
			t.OnSubmit(t.ID(), t.Text())
		}
	case unicode.IsPrint(ch):
		t.text = append(t.text[:t.insert], append([]rune{ch}, t.text[t.insert:]...)...)
		t.insert++
	}
	t.validate()
}

// OnKeyPress implements scene.KeyPressHandler.
func (t *TextBox) OnKeyPress(_ time.Duration, b core.Button) {
	t.wake()
	switch b {
	case core.ButtonLeft:
		t.insert--
	case core.ButtonRight:
		t.insert++
	}
	t.validate()
}

func (t *TextBox) wake() {
	t.cursorOn = true
	t.blink = 0
}

// validate clamps the cursor and scrolls the window one step so the
// cursor stays inside it with a character of context on the left.
func (t *TextBox) validate() {
	t.insert = core.Clamp(t.insert, 0, len(t.text))

	if t.insert == t.start {
		t.start--
	} else if t.insert-t.start >= t.maxChars {
		t.start++
	}
	t.start = max(t.start, 0)
}

// Update implements scene.Updater.
func (t *TextBox) Update(elapsed time.Duration) {
	t.blink += elapsed
	if t.blink >= BlinkInterval {
		t.cursorOn = !t.cursorOn
		t.blink = 0
	}
}

// Draw implements scene.Drawer.
func (t *TextBox) Draw(c *scene.Canvas, _ time.Duration) {
	cw, ch := t.font.GlyphSize()
	c.Block(t.X, t.Y, t.Width, ch, core.ColorBlack, true)
	c.Block(t.X-cw, t.Y-ch, t.Width+2*cw, 3*ch, core.ColorWhite, false)
	if t.cursorOn {
		c.Block(t.X+(t.insert-t.start)*cw, t.Y, cw, ch, core.ColorGray, true)
	}
	t.font.PutString(c, t.Visible(), t.X, t.Y)
}
