package widget

import (
	"strings"
	"time"
	"unicode"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// ConsoleFunc receives the console's ID and a line typed after GetInput.
type ConsoleFunc func(id scene.ID, line string)

// Console is a scrolling character terminal. Output is written with
// PutString; GetInput echoes typed characters until Return and hands the
// line to the callback.
type Console struct {
	scene.Base

	W, H int

	font     gfx.Font
	cols     int
	rows     int
	cells    [][]rune
	cx, cy   int
	input    []rune
	reading  bool
	callback ConsoleFunc
	cursorOn bool
	blink    time.Duration
}

// NewConsole creates an empty console covering w×h cells.
func NewConsole(x, y, w, h int, font gfx.Font, callback ConsoleFunc) *Console {
	font = fontOrDefault(font)
	cw, ch := font.GlyphSize()
	c := &Console{
		W:        w,
		H:        h,
		font:     font,
		cols:     max(w/cw-1, 1),
		rows:     max(h/ch-1, 1),
		callback: callback,
		cursorOn: true,
	}
	c.X, c.Y = x, y
	c.cells = make([][]rune, c.rows)
	c.Clear()
	return c
}

// Clear blanks the console and homes the cursor.
func (c *Console) Clear() {
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", c.cols))
	}
	c.cx, c.cy = 0, 0
}

// Lines returns the console contents with trailing spaces trimmed.
func (c *Console) Lines() []string {
	out := make([]string, c.rows)
	for y, row := range c.cells {
		out[y] = strings.TrimRight(string(row), " ")
	}
	return out
}

// Reading reports whether the console is waiting for a line.
func (c *Console) Reading() bool { return c.reading }

// GetInput prints the prompt and starts collecting a line.
func (c *Console) GetInput(prompt string) {
	c.PutString(prompt)
	c.reading = true
}

// PutString writes s at the cursor.
func (c *Console) PutString(s string) {
	for _, r := range s {
		c.PutChar(r)
	}
}

// PutChar writes one rune at the cursor, wrapping and scrolling as needed.
func (c *Console) PutChar(r rune) {
	if r == '\n' {
		c.cx = 0
		c.cy++
	} else {
		c.cells[c.cy][c.cx] = r
		c.cx++
	}
	if c.cx >= c.cols {
		c.cx = 0
		c.cy++
	}
	if c.cy >= c.rows {
		c.scrollUp()
	}
}

// UnPutChar erases the rune before the cursor.
func (c *Console) UnPutChar() {
	c.cx--
	if c.cx < 0 {
		c.cx = c.cols - 1
		c.cy--
	}
	if c.cy < 0 {
		c.cx, c.cy = 0, 0
		return
	}
	c.cells[c.cy][c.cx] = ' '
}

func (c *Console) scrollUp() {
	copy(c.cells, c.cells[1:])
	c.cells[c.rows-1] = []rune(strings.Repeat(" ", c.cols))
	c.cx, c.cy = 0, c.rows-1
}

// OnTextInput implements scene.TextInputHandler.
func (c *Console) OnTextInput(_ time.Duration, ch rune) {
	c.cursorOn = true
	c.blink = 0
	if !c.reading {
		return
	}

	switch {
	case ch == '\n':
		c.PutChar('\n')
		c.reading = false
		line := string(c.input)
		c.input = c.input[:0]
		if c.callback != nil {
			c.callback(c.ID(), line)
		}
	case ch == '\b':
		if len(c.input) > 0 {
			c.input = c.input[:len(c.input)-1]
			c.UnPutChar()
		}
	case unicode.IsPrint(ch):
		c.input = append(c.input, ch)
		c.PutChar(ch)
	}
}

// Update implements scene.Updater.
func (c *Console) Update(elapsed time.Duration) {
	c.blink += elapsed
	if c.blink >= BlinkInterval {
		c.cursorOn = !c.cursorOn
		c.blink = 0
	}
}

// Draw implements scene.Drawer.
func (c *Console) Draw(cv *scene.Canvas, _ time.Duration) {
	cw, ch := c.font.GlyphSize()
	cv.Block(c.X, c.Y, c.W, c.H, core.ColorBlack, true)
	cv.Block(c.X-cw, c.Y-ch, c.W+2*cw, c.H+2*ch, core.ColorWhite, false)

	for y, row := range c.cells {
		c.font.PutString(cv, string(row), c.X, c.Y+y*ch)
	}
	if c.cursorOn {
		cv.Block(c.X+c.cx*cw, c.Y+c.cy*ch, cw, ch, core.ColorWhite, true)
	}
}
