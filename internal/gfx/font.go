// Package gfx provides the drawing helpers objects build on: fonts,
// sprite sheets, tile sets, cell-art images and the audio capability.
package gfx

import (
	"unicode"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// Placeholder is drawn for runes a font cannot show.
const Placeholder = '█'

// Font draws text through a canvas and reports its glyph metrics.
type Font interface {
	GlyphSize() (w, h int)
	PutChar(c *scene.Canvas, ch rune, x, y int)
	PutString(c *scene.Canvas, s string, x, y int)
}

// CellFont draws one rune per cell in a single color.
// Min and Max bound the supported runes; a zero Max accepts every
// printable rune.
type CellFont struct {
	Fg       core.Color
	Min, Max rune
}

// NewCellFont creates a font that accepts every printable rune.
func NewCellFont(fg core.Color) *CellFont {
	return &CellFont{Fg: fg}
}

// ASCIIFont creates a font limited to printable ASCII, like a 96-glyph
// bitmap sheet.
func ASCIIFont(fg core.Color) *CellFont {
	return &CellFont{Fg: fg, Min: ' ', Max: '~'}
}

// GlyphSize returns the advance of one glyph in cells.
func (f *CellFont) GlyphSize() (int, int) { return 1, 1 }

// Supports reports whether ch has a glyph.
func (f *CellFont) Supports(ch rune) bool {
	if f.Max != 0 && (ch < f.Min || ch > f.Max) {
		return false
	}
	return unicode.IsPrint(ch)
}

// PutChar draws a single rune, or the placeholder when it is unsupported.
func (f *CellFont) PutChar(c *scene.Canvas, ch rune, x, y int) {
	if !f.Supports(ch) {
		ch = Placeholder
	}
	c.Text(x, y, string(ch), f.Fg)
}

// PutString draws s left to right, one glyph per cell.
func (f *CellFont) PutString(c *scene.Canvas, s string, x, y int) {
	w, _ := f.GlyphSize()
	for _, ch := range s {
		f.PutChar(c, ch, x, y)
		x += w
	}
}

// Measure returns the width of s in cells when drawn with f.
func Measure(f Font, s string) int {
	w, _ := f.GlyphSize()
	return w * len([]rune(s))
}
