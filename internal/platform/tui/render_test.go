package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-scene/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.Fill('.')
	s.DrawText(1, 0, "hi", core.ColorDefault)

	assert.Equal(t, ".hi..\n.....", RenderScreen(s))
}

func TestRenderScreenColoredText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.Fill('-')
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.SetCell(3, 0, core.Cell{Rune: 'x', Fg: core.ColorWhite, Bg: core.ColorBlue})

	assert.Equal(t, "ab-x--", ansi.Strip(RenderScreen(s)))
}

func TestRenderScreenControlRunes(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.Set(0, 0, 'a')
	s.Set(1, 0, '\n')
	s.Set(2, 0, 'b')

	assert.Equal(t, "a b", RenderScreen(s), "control runes render as blanks")
}

func TestCellStyleDefaultColors(t *testing.T) {
	assert.Equal(t, "x", cellStyle(core.ColorDefault, core.ColorDefault).Render("x"))
}
