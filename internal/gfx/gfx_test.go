package gfx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

func canvas(w, h int) (*core.Screen, *scene.Canvas) {
	s := core.NewScreen(w, h)
	return s, scene.NewCanvas(s, core.NewViewport(0, 0, w, h))
}

func TestCellFontPlaceholder(t *testing.T) {
	s, c := canvas(6, 1)
	f := ASCIIFont(core.ColorGreen)

	f.PutString(c, "aé\x01b", 1, 0)

	assert.Equal(t, " a██b ", s.String())
	assert.Equal(t, core.ColorGreen, s.GetCell(1, 0).Fg)
	assert.Equal(t, 3, Measure(f, "abc"))
}

func TestCellFontUnicode(t *testing.T) {
	s, c := canvas(3, 1)
	NewCellFont(core.ColorWhite).PutString(c, "жé", 0, 0)

	assert.Equal(t, "жé ", s.String())
}

func TestSpriteSplit(t *testing.T) {
	sheet := core.ImageFromRows([]string{
		"aabb",
		"aabb",
		"ccdd",
		"ccdd",
	}, core.ColorWhite, 0)

	spr := NewSprite(sheet, 2, 2)

	require.Equal(t, 4, spr.Len())
	w, h := spr.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, 'b', spr.Frame(1).At(1, 1).Rune)
	assert.Equal(t, 'c', spr.Frame(2).At(0, 0).Rune)
	assert.Nil(t, spr.Frame(4))

	s, c := canvas(4, 2)
	spr.Draw(c, 9, 0, 0, core.DrawOptions{})
	assert.Equal(t, "    \n    ", s.String(), "out-of-range frame draws nothing")
	spr.Draw(c, 3, 1, 0, core.DrawOptions{})
	assert.Equal(t, " dd \n dd ", s.String())
}

func TestTileSetOneBased(t *testing.T) {
	sheet := core.ImageFromRows([]string{"abc", "def"}, core.ColorWhite, 0)
	ts := NewTileSet(sheet, 1, 1, 3)

	require.Equal(t, 6, ts.Count())
	assert.Nil(t, ts.Tile(0))
	assert.Nil(t, ts.Tile(7))
	assert.Equal(t, 'a', ts.Tile(1).At(0, 0).Rune)
	assert.Equal(t, 'e', ts.Tile(5).At(0, 0).Rune)

	s, c := canvas(3, 2)
	ts.DrawMap(c, [][]int{{6, 0, 1}, {9, 2, 3}}, 0, 0)
	assert.Equal(t, "f a\n bc", s.String())
}

const heart = `
fg: white
transparent: "."
palette:
  "#": {bg: red}
  "o": {fg: yellow, glyph: "●"}
rows:
  - ".#.#."
  - "#o#o#"
  - ".x#"
`

func TestParseImage(t *testing.T) {
	img, err := ParseImage([]byte(heart))
	require.NoError(t, err)

	assert.Equal(t, 5, img.W())
	assert.Equal(t, 3, img.H())
	assert.True(t, img.At(0, 0).Transparent())
	assert.Equal(t, core.Cell{Rune: ' ', Fg: core.ColorWhite, Bg: core.ColorRed}, img.At(1, 0))
	assert.Equal(t, core.Cell{Rune: '●', Fg: core.ColorYellow}, img.At(1, 1))
	assert.Equal(t, core.Cell{Rune: 'x', Fg: core.ColorWhite}, img.At(1, 2))
	assert.True(t, img.At(4, 2).Transparent(), "short rows are padded")
}

func TestParseImageErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no rows", "fg: red\n"},
		{"bad fg", "fg: mauve\nrows: [\"a\"]\n"},
		{"bad palette key", "palette:\n  \"ab\": {fg: red}\nrows: [\"a\"]\n"},
		{"bad palette color", "palette:\n  \"a\": {bg: nope}\nrows: [\"a\"]\n"},
		{"not yaml", "rows: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseImage([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(heart), 0o644))

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 5, img.W())

	_, err = LoadImage(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSilentAudio(t *testing.T) {
	var a Audio = Silent{}
	snd, err := a.Load("/assets/jump.wav")
	require.NoError(t, err)
	assert.Equal(t, "jump.wav", snd.Name())
	a.Play(snd)
	assert.Equal(t, "beep", a.Tone("beep", 440, 0).Name())
	a.Stop()
}

func TestPlotAreaConversion(t *testing.T) {
	a := PlotArea{X: 0, Y: 0, W: 20, H: 10, XMin: -10, XMax: 10, YMin: -5, YMax: 5}

	x, y := a.ToWorld(Point{})
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 5, y, 1e-9)

	x, y = a.ToWorld(Point{X: 10, Y: 5})
	assert.InDelta(t, 20, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)

	p := a.FromWorld(15, 2.5)
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 2.5, p.Y, 1e-9)
}

func TestPlotPointsScatterAndAxes(t *testing.T) {
	s, c := canvas(21, 11)
	a := PlotArea{X: 0, Y: 0, W: 20, H: 10, XMin: -10, XMax: 10, YMin: -5, YMax: 5}

	PlotPoints(c, a, []Point{{X: 5, Y: 2.5}, {X: 11, Y: 0}}, PlotScatter, true, core.ColorRed)

	assert.Equal(t, core.ColorBlue, s.GetCell(10, 0).Bg, "y axis")
	assert.Equal(t, core.ColorBlue, s.GetCell(0, 5).Bg, "x axis")
	assert.Equal(t, core.ColorRed, s.GetCell(15, 2).Bg, "scattered point")
	assert.Equal(t, core.ColorBlue, s.GetCell(19, 5).Bg, "out of range point left the axis alone")
}

func TestPlotFunctionLine(t *testing.T) {
	s, c := canvas(21, 11)
	a := PlotArea{X: 0, Y: 0, W: 20, H: 10, XMin: -10, XMax: 10, YMin: -5, YMax: 5}

	PlotFunction(c, a, func(float64) float64 { return 1 }, 0.5, core.ColorGreen)

	for _, x := range []int{3, 5, 15} {
		assert.Equal(t, core.ColorGreen, s.GetCell(x, 4).Bg, "column %d", x)
	}
	assert.Equal(t, core.ColorDefault, s.GetCell(5, 7).Bg)
}

func TestPlotDegenerateArea(t *testing.T) {
	s, c := canvas(5, 5)
	PlotPoints(c, PlotArea{W: 4, H: 4, XMin: 1, XMax: 1, YMin: 0, YMax: 1}, []Point{{1, 0.5}}, PlotScatter, true, core.ColorRed)
	for y := range 5 {
		for x := range 5 {
			assert.Equal(t, core.ColorDefault, s.GetCell(x, y).Bg)
		}
	}
}
