package gfx

import (
	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// TileSet cuts fixed-size tiles from a sheet with a known column count.
// Tile indices are 1-based; 0 means no tile.
type TileSet struct {
	sheet   *core.Image
	tileW   int
	tileH   int
	columns int
	count   int
}

// NewTileSet creates a tile set over sheet.
func NewTileSet(sheet *core.Image, tileW, tileH, columns int) *TileSet {
	tileW, tileH, columns = max(tileW, 1), max(tileH, 1), max(columns, 1)
	rows := sheet.H() / tileH
	return &TileSet{
		sheet:   sheet,
		tileW:   tileW,
		tileH:   tileH,
		columns: columns,
		count:   rows * columns,
	}
}

// Count returns the number of tiles.
func (t *TileSet) Count() int { return t.count }

// TileSize returns the tile size in cells.
func (t *TileSet) TileSize() (int, int) { return t.tileW, t.tileH }

// Tile returns the tile with the given 1-based index, or nil.
func (t *TileSet) Tile(index int) *core.Image {
	if index < 1 || index > t.count {
		return nil
	}
	i := index - 1
	return t.sheet.Crop((i%t.columns)*t.tileW, (i/t.columns)*t.tileH, t.tileW, t.tileH)
}

// DrawTile draws a tile at a world position; 0 and out-of-range indices
// draw nothing.
func (t *TileSet) DrawTile(c *scene.Canvas, index, x, y int, opts core.DrawOptions) {
	if tile := t.Tile(index); tile != nil {
		c.Image(tile, x, y, opts)
	}
}

// DrawMap draws a grid of tile indices with its top-left corner at (x, y).
func (t *TileSet) DrawMap(c *scene.Canvas, tiles [][]int, x, y int) {
	for row, line := range tiles {
		for col, index := range line {
			t.DrawTile(c, index, x+col*t.tileW, y+row*t.tileH, core.DrawOptions{})
		}
	}
}
