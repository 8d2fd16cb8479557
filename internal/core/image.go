package core

// Cell is one character position of a screen or image.
type Cell struct {
	Rune rune  // Glyph; 0 marks a transparent image cell
	Fg   Color // Glyph color
	Bg   Color // Background color
}

// Transparent reports whether drawing the cell should leave the target alone.
func (c Cell) Transparent() bool {
	return c.Rune == 0 && c.Bg == ColorDefault
}

// DrawOptions modify how an image is blitted.
type DrawOptions struct {
	PivotX, PivotY int  // Offset subtracted from the target position
	FlipH, FlipV   bool // Mirror before drawing
	Turns          int  // Clockwise quarter turns applied after flipping
	Dim            bool // Draw glyphs in gray; terminals have no alpha blending
}

// Image is a rectangular grid of cells used for sprites, tiles and pictures.
// Every operation returns a new image and leaves the receiver untouched.
type Image struct {
	w, h  int
	cells []Cell
}

// NewImage creates a fully transparent image.
func NewImage(w, h int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Image{w: w, h: h, cells: make([]Cell, w*h)}
}

// ImageFromRows builds an image from text rows drawn in a single color.
// Rows shorter than the widest one are padded with transparent cells and
// the transparent rune, when non-zero, also becomes a transparent cell.
func ImageFromRows(rows []string, fg Color, transparent rune) *Image {
	w := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	img := NewImage(w, len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			if transparent != 0 && r == transparent {
				continue
			}
			img.Set(x, y, Cell{Rune: r, Fg: fg})
		}
	}
	return img
}

// W returns the image width in cells.
func (img *Image) W() int { return img.w }

// H returns the image height in cells.
func (img *Image) H() int { return img.h }

// At returns the cell at (x, y); out-of-range positions are transparent.
func (img *Image) At(x, y int) Cell {
	if x < 0 || x >= img.w || y < 0 || y >= img.h {
		return Cell{}
	}
	return img.cells[y*img.w+x]
}

// Set stores a cell. Out-of-range positions are ignored.
func (img *Image) Set(x, y int, c Cell) {
	if x < 0 || x >= img.w || y < 0 || y >= img.h {
		return
	}
	img.cells[y*img.w+x] = c
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	out := NewImage(img.w, img.h)
	copy(out.cells, img.cells)
	return out
}

// Crop returns the w×h region starting at (x, y).
// Parts of the region outside the source come out transparent.
func (img *Image) Crop(x, y, w, h int) *Image {
	out := NewImage(w, h)
	for yy := 0; yy < out.h; yy++ {
		for xx := 0; xx < out.w; xx++ {
			out.Set(xx, yy, img.At(x+xx, y+yy))
		}
	}
	return out
}

// Resize scales the image to w×h using nearest-neighbour sampling.
func (img *Image) Resize(w, h int) *Image {
	out := NewImage(w, h)
	if img.w == 0 || img.h == 0 {
		return out
	}
	for y := 0; y < out.h; y++ {
		sy := y * img.h / out.h
		for x := 0; x < out.w; x++ {
			sx := x * img.w / out.w
			out.Set(x, y, img.At(sx, sy))
		}
	}
	return out
}

// Flip mirrors the image horizontally and/or vertically.
func (img *Image) Flip(horizontal, vertical bool) *Image {
	out := NewImage(img.w, img.h)
	for y := 0; y < img.h; y++ {
		for x := 0; x < img.w; x++ {
			sx, sy := x, y
			if horizontal {
				sx = img.w - 1 - x
			}
			if vertical {
				sy = img.h - 1 - y
			}
			out.Set(x, y, img.At(sx, sy))
		}
	}
	return out
}

// Rotate turns the image clockwise by the given number of quarter turns.
func (img *Image) Rotate(turns int) *Image {
	turns = ((turns % 4) + 4) % 4
	out := img
	for i := 0; i < turns; i++ {
		out = out.rotateOnce()
	}
	if out == img {
		return img.Clone()
	}
	return out
}

func (img *Image) rotateOnce() *Image {
	out := NewImage(img.h, img.w)
	for y := 0; y < img.h; y++ {
		for x := 0; x < img.w; x++ {
			out.Set(img.h-1-y, x, img.At(x, y))
		}
	}
	return out
}

// Recolor replaces every use of one color, glyph or background, with another.
func (img *Image) Recolor(from, to Color) *Image {
	out := img.Clone()
	for i, c := range out.cells {
		if c.Transparent() {
			continue
		}
		if c.Fg == from {
			c.Fg = to
		}
		if c.Bg == from {
			c.Bg = to
		}
		out.cells[i] = c
	}
	return out
}

// ColorKey returns a copy where every cell showing the key color as its
// background and carrying no glyph becomes transparent.
func (img *Image) ColorKey(key Color) *Image {
	out := img.Clone()
	for i, c := range out.cells {
		if c.Bg == key && (c.Rune == 0 || c.Rune == ' ') {
			out.cells[i] = Cell{}
		}
	}
	return out
}

// transform applies the flip and rotation parts of the options.
func (img *Image) transform(opts DrawOptions) *Image {
	out := img
	if opts.FlipH || opts.FlipV {
		out = out.Flip(opts.FlipH, opts.FlipV)
	}
	if opts.Turns%4 != 0 {
		out = out.Rotate(opts.Turns)
	}
	return out
}
