package core

// DrawLine paints a straight line of cells between two points (Bresenham).
func (s *Screen) DrawLine(x1, y1, x2, y2 int, c Color) {
	dx := Abs(x2 - x1)
	dy := -Abs(y2 - y1)
	sx, sy := Sign(x2-x1), Sign(y2-y1)
	err := dx + dy

	for {
		s.DrawPixel(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawCircle paints a circle centred on (cx, cy) using the midpoint method.
// A filled circle is painted as horizontal spans.
func (s *Screen) DrawCircle(cx, cy, radius int, c Color, filled bool) {
	if radius < 0 {
		return
	}
	if radius == 0 {
		s.DrawPixel(cx, cy, c)
		return
	}

	x, y := radius, 0
	err := 1 - radius
	for x >= y {
		if filled {
			s.span(cx-x, cx+x, cy+y, c)
			s.span(cx-x, cx+x, cy-y, c)
			s.span(cx-y, cx+y, cy+x, c)
			s.span(cx-y, cx+y, cy-x, c)
		} else {
			s.DrawPixel(cx+x, cy+y, c)
			s.DrawPixel(cx-x, cy+y, c)
			s.DrawPixel(cx+x, cy-y, c)
			s.DrawPixel(cx-x, cy-y, c)
			s.DrawPixel(cx+y, cy+x, c)
			s.DrawPixel(cx-y, cy+x, c)
			s.DrawPixel(cx+y, cy-x, c)
			s.DrawPixel(cx-y, cy-x, c)
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// DrawTriangle paints a triangle outline or a filled triangle.
func (s *Screen) DrawTriangle(x1, y1, x2, y2, x3, y3 int, c Color, filled bool) {
	if !filled {
		s.DrawLine(x1, y1, x2, y2, c)
		s.DrawLine(x2, y2, x3, y3, c)
		s.DrawLine(x3, y3, x1, y1, c)
		return
	}

	minX, maxX := min(x1, x2, x3), max(x1, x2, x3)
	minY, maxY := min(y1, y2, y3), max(y1, y2, y3)
	area := edge(x1, y1, x2, y2, x3, y3)
	if area == 0 {
		s.DrawLine(minX, minY, maxX, maxY, c)
		return
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edge(x2, y2, x3, y3, x, y)
			w1 := edge(x3, y3, x1, y1, x, y)
			w2 := edge(x1, y1, x2, y2, x, y)
			if area > 0 && w0 >= 0 && w1 >= 0 && w2 >= 0 ||
				area < 0 && w0 <= 0 && w1 <= 0 && w2 <= 0 {
				s.DrawPixel(x, y, c)
			}
		}
	}
}

// edge is the doubled signed area of the triangle (a, b, p).
func edge(ax, ay, bx, by, px, py int) int {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func (s *Screen) span(x1, x2, y int, c Color) {
	for x := x1; x <= x2; x++ {
		s.DrawPixel(x, y, c)
	}
}

// DrawBlock paints a w×h rectangle. Filled blocks paint the background;
// outlines use box-drawing characters in the given color.
func (s *Screen) DrawBlock(x, y, w, h int, c Color, filled bool) {
	r := NewRect(x, y, w, h)
	if r.Empty() {
		return
	}
	if !filled {
		s.DrawBox(r, c)
		return
	}
	for yy := r.Y; yy < r.Bottom(); yy++ {
		s.span(r.X, r.Right()-1, yy, c)
	}
}

// DrawImage blits an image with its top-left corner at (x, y) after the
// pivot offset. Transparent cells leave the screen untouched and cells that
// carry no background keep the one already on screen.
func (s *Screen) DrawImage(img *Image, x, y int, opts DrawOptions) {
	if img == nil {
		return
	}
	src := img.transform(opts)
	ox, oy := x-opts.PivotX, y-opts.PivotY
	for yy := 0; yy < src.h; yy++ {
		for xx := 0; xx < src.w; xx++ {
			c := src.At(xx, yy)
			if c.Transparent() || !s.inside(ox+xx, oy+yy) {
				continue
			}
			dst := &s.cells[oy+yy][ox+xx]
			if c.Rune != 0 {
				dst.Rune = c.Rune
				dst.Fg = c.Fg
				if opts.Dim {
					dst.Fg = ColorGray
				}
			}
			if c.Bg != ColorDefault {
				dst.Bg = c.Bg
			}
		}
	}
}
