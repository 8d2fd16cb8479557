package scene

import "github.com/vovakirdan/tui-scene/internal/core"

// Renderer draws primitives at screen coordinates. core.Screen implements it.
type Renderer interface {
	Width() int
	Height() int
	Clear(bg core.Color)
	DrawPixel(x, y int, c core.Color)
	DrawLine(x1, y1, x2, y2 int, c core.Color)
	DrawCircle(cx, cy, radius int, c core.Color, filled bool)
	DrawTriangle(x1, y1, x2, y2, x3, y3 int, c core.Color, filled bool)
	DrawBlock(x, y, w, h int, c core.Color, filled bool)
	DrawImage(img *core.Image, x, y int, opts core.DrawOptions)
	DrawText(x, y int, text string, fg core.Color)
}

// Canvas is what objects draw through during the draw phase.
// It takes world coordinates and converts them with the current viewport.
type Canvas struct {
	r  Renderer
	vp core.Viewport
}

// NewCanvas binds a renderer to a viewport.
func NewCanvas(r Renderer, vp core.Viewport) *Canvas {
	return &Canvas{r: r, vp: vp}
}

// Viewport returns the viewport the canvas converts through.
func (c *Canvas) Viewport() core.Viewport { return c.vp }

// Renderer returns the underlying renderer for screen-space drawing.
func (c *Canvas) Renderer() Renderer { return c.r }

// Pixel paints one cell.
func (c *Canvas) Pixel(x, y int, col core.Color) {
	sx, sy := c.vp.ToScreen(x, y)
	c.r.DrawPixel(sx, sy, col)
}

// Line paints a line between two world points.
func (c *Canvas) Line(x1, y1, x2, y2 int, col core.Color) {
	sx1, sy1 := c.vp.ToScreen(x1, y1)
	sx2, sy2 := c.vp.ToScreen(x2, y2)
	c.r.DrawLine(sx1, sy1, sx2, sy2, col)
}

// Circle paints a circle around a world point.
func (c *Canvas) Circle(x, y, radius int, col core.Color, filled bool) {
	sx, sy := c.vp.ToScreen(x, y)
	c.r.DrawCircle(sx, sy, radius, col, filled)
}

// Triangle paints a triangle between three world points.
func (c *Canvas) Triangle(x1, y1, x2, y2, x3, y3 int, col core.Color, filled bool) {
	sx1, sy1 := c.vp.ToScreen(x1, y1)
	sx2, sy2 := c.vp.ToScreen(x2, y2)
	sx3, sy3 := c.vp.ToScreen(x3, y3)
	c.r.DrawTriangle(sx1, sy1, sx2, sy2, sx3, sy3, col, filled)
}

// Block paints a w×h rectangle with its top-left corner at a world point.
func (c *Canvas) Block(x, y, w, h int, col core.Color, filled bool) {
	sx, sy := c.vp.ToScreen(x, y)
	c.r.DrawBlock(sx, sy, w, h, col, filled)
}

// Image blits an image at a world point.
func (c *Canvas) Image(img *core.Image, x, y int, opts core.DrawOptions) {
	sx, sy := c.vp.ToScreen(x, y)
	c.r.DrawImage(img, sx, sy, opts)
}

// Text writes a string starting at a world point.
func (c *Canvas) Text(x, y int, text string, fg core.Color) {
	sx, sy := c.vp.ToScreen(x, y)
	c.r.DrawText(sx, sy, text, fg)
}
