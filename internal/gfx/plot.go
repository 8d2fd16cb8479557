package gfx

import (
	"math"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// AxisColor is the color of plot axes.
const AxisColor = core.ColorBlue

// PlotStyle selects how plotted points are joined.
type PlotStyle int

const (
	PlotLine    PlotStyle = iota // Consecutive visible points joined by lines
	PlotScatter                  // One pixel per point
)

// Point is a point in plot coordinates.
type Point struct {
	X, Y float64
}

// PlotArea maps a Cartesian range onto a rectangle of world cells.
// The Y axis points up.
type PlotArea struct {
	X, Y, W, H int
	XMin, XMax float64
	YMin, YMax float64
}

func (a PlotArea) scale() (sx, sy float64) {
	return float64(a.W) / (a.XMax - a.XMin), float64(a.H) / (a.YMax - a.YMin)
}

func (a PlotArea) centers() (px, py, wx, wy float64) {
	return (a.XMax + a.XMin) / 2, (a.YMax + a.YMin) / 2,
		float64(a.X) + float64(a.W)/2, float64(a.Y) + float64(a.H)/2
}

// ToWorld converts a plot point to world coordinates.
func (a PlotArea) ToWorld(p Point) (float64, float64) {
	sx, sy := a.scale()
	px, py, wx, wy := a.centers()
	return wx + (p.X-px)*sx, wy - (p.Y-py)*sy
}

// FromWorld converts world coordinates back to a plot point.
func (a PlotArea) FromWorld(x, y float64) Point {
	sx, sy := a.scale()
	px, py, wx, wy := a.centers()
	return Point{X: (x-wx)/sx + px, Y: -(y-wy)/sy + py}
}

// inside reports whether a world position lies strictly inside the area.
func (a PlotArea) inside(x, y float64) bool {
	return x > float64(a.X) && y > float64(a.Y) &&
		x < float64(a.X+a.W) && y < float64(a.Y+a.H)
}

// PlotPoints draws pts into the area. Points outside the X range or the
// area are skipped. With axes set, the lines x=0 and y=0 are drawn, pinned
// to the area edge when out of range.
func PlotPoints(c *scene.Canvas, a PlotArea, pts []Point, style PlotStyle, axes bool, col core.Color) {
	if a.W <= 0 || a.H <= 0 || a.XMax <= a.XMin || a.YMax <= a.YMin {
		return
	}

	if axes {
		ax, ay := a.ToWorld(Point{})
		xAxis := core.Clamp(int(ay), a.Y, a.Y+a.H)
		yAxis := core.Clamp(int(ax), a.X, a.X+a.W)
		c.Line(yAxis, a.Y, yAxis, a.Y+a.H, AxisColor)
		c.Line(a.X, xAxis, a.X+a.W, xAxis, AxisColor)
	}

	havePrev := false
	var ox, oy int
	for _, p := range pts {
		if p.X > a.XMax || p.X < a.XMin || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		fx, fy := a.ToWorld(p)
		if !a.inside(fx, fy) {
			continue
		}
		x, y := int(fx), int(fy)
		switch style {
		case PlotScatter:
			c.Pixel(x, y, col)
		case PlotLine:
			if havePrev {
				c.Line(ox, oy, x, y, col)
			}
			ox, oy, havePrev = x, y, true
		}
	}
}

// PlotFunction samples f across the area's X range every step and plots it
// as a line with axes. A non-positive step defaults to 0.1.
func PlotFunction(c *scene.Canvas, a PlotArea, f func(float64) float64, step float64, col core.Color) {
	if step <= 0 {
		step = 0.1
	}
	n := int((a.XMax-a.XMin)/step) + 1
	pts := make([]Point, 0, max(n, 0))
	for i := range n {
		x := a.XMin + float64(i)*step
		pts = append(pts, Point{X: x, Y: f(x)})
	}
	PlotPoints(c, a, pts, PlotLine, true, col)
}
