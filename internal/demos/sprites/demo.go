// Package sprites shows an animated walker on a scrolling tile map.
// Arrow keys move the walker, the camera follows it, a left click moves it
// to the pointer and Space toggles the status line.
package sprites

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-scene/internal/anim"
	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/registry"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// ID is the registry key of the demo.
const ID = "sprites"

// Map size in tiles.
const (
	MapCols = 30
	MapRows = 15
)

// Tile indices into the tile set.
const (
	TileGrass = 1
	TileWater = 2
	TileWall  = 3
	TileTree  = 4
)

// StepInterval is how long an arrow key must be held per cell of movement.
const StepInterval = 50 * time.Millisecond

var (
	//go:embed assets/tiles.yaml
	tilesYAML []byte

	//go:embed assets/walker.yaml
	walkerYAML []byte
)

func init() {
	registry.Register(ID, func() registry.Demo {
		return New()
	})
}

// Demo builds the sprite scene.
type Demo struct {
	tiles  *TileMap
	walker *Walker
	hud    *HUD
}

// New creates the demo.
func New() *Demo { return &Demo{} }

// ID implements registry.Demo.
func (d *Demo) ID() string { return ID }

// Title implements registry.Demo.
func (d *Demo) Title() string { return "Sprites & Tiles" }

// Build implements registry.Demo.
func (d *Demo) Build(s *scene.Scene, env registry.Env) error {
	sheet, err := gfx.ParseImage(tilesYAML)
	if err != nil {
		return fmt.Errorf("sprites: tiles: %w", err)
	}
	frames, err := gfx.ParseImage(walkerYAML)
	if err != nil {
		return fmt.Errorf("sprites: walker: %w", err)
	}

	d.tiles = NewTileMap(gfx.NewTileSet(sheet, 4, 2, 4), GenerateMap(MapCols, MapRows))
	w, h := d.tiles.Size()

	player := anim.NewPlayer(gfx.NewSprite(frames, 4, 1))
	player.Add("idle", []int{0, 0, 0, 1}, 400*time.Millisecond)
	player.Add("walk", []int{2, 3}, 150*time.Millisecond)
	if err := player.Play("idle", true); err != nil {
		return fmt.Errorf("sprites: %w", err)
	}

	d.walker = NewWalker(player, core.NewRect(4, 2, w-8-3, h-4-3), core.NewRect(0, 0, w, h))
	d.walker.X, d.walker.Y = w/2, h/2
	d.hud = &HUD{walker: d.walker, font: gfx.ASCIIFont(core.ColorBrightWhite), audio: env.Sound()}

	s.Add(d.tiles)
	s.Add(d.walker)
	s.Add(d.hud)
	d.walker.Follow()
	return nil
}

// GenerateMap lays out a walled field with a pond and scattered trees.
func GenerateMap(cols, rows int) [][]int {
	grid := make([][]int, rows)
	for y := range grid {
		grid[y] = make([]int, cols)
		for x := range grid[y] {
			switch {
			case x == 0 || y == 0 || x == cols-1 || y == rows-1:
				grid[y][x] = TileWall
			case x >= cols/5 && x < cols/5+4 && y >= rows/4 && y < rows/4+3:
				grid[y][x] = TileWater
			case (x*7+y*13)%11 == 0:
				grid[y][x] = TileTree
			default:
				grid[y][x] = TileGrass
			}
		}
	}
	return grid
}

// TileMap draws a grid of tiles with its corner at the object's position.
type TileMap struct {
	scene.Base

	set  *gfx.TileSet
	grid [][]int
}

// NewTileMap creates a map at the world origin.
func NewTileMap(set *gfx.TileSet, grid [][]int) *TileMap {
	return &TileMap{set: set, grid: grid}
}

// Size returns the map size in cells.
func (m *TileMap) Size() (int, int) {
	tw, th := m.set.TileSize()
	if len(m.grid) == 0 {
		return 0, 0
	}
	return len(m.grid[0]) * tw, len(m.grid) * th
}

// Draw implements scene.Drawer.
func (m *TileMap) Draw(c *scene.Canvas, _ time.Duration) {
	m.set.DrawMap(c, m.grid, m.X, m.Y)
}

// Walker moves while arrow keys are held and keeps the camera on itself.
type Walker struct {
	scene.Base

	player *anim.Player
	bounds core.Rect
	world  core.Rect
	left   bool
	acc    time.Duration
}

// NewWalker creates a walker confined to bounds. The camera never shows
// past world.
func NewWalker(player *anim.Player, bounds, world core.Rect) *Walker {
	return &Walker{player: player, bounds: bounds, world: world}
}

// Player returns the walker's animation player.
func (w *Walker) Player() *anim.Player { return w.player }

// MoveTo places the walker, clamped to its bounds, and recenters the camera.
func (w *Walker) MoveTo(x, y int) {
	w.X = core.Clamp(x, w.bounds.X, w.bounds.Right())
	w.Y = core.Clamp(y, w.bounds.Y, w.bounds.Bottom())
	w.Follow()
}

// Follow centers the camera on the walker without showing past the map.
func (w *Walker) Follow() {
	s := w.Scene()
	if s == nil {
		return
	}
	cam := s.Camera()
	cam.CenterOn(w.X+1, w.Y+1)
	cam.X = core.Clamp(cam.X, w.world.X, max(w.world.Right()-cam.W, w.world.X))
	cam.Y = core.Clamp(cam.Y, w.world.Y, max(w.world.Bottom()-cam.H, w.world.Y))
}

// Update implements scene.Updater.
func (w *Walker) Update(elapsed time.Duration) {
	w.player.Update(elapsed)

	s := w.Scene()
	if s == nil {
		return
	}
	var dx, dy int
	if s.IsPressed(core.ButtonLeft) {
		dx--
	}
	if s.IsPressed(core.ButtonRight) {
		dx++
	}
	if s.IsPressed(core.ButtonUp) {
		dy--
	}
	if s.IsPressed(core.ButtonDown) {
		dy++
	}

	if dx == 0 && dy == 0 {
		w.acc = 0
		if w.player.Current() != "idle" {
			_ = w.player.Play("idle", true)
		}
		return
	}
	if w.player.Current() != "walk" {
		_ = w.player.Play("walk", true)
	}
	if dx != 0 {
		w.left = dx < 0
	}

	w.acc += elapsed
	if w.acc < StepInterval {
		return
	}
	w.acc = 0
	w.MoveTo(w.X+dx, w.Y+dy)
}

// Draw implements scene.Drawer.
func (w *Walker) Draw(c *scene.Canvas, _ time.Duration) {
	w.player.Draw(c, w.X, w.Y, core.DrawOptions{FlipH: w.left})
}

// HUD shows the walker, pointer and camera positions in the top row.
type HUD struct {
	scene.Base

	walker *Walker
	font   gfx.Font
	audio  gfx.Audio
	mouseX int
	mouseY int
}

// Status returns the text of the status line.
func (h *HUD) Status(cam core.Viewport) string {
	return fmt.Sprintf("walker %d,%d  mouse %d,%d  camera %d,%d",
		h.walker.X, h.walker.Y, h.mouseX, h.mouseY, cam.X, cam.Y)
}

// OnMouseMove implements scene.MouseMoveHandler.
func (h *HUD) OnMouseMove(_ time.Duration, x, y int) {
	h.mouseX, h.mouseY = x, y
}

// OnKeyPress implements scene.KeyPressHandler.
func (h *HUD) OnKeyPress(_ time.Duration, b core.Button) {
	switch b {
	case core.ButtonMouse1:
		if !h.walker.world.Contains(h.mouseX, h.mouseY) {
			return
		}
		h.walker.MoveTo(h.mouseX, h.mouseY)
		h.audio.Play(h.audio.Tone("hop", 520, 60*time.Millisecond))
	case core.ButtonSpace:
		if h.Hidden() {
			h.Show()
		} else {
			h.Hide()
		}
	}
}

// Draw implements scene.Drawer. The line stays pinned to the screen.
func (h *HUD) Draw(c *scene.Canvas, _ time.Duration) {
	cam := c.Viewport()
	text := h.Status(cam)
	c.Block(cam.X, cam.Y, gfx.Measure(h.font, text)+2, 1, core.ColorBlack, true)
	h.font.PutString(c, text, cam.X+1, cam.Y)
}
