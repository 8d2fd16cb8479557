// Package window runs scenes in a desktop window through Ebitengine.
// Each screen cell becomes a CellW x CellH pixel block; glyphs are drawn with
// the debug font and backgrounds with filled rectangles.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/platform"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// Debug font glyph size in pixels.
const (
	DefaultCellW = 6
	DefaultCellH = 16
)

// backspaceRepeat is the hold time after which backspace repeats every tick.
const backspaceRepeat = 30

// Options configures the window.
type Options struct {
	Title      string
	Cols, Rows int
	CellW      int
	CellH      int
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "scene"
	}
	if o.CellW <= 0 {
		o.CellW = DefaultCellW
	}
	if o.CellH <= 0 {
		o.CellH = DefaultCellH
	}
	o.Cols = max(o.Cols, 1)
	o.Rows = max(o.Rows, 1)
	return o
}

// Game adapts a platform.Queue to ebiten.Game.
type Game struct {
	queue *platform.Queue
	opts  Options

	cols, rows int
	frame      *core.Screen
	closing    bool

	keys  []ebiten.Key
	chars []rune
}

// NewGame creates a window game reading frames from q.
func NewGame(q *platform.Queue, opts Options) *Game {
	opts = opts.withDefaults()
	return &Game{
		queue: q,
		opts:  opts,
		cols:  opts.Cols,
		rows:  opts.Rows,
	}
}

// Update forwards input and picks up the latest frame.
func (g *Game) Update() error {
	select {
	case _, ok := <-g.queue.Updates():
		if !ok {
			return ebiten.Termination
		}
		g.frame = g.queue.Frame()
	default:
	}

	if ebiten.IsWindowBeingClosed() && !g.closing {
		g.closing = true
		g.queue.Quit()
	}

	g.pollKeys()
	g.pollMouse()
	return nil
}

// pollKeys reports key transitions and typed characters.
func (g *Game) pollKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if b, ok := buttonKeys[k]; ok {
			var ch rune
			if b == core.ButtonReturn {
				ch = '\n'
			}
			g.queue.Press(b, ch)
			continue
		}
		if k == ebiten.KeyBackspace {
			g.queue.Press(core.ButtonNone, '\b')
		}
	}
	if d := inpututil.KeyPressDuration(ebiten.KeyBackspace); d > backspaceRepeat {
		g.queue.Press(core.ButtonNone, '\b')
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if b, ok := buttonKeys[k]; ok {
			g.queue.Release(b)
		}
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.queue.Text(r)
	}
}

// pollMouse reports the pointer cell and button transitions.
func (g *Game) pollMouse() {
	x, y := ebiten.CursorPosition()
	g.queue.MoveMouse(x/g.opts.CellW, y/g.opts.CellH)

	for mb, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb) {
			g.queue.MouseButton(b, true)
		}
		if inpututil.IsMouseButtonJustReleased(mb) {
			g.queue.MouseButton(b, false)
		}
	}
}

// Draw paints the latest frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	if g.frame == nil {
		return
	}

	cw, ch := float32(g.opts.CellW), float32(g.opts.CellH)
	var row strings.Builder
	for y := range g.frame.Height() {
		row.Reset()
		for x := range g.frame.Width() {
			cell := g.frame.GetCell(x, y)
			px, py := float32(x)*cw, float32(y)*ch

			if c, ok := RGBA(cell.Bg); ok {
				vector.DrawFilledRect(screen, px, py, cw, ch, c, false)
			}
			if isBlock(cell.Rune) {
				fg, ok := RGBA(cell.Fg)
				if !ok {
					fg = Foreground
				}
				vector.DrawFilledRect(screen, px, py, cw, ch, fg, false)
				row.WriteByte(' ')
				continue
			}
			row.WriteRune(debugRune(cell.Rune))
		}
		ebitenutil.DebugPrintAt(screen, row.String(), 0, y*g.opts.CellH)
	}
}

// Layout converts the window size to whole cells and reports size changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols, rows := CellGrid(outsideWidth, outsideHeight, g.opts.CellW, g.opts.CellH)
	if cols != g.cols || rows != g.rows {
		g.cols, g.rows = cols, rows
		g.queue.Resize(cols, rows)
	}
	return cols * g.opts.CellW, rows * g.opts.CellH
}

// CellGrid returns how many whole cells fit in a pixel area, at least one each way.
func CellGrid(w, h, cellW, cellH int) (cols, rows int) {
	return max(w/cellW, 1), max(h/cellH, 1)
}

// isBlock reports whether r is a block element drawn as a solid cell.
func isBlock(r rune) bool {
	return r >= 0x2580 && r <= 0x259f
}

// debugRune maps r into the debug font's printable ASCII range.
func debugRune(r rune) rune {
	if r < ' ' || r > '~' {
		return ' '
	}
	return r
}

// Run opens the window and drives loop until the loop stops, the window is
// closed or ctx ends. It must be called from the main goroutine.
func Run(parent context.Context, loop *scene.Loop, q *platform.Queue, opts Options, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	g := NewGame(q, opts)
	ebiten.SetWindowSize(g.opts.Cols*g.opts.CellW, g.opts.Rows*g.opts.CellH)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer q.Close()
		loop.Run(ctx)
	}()

	err := ebiten.RunGame(g)
	cancel()
	<-done

	if err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("window failed", "error", err)
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// Background and Foreground stand in for ColorDefault.
var (
	Background = color.RGBA{0x10, 0x10, 0x10, 0xff}
	Foreground = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
)

var palette = map[core.Color]color.RGBA{
	core.ColorBlack:         {0x00, 0x00, 0x00, 0xff},
	core.ColorRed:           {0xcd, 0x00, 0x00, 0xff},
	core.ColorGreen:         {0x00, 0xcd, 0x00, 0xff},
	core.ColorYellow:        {0xcd, 0xcd, 0x00, 0xff},
	core.ColorBlue:          {0x00, 0x00, 0xee, 0xff},
	core.ColorMagenta:       {0xcd, 0x00, 0xcd, 0xff},
	core.ColorCyan:          {0x00, 0xcd, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xff, 0x00, 0x00, 0xff},
	core.ColorBrightGreen:   {0x00, 0xff, 0x00, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x00, 0xff},
	core.ColorBrightBlue:    {0x5c, 0x5c, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x00, 0xff, 0xff},
	core.ColorBrightCyan:    {0x00, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
	core.ColorDarkGray:      {0x44, 0x44, 0x44, 0xff},
}

// RGBA returns the pixel color of c. ColorDefault has none.
func RGBA(c core.Color) (color.RGBA, bool) {
	rgba, ok := palette[c]
	return rgba, ok
}

var buttonKeys = map[ebiten.Key]core.Button{
	ebiten.KeyArrowUp:      core.ButtonUp,
	ebiten.KeyArrowDown:    core.ButtonDown,
	ebiten.KeyArrowLeft:    core.ButtonLeft,
	ebiten.KeyArrowRight:   core.ButtonRight,
	ebiten.KeySpace:        core.ButtonSpace,
	ebiten.KeyPageUp:       core.ButtonPageUp,
	ebiten.KeyPageDown:     core.ButtonPageDown,
	ebiten.KeyEscape:       core.ButtonEscape,
	ebiten.KeyEnter:        core.ButtonReturn,
	ebiten.KeyNumpadEnter:  core.ButtonReturn,
	ebiten.KeyShiftLeft:    core.ButtonShift,
	ebiten.KeyShiftRight:   core.ButtonShift,
	ebiten.KeyControlLeft:  core.ButtonCtrl,
	ebiten.KeyControlRight: core.ButtonCtrl,
}

var mouseButtons = map[ebiten.MouseButton]core.Button{
	ebiten.MouseButtonLeft:  core.ButtonMouse1,
	ebiten.MouseButtonRight: core.ButtonMouse2,
}
