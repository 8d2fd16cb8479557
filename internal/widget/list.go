package widget

import (
	"time"

	"github.com/vovakirdan/tui-scene/internal/choice"
	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// ListEvent tells a list callback what happened to the selection.
type ListEvent int

const (
	ChoiceSelect ListEvent = iota // Selection moved
	ChoiceChosen                  // Return pressed on the selection
)

// String returns a human-readable name for the event.
func (e ListEvent) String() string {
	switch e {
	case ChoiceSelect:
		return "select"
	case ChoiceChosen:
		return "chosen"
	default:
		return "unknown"
	}
}

// listView is the paginated list drawing and navigation shared by ListBox
// and FileListBox.
type listView struct {
	x, y, w, h int
	font       gfx.Font
	back       core.Color
	highlight  core.Color
	pages      *choice.Paginator
}

func newListView(x, y, w, h int, font gfx.Font) listView {
	font = fontOrDefault(font)
	cw, ch := font.GlyphSize()
	return listView{
		x:         x,
		y:         y,
		w:         w,
		h:         h,
		font:      font,
		back:      core.ColorBlack,
		highlight: core.ColorGreen,
		pages:     choice.Build(nil, w/cw, h/ch),
	}
}

// navigate applies a navigation button and reports whether the selection
// moved. The second result is false for buttons that are not navigation.
func (v *listView) navigate(b core.Button) (moved, handled bool) {
	switch b {
	case core.ButtonUp:
		return v.pages.Up(), true
	case core.ButtonDown:
		return v.pages.Down(), true
	case core.ButtonPageUp:
		return v.pages.PageUp(), true
	case core.ButtonPageDown:
		return v.pages.PageDown(), true
	}
	return false, false
}

func (v *listView) draw(c *scene.Canvas) {
	cw, ch := v.font.GlyphSize()

	c.Block(v.x, v.y, v.w, v.h, v.back, true)
	c.Block(v.x-cw, v.y-ch, v.w+2*cw, v.h+2*ch, core.ColorWhite, false)

	lines, up, down := v.pages.Visible()
	if up {
		v.font.PutChar(c, '^', v.x+v.w/2, v.y-ch)
	}
	if down {
		v.font.PutChar(c, 'v', v.x+v.w/2, v.y+v.h)
	}

	for row, line := range lines {
		y := v.y + row*ch
		if line.Selected {
			if line.First {
				v.font.PutChar(c, '>', v.x-cw, y)
			}
			c.Block(v.x, y, v.w, ch, v.highlight, true)
		}
		v.font.PutString(c, line.Text, v.x, y)
	}
}

// ListFunc receives the list's ID, the event and the selected index.
type ListFunc func(id scene.ID, ev ListEvent, index int)

// ListBox lets the user pick one of a list of strings.
// Up, Down, PageUp and PageDown move the selection; Return chooses it and
// removes the list.
type ListBox struct {
	scene.Base

	view     listView
	callback ListFunc
}

// NewListBox creates a list box covering w×h cells at a world position.
func NewListBox(choices []string, x, y, w, h int, font gfx.Font, callback ListFunc) *ListBox {
	l := &ListBox{
		view:     newListView(x, y, w, h, font),
		callback: callback,
	}
	l.X, l.Y = x, y
	l.view.pages.Rebuild(choices)
	return l
}

// SetColors changes the background and highlight colors.
func (l *ListBox) SetColors(back, highlight core.Color) {
	l.view.back, l.view.highlight = back, highlight
}

// SetChoices replaces the entries and selects the first one.
func (l *ListBox) SetChoices(choices []string) { l.view.pages.Rebuild(choices) }

// Current returns the selected index, or -1 for an empty list.
func (l *ListBox) Current() int { return l.view.pages.Current() }

// Paginator exposes the block layout.
func (l *ListBox) Paginator() *choice.Paginator { return l.view.pages }

func (l *ListBox) notify(ev ListEvent) {
	if l.callback != nil && l.view.pages.Current() >= 0 {
		l.callback(l.ID(), ev, l.view.pages.Current())
	}
}

// Create reports the initial selection.
func (l *ListBox) Create() { l.notify(ChoiceSelect) }

// OnKeyPress implements scene.KeyPressHandler.
func (l *ListBox) OnKeyPress(_ time.Duration, b core.Button) {
	if moved, handled := l.view.navigate(b); handled {
		if moved {
			l.notify(ChoiceSelect)
		}
		return
	}
	if b == core.ButtonReturn && l.view.pages.Current() >= 0 {
		l.notify(ChoiceChosen)
		l.Delete()
	}
}

// Draw implements scene.Drawer.
func (l *ListBox) Draw(c *scene.Canvas, _ time.Duration) {
	l.view.x, l.view.y = l.X, l.Y
	l.view.draw(c)
}
