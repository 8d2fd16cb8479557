package scene

import (
	"time"
	"unicode"

	"github.com/vovakirdan/tui-scene/internal/core"
)

// Dispatcher turns a batch of platform events into object callbacks and
// tracks which buttons are held.
type Dispatcher struct {
	held      [core.ButtonCount]bool
	mouseX    int
	mouseY    int
	mouseSeen bool
}

// DispatchResult reports the loop-level outcome of a batch.
type DispatchResult struct {
	Quit    bool
	Resized bool
	W, H    int // Latest size when Resized
}

// IsPressed reports whether b is currently held.
func (d *Dispatcher) IsPressed(b core.Button) bool {
	return b.Valid() && d.held[b]
}

// Dispatch runs the input protocol for one tick:
// press and text callbacks for downs in arrival order, release callbacks
// for ups, then one held notification per held button in enumeration
// order, then a mouse move if the pointer changed since the last tick.
// A down for a button that is already held is ignored.
// A quit event is reported but never cuts the batch short.
func (d *Dispatcher) Dispatch(objs []Object, vp core.Viewport, elapsed time.Duration, events []Event, mx, my int) DispatchResult {
	var res DispatchResult

	for _, ev := range events {
		switch ev.Kind {
		case EventKeyDown, EventMouseDown:
			repeat := ev.Button.Valid() && d.held[ev.Button]
			if ev.Button.Valid() && !repeat {
				d.held[ev.Button] = true
				for _, o := range objs {
					if h, ok := o.(KeyPressHandler); ok && !o.Entity().disabled {
						h.OnKeyPress(elapsed, ev.Button)
					}
				}
			}
			if ev.Kind == EventKeyDown && !repeat && isTextChar(ev.Char) {
				d.text(objs, elapsed, ev.Char)
			}

		case EventKeyUp, EventMouseUp:
			if !ev.Button.Valid() {
				continue
			}
			d.held[ev.Button] = false
			for _, o := range objs {
				if h, ok := o.(KeyReleaseHandler); ok && !o.Entity().disabled {
					h.OnKeyRelease(elapsed, ev.Button)
				}
			}

		case EventText:
			if ev.Char != 0 {
				d.text(objs, elapsed, ev.Char)
			}

		case EventResize:
			res.Resized = true
			res.W, res.H = ev.W, ev.H

		case EventQuit:
			res.Quit = true
		}
	}

	for b := core.Button(0); b < core.ButtonCount; b++ {
		if !d.held[b] {
			continue
		}
		for _, o := range objs {
			if h, ok := o.(KeyHeldHandler); ok && !o.Entity().disabled {
				h.OnKeyPressed(elapsed, b)
			}
		}
	}

	d.mouse(objs, vp, elapsed, mx, my)
	return res
}

func (d *Dispatcher) text(objs []Object, elapsed time.Duration, ch rune) {
	for _, o := range objs {
		if h, ok := o.(TextInputHandler); ok && !o.Entity().disabled {
			h.OnTextInput(elapsed, ch)
		}
	}
}

// mouse dispatches a move when the pointer changed. The first observation
// only records the position.
func (d *Dispatcher) mouse(objs []Object, vp core.Viewport, elapsed time.Duration, mx, my int) {
	if d.mouseSeen && mx == d.mouseX && my == d.mouseY {
		return
	}
	first := !d.mouseSeen
	d.mouseX, d.mouseY, d.mouseSeen = mx, my, true
	if first {
		return
	}

	wx, wy := vp.FromScreen(mx, my)
	for _, o := range objs {
		if h, ok := o.(MouseMoveHandler); ok && !o.Entity().disabled {
			h.OnMouseMove(elapsed, wx, wy)
		}
	}
}

func isTextChar(ch rune) bool {
	return ch == '\b' || ch == '\n' || (ch != 0 && unicode.IsPrint(ch))
}
