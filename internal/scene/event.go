package scene

import (
	"time"

	"github.com/vovakirdan/tui-scene/internal/core"
)

// EventKind is the type of a normalized platform event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventMouseDown
	EventMouseUp
	EventText   // Character input without a button, such as IME
	EventResize // Output area changed size
	EventQuit   // Close request; ends the loop after the current tick
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventMouseDown:
		return "MouseDown"
	case EventMouseUp:
		return "MouseUp"
	case EventText:
		return "Text"
	case EventResize:
		return "Resize"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is one entry of the platform event queue.
type Event struct {
	Kind   EventKind
	Button core.Button // ButtonNone when the key has no logical button
	Char   rune        // Typed character, 0 if none
	W, H   int         // New size for EventResize
}

// KeyDown builds a key press event.
func KeyDown(b core.Button, ch rune) Event {
	return Event{Kind: EventKeyDown, Button: b, Char: ch}
}

// KeyUp builds a key release event.
func KeyUp(b core.Button) Event {
	return Event{Kind: EventKeyUp, Button: b}
}

// Platform is the event source and presentation target of a loop.
type Platform interface {
	// PollEvents drains the queue without blocking.
	PollEvents() []Event
	// MousePosition returns the last known pointer position in screen cells.
	MousePosition() (x, y int)
	// Present hands a finished frame to the output.
	Present(frame *core.Screen)
}

// Clock supplies wall time and the frame-rate limiter.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the Clock backed by the time package.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
