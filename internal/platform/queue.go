// Package platform holds the pieces shared by the terminal and window
// backends: a thread-safe event queue that a scene loop polls from its own
// goroutine while the backend pushes input and reads back finished frames.
package platform

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// DefaultReleaseDelay is how long a terminal key stays held after its last
// press or auto-repeat.
const DefaultReleaseDelay = 150 * time.Millisecond

// Queue buffers events between a backend and a scene loop.
// It implements scene.Platform.
//
// Terminals report no key releases. When releaseDelay is positive, Press
// marks a button held and the matching KeyUp is synthesized once no press
// has arrived for releaseDelay. With a zero delay the backend reports
// releases itself through Release.
type Queue struct {
	mu     sync.Mutex
	events []scene.Event
	held   map[core.Button]time.Time

	mouseX, mouseY int

	frame   *core.Screen
	updates chan struct{}
	closed  bool

	releaseDelay time.Duration
	now          func() time.Time
}

// NewQueue creates an empty queue.
func NewQueue(releaseDelay time.Duration) *Queue {
	return &Queue{
		held:         make(map[core.Button]time.Time),
		updates:      make(chan struct{}, 1),
		releaseDelay: max(releaseDelay, 0),
		now:          time.Now,
	}
}

// SetClock replaces the time source used for release deadlines.
func (q *Queue) SetClock(now func() time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.now = now
}

// Push appends a raw event.
func (q *Queue) Push(ev scene.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, ev)
}

// Press reports a key press carrying an optional character.
// A repeat of a button that is still held only extends its deadline; the
// repeat's character is forwarded as text so typing keeps working.
func (q *Queue) Press(b core.Button, ch rune) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if b.Valid() {
		if _, held := q.held[b]; held {
			q.held[b] = q.deadline()
			if ch != 0 {
				q.events = append(q.events, scene.Event{Kind: scene.EventText, Char: ch})
			}
			return
		}
		q.held[b] = q.deadline()
	}
	q.events = append(q.events, scene.KeyDown(b, ch))
}

// Release reports a key release.
func (q *Queue) Release(b core.Button) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, held := q.held[b]; !held {
		return
	}
	delete(q.held, b)
	q.events = append(q.events, scene.KeyUp(b))
}

// Text reports a typed character that has no button.
func (q *Queue) Text(ch rune) {
	q.Push(scene.Event{Kind: scene.EventText, Char: ch})
}

// MouseButton reports a mouse button transition.
func (q *Queue) MouseButton(b core.Button, down bool) {
	kind := scene.EventMouseUp
	if down {
		kind = scene.EventMouseDown
	}
	q.Push(scene.Event{Kind: kind, Button: b})
}

// MoveMouse records the pointer position in screen cells.
func (q *Queue) MoveMouse(x, y int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.mouseX, q.mouseY = x, y
}

// Resize reports a new output size.
func (q *Queue) Resize(w, h int) {
	q.Push(scene.Event{Kind: scene.EventResize, W: w, H: h})
}

// Quit asks the loop to stop.
func (q *Queue) Quit() {
	q.Push(scene.Event{Kind: scene.EventQuit})
}

// PollEvents drains pending events and appends releases for held buttons
// whose deadline has passed.
func (q *Queue) PollEvents() []scene.Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.held) > 0 && q.releaseDelay > 0 {
		now := q.now()
		for _, b := range core.Buttons() {
			deadline, held := q.held[b]
			if held && !now.Before(deadline) {
				delete(q.held, b)
				q.events = append(q.events, scene.KeyUp(b))
			}
		}
	}

	events := q.events
	q.events = nil
	return events
}

// MousePosition returns the last recorded pointer position.
func (q *Queue) MousePosition() (int, int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.mouseX, q.mouseY
}

// Present stores a copy of frame and wakes a waiting backend.
func (q *Queue) Present(frame *core.Screen) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	if q.frame == nil {
		q.frame = core.NewScreen(frame.Width(), frame.Height())
	}
	q.frame.CopyFrom(frame)

	select {
	case q.updates <- struct{}{}:
	default:
	}
}

// Frame returns a copy of the latest presented frame, or nil before the first.
func (q *Queue) Frame() *core.Screen {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.frame == nil {
		return nil
	}
	out := core.NewScreen(q.frame.Width(), q.frame.Height())
	out.CopyFrom(q.frame)
	return out
}

// Updates signals after each Present. It is closed by Close.
func (q *Queue) Updates() <-chan struct{} {
	return q.updates
}

// Close marks the loop side finished. Further frames are dropped.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.updates)
}

// Closed reports whether Close has been called.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

func (q *Queue) deadline() time.Time {
	if q.releaseDelay == 0 {
		return time.Time{}
	}
	return q.now().Add(q.releaseDelay)
}

var _ scene.Platform = (*Queue)(nil)
