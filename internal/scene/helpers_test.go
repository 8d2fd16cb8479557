package scene

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-scene/internal/core"
)

// recorder implements every capability and appends a line per callback.
type recorder struct {
	Base
	name string
	log  *[]string

	onUpdate func()
	onPress  func(b core.Button)
}

func newRecorder(name string, log *[]string) *recorder {
	return &recorder{name: name, log: log}
}

func (r *recorder) add(format string, args ...any) {
	*r.log = append(*r.log, r.name+":"+fmt.Sprintf(format, args...))
}

func (r *recorder) Create() { r.add("create") }

func (r *recorder) Update(time.Duration) {
	r.add("update")
	if r.onUpdate != nil {
		r.onUpdate()
	}
}

func (r *recorder) Draw(*Canvas, time.Duration) { r.add("draw") }

func (r *recorder) OnTextInput(_ time.Duration, ch rune) { r.add("text %q", ch) }

func (r *recorder) OnKeyPress(_ time.Duration, b core.Button) {
	r.add("press %s", b)
	if r.onPress != nil {
		r.onPress(b)
	}
}

func (r *recorder) OnKeyPressed(_ time.Duration, b core.Button) { r.add("held %s", b) }

func (r *recorder) OnKeyRelease(_ time.Duration, b core.Button) { r.add("release %s", b) }

func (r *recorder) OnMouseMove(_ time.Duration, x, y int) { r.add("move %d,%d", x, y) }

func (r *recorder) OnDestroy() { r.add("destroy") }

// fakePlatform serves queued event batches, one per poll.
type fakePlatform struct {
	batches  [][]Event
	mx, my   int
	presents int
	last     string
}

func (p *fakePlatform) PollEvents() []Event {
	if len(p.batches) == 0 {
		return nil
	}
	batch := p.batches[0]
	p.batches = p.batches[1:]
	return batch
}

func (p *fakePlatform) MousePosition() (int, int) { return p.mx, p.my }

func (p *fakePlatform) Present(frame *core.Screen) {
	p.presents++
	p.last = frame.String()
}

// fakeClock advances by step on every Now call and records sleeps.
type fakeClock struct {
	now    time.Time
	step   time.Duration
	sleeps []time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0), step: step}
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

// filter keeps entries whose callback name starts with kind.
func filter(log []string, kind string) []string {
	var out []string
	for _, line := range log {
		if _, call, ok := strings.Cut(line, ":"); ok && strings.HasPrefix(call, kind) {
			out = append(out, line)
		}
	}
	return out
}
