package platform

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) now() time.Time { return c.t }

func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestQueue(delay time.Duration) (*Queue, *stepClock) {
	clock := &stepClock{t: time.Unix(1000, 0)}
	q := NewQueue(delay)
	q.SetClock(clock.now)
	return q, clock
}

func TestQueuePressSynthesizesRelease(t *testing.T) {
	q, clock := newTestQueue(100 * time.Millisecond)

	q.Press(core.ButtonUp, 0)
	require.Equal(t, []scene.Event{scene.KeyDown(core.ButtonUp, 0)}, q.PollEvents())

	clock.advance(60 * time.Millisecond)
	q.Press(core.ButtonUp, 0) // auto-repeat
	require.Empty(t, q.PollEvents(), "a repeat without a rune produces nothing")

	clock.advance(60 * time.Millisecond)
	require.Empty(t, q.PollEvents(), "released before the deadline")

	clock.advance(50 * time.Millisecond)
	assert.Equal(t, []scene.Event{scene.KeyUp(core.ButtonUp)}, q.PollEvents())
}

func TestQueueRepeatForwardsText(t *testing.T) {
	q, _ := newTestQueue(100 * time.Millisecond)

	q.Press(core.ButtonSpace, ' ')
	q.Press(core.ButtonSpace, ' ')

	assert.Equal(t, []scene.Event{
		scene.KeyDown(core.ButtonSpace, ' '),
		{Kind: scene.EventText, Char: ' '},
	}, q.PollEvents())
}

func TestQueueUnmappedKeysNeverHold(t *testing.T) {
	q, clock := newTestQueue(100 * time.Millisecond)

	q.Press(core.ButtonNone, 'a')
	q.Press(core.ButtonNone, 'a')
	clock.advance(time.Second)
	events := q.PollEvents()

	require.Len(t, events, 2)
	for _, ev := range events {
		assert.Equal(t, scene.EventKeyDown, ev.Kind)
		assert.Equal(t, 'a', ev.Char)
	}
}

func TestQueueExplicitRelease(t *testing.T) {
	q, clock := newTestQueue(0)

	q.Press(core.ButtonLeft, 0)
	clock.advance(time.Hour)
	require.Len(t, q.PollEvents(), 1, "only the press without a release delay")

	q.Release(core.ButtonLeft)
	q.Release(core.ButtonLeft)
	assert.Equal(t, []scene.Event{scene.KeyUp(core.ButtonLeft)}, q.PollEvents())
}

func TestQueueReleaseOrder(t *testing.T) {
	q, clock := newTestQueue(10 * time.Millisecond)

	q.Press(core.ButtonReturn, '\n')
	q.Press(core.ButtonUp, 0)
	q.PollEvents()
	clock.advance(20 * time.Millisecond)

	events := q.PollEvents()
	require.Len(t, events, 2)
	assert.Equal(t, core.ButtonUp, events[0].Button, "releases follow button order")
	assert.Equal(t, core.ButtonReturn, events[1].Button)
}

func TestQueueEvents(t *testing.T) {
	q := NewQueue(0)

	q.Text('x')
	q.MouseButton(core.ButtonMouse1, true)
	q.MouseButton(core.ButtonMouse1, false)
	q.Resize(100, 40)
	q.Quit()
	q.MoveMouse(7, 3)

	kinds := []scene.EventKind{
		scene.EventText,
		scene.EventMouseDown,
		scene.EventMouseUp,
		scene.EventResize,
		scene.EventQuit,
	}
	events := q.PollEvents()
	require.Len(t, events, len(kinds))
	for i, k := range kinds {
		assert.Equal(t, k, events[i].Kind, "event %d", i)
	}
	assert.Equal(t, 100, events[3].W)
	assert.Equal(t, 40, events[3].H)

	x, y := q.MousePosition()
	assert.Equal(t, 7, x)
	assert.Equal(t, 3, y)
	assert.Empty(t, q.PollEvents(), "queue drained")
}

func TestQueuePresentCopiesFrame(t *testing.T) {
	q := NewQueue(0)
	require.Nil(t, q.Frame(), "no frame before Present")

	s := core.NewScreen(4, 2)
	s.Set(1, 1, '@')
	q.Present(s)
	s.Set(1, 1, '#')

	select {
	case <-q.Updates():
	default:
		t.Fatal("Present did not signal")
	}

	frame := q.Frame()
	assert.Equal(t, '@', frame.Get(1, 1))
	frame.Set(0, 0, '!')
	assert.NotEqual(t, '!', q.Frame().Get(0, 0), "Frame returned shared storage")
}

func TestQueueClose(t *testing.T) {
	q := NewQueue(0)
	q.Close()
	q.Close()

	require.True(t, q.Closed())
	_, ok := <-q.Updates()
	assert.False(t, ok, "Updates channel closed")

	q.Present(core.NewScreen(2, 2))
	assert.Nil(t, q.Frame(), "Present after Close stores nothing")
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue(0)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				q.Text('k')
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.PollEvents(), 800)
}
