package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-scene/internal/core"
)

func TestDispatchPressHeldRelease(t *testing.T) {
	var log []string
	o := newRecorder("a", &log)
	objs := []Object{o}
	vp := core.NewViewport(0, 0, 80, 24)
	var d Dispatcher

	d.Dispatch(objs, vp, 0, []Event{KeyDown(core.ButtonUp, 0)}, 0, 0)
	assert.Equal(t, []string{"a:press Up", "a:held Up"}, log)
	assert.True(t, d.IsPressed(core.ButtonUp))

	log = nil
	d.Dispatch(objs, vp, 0, nil, 0, 0)
	assert.Equal(t, []string{"a:held Up"}, log, "a held button only repeats")

	log = nil
	d.Dispatch(objs, vp, 0, []Event{KeyDown(core.ButtonUp, 0)}, 0, 0)
	assert.Equal(t, []string{"a:held Up"}, log, "a second down while held is not a press")

	log = nil
	d.Dispatch(objs, vp, 0, []Event{KeyUp(core.ButtonUp)}, 0, 0)
	assert.Equal(t, []string{"a:release Up"}, log)
	assert.False(t, d.IsPressed(core.ButtonUp))

	log = nil
	d.Dispatch(objs, vp, 0, nil, 0, 0)
	assert.Empty(t, log)
}

func TestDispatchHeldInButtonOrder(t *testing.T) {
	var log []string
	a := newRecorder("a", &log)
	b := newRecorder("b", &log)
	var d Dispatcher

	events := []Event{
		KeyDown(core.ButtonSpace, ' '),
		KeyDown(core.ButtonLeft, 0),
	}
	d.Dispatch([]Object{a, b}, core.Viewport{}, 0, events, 0, 0)

	assert.Equal(t, []string{
		"a:press Space", "b:press Space",
		"a:text ' '", "b:text ' '",
		"a:press Left", "b:press Left",
		"a:held Left", "b:held Left",
		"a:held Space", "b:held Space",
	}, log)
}

func TestDispatchTextInput(t *testing.T) {
	var log []string
	o := newRecorder("a", &log)
	var d Dispatcher

	events := []Event{
		KeyDown(core.ButtonNone, 'x'),
		KeyDown(core.ButtonNone, '\t'),
		KeyDown(core.ButtonNone, '\b'),
		KeyDown(core.ButtonReturn, '\n'),
		{Kind: EventText, Char: 'ж'},
		KeyUp(core.ButtonReturn),
	}
	d.Dispatch([]Object{o}, core.Viewport{}, 0, events, 0, 0)

	assert.Equal(t, []string{
		"a:text 'x'",
		"a:text '\\b'",
		"a:press Return",
		"a:text '\\n'",
		"a:text 'ж'",
		"a:release Return",
	}, log)
}

func TestDispatchRepeatDownDecodesNoText(t *testing.T) {
	var log []string
	o := newRecorder("a", &log)
	var d Dispatcher

	d.Dispatch([]Object{o}, core.Viewport{}, 0, []Event{KeyDown(core.ButtonSpace, ' ')}, 0, 0)
	assert.Equal(t, []string{"a:press Space", "a:text ' '", "a:held Space"}, log)

	log = nil
	d.Dispatch([]Object{o}, core.Viewport{}, 0, []Event{KeyDown(core.ButtonSpace, ' ')}, 0, 0)
	assert.Equal(t, []string{"a:held Space"}, log, "a down for a held button is neither press nor text")

	log = nil
	events := []Event{
		KeyDown(core.ButtonNone, '\b'),
		KeyDown(core.ButtonNone, '\b'),
	}
	d.Dispatch([]Object{o}, core.Viewport{}, 0, events, 0, 0)
	assert.Equal(t, []string{"a:text '\\b'", "a:text '\\b'", "a:held Space"}, log, "keystrokes without a button are never repeats")
}

func TestDispatchSkipsDisabled(t *testing.T) {
	var log []string
	a := newRecorder("a", &log)
	b := newRecorder("b", &log)
	b.Disable()
	var d Dispatcher

	d.Dispatch([]Object{a, b}, core.Viewport{}, 0, []Event{KeyDown(core.ButtonDown, 0)}, 0, 0)
	for _, line := range log {
		assert.NotContains(t, line, "b:")
	}
	assert.NotEmpty(t, log)
}

func TestDispatchDisableDuringPhase(t *testing.T) {
	var log []string
	a := newRecorder("a", &log)
	b := newRecorder("b", &log)
	a.onPress = func(core.Button) { b.Disable() }
	var d Dispatcher

	d.Dispatch([]Object{a, b}, core.Viewport{}, 0, []Event{{Kind: EventMouseDown, Button: core.ButtonMouse1}}, 0, 0)
	assert.Equal(t, []string{"a:press Mouse1", "a:held Mouse1"}, log)
}

func TestDispatchMouseMove(t *testing.T) {
	var log []string
	o := newRecorder("a", &log)
	vp := core.NewViewport(100, 50, 80, 24)
	var d Dispatcher

	d.Dispatch([]Object{o}, vp, 0, nil, 3, 4)
	assert.Empty(t, log, "first observation only records the position")

	d.Dispatch([]Object{o}, vp, 0, nil, 3, 4)
	assert.Empty(t, log)

	d.Dispatch([]Object{o}, vp, 0, nil, 5, 4)
	assert.Equal(t, []string{"a:move 105,54"}, log)
}

func TestDispatchQuitAndResize(t *testing.T) {
	var log []string
	o := newRecorder("a", &log)
	var d Dispatcher

	events := []Event{
		{Kind: EventQuit},
		{Kind: EventResize, W: 100, H: 30},
		KeyDown(core.ButtonEscape, 0),
	}
	res := d.Dispatch([]Object{o}, core.Viewport{}, 0, events, 0, 0)

	assert.True(t, res.Quit)
	require.True(t, res.Resized)
	assert.Equal(t, 100, res.W)
	assert.Equal(t, 30, res.H)
	assert.Contains(t, log, "a:press Escape", "quit does not cut the batch short")
}
