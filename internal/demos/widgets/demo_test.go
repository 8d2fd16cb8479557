package widgets

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/registry"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

type recordingAudio struct {
	gfx.Silent
	played []string
}

func (a *recordingAudio) Play(s gfx.Sound) { a.played = append(a.played, s.Name()) }

func build(t *testing.T, env registry.Env) (*Demo, *scene.Scene) {
	t.Helper()
	s := scene.New(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)
	d := New()
	require.NoError(t, d.Build(s, env))
	s.Sweep()
	return d, s
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists(ID))
}

func TestBuildAddsEveryWidget(t *testing.T) {
	root := fstest.MapFS{"notes.txt": {Data: []byte("x")}}
	d, s := build(t, registry.Env{Root: root})
	assert.Equal(t, 8, s.Len())
	require.NotNil(t, d.files)

	_, s = build(t, registry.Env{})
	assert.Equal(t, 7, s.Len(), "no file browser without a root")
}

func TestDialogHasFocusFirst(t *testing.T) {
	d, s := build(t, registry.Env{})

	for _, o := range s.Objects() {
		if o == d.dialog {
			assert.False(t, o.Entity().Disabled())
			continue
		}
		assert.True(t, o.Entity().Disabled(), "%T should wait for the dialog", o)
	}
}

func TestDialogAnswer(t *testing.T) {
	audio := &recordingAudio{}
	d, s := build(t, registry.Env{Audio: audio})

	d.dialog.OnKeyPress(0, core.ButtonReturn)
	s.Sweep()

	require.NotNil(t, d.answer)
	assert.Equal(t, "You pressed OK!", d.answer.Caption)
	assert.Equal(t, []string{"answer"}, audio.played)
	assert.False(t, d.text.Disabled(), "focus returns once the dialog closes")
	_, alive := s.Get(d.dialog.ID())
	assert.False(t, alive)

	d2, _ := build(t, registry.Env{})
	d2.dialog.OnKeyPress(0, core.ButtonLeft)
	d2.dialog.OnKeyPress(0, core.ButtonReturn)
	assert.Equal(t, "You pressed Cancel!", d2.answer.Caption)
}

func TestTimerFillsProgress(t *testing.T) {
	d, _ := build(t, registry.Env{})
	d.timer.Enable()

	for range 3 {
		d.timer.Update(time.Second)
	}
	assert.Equal(t, 3*ProgressStep, d.progress.Progress())
	assert.True(t, d.timer.Running(), "the timer rearms itself")

	d.progress.SetProgress(100)
	d.timer.Update(time.Second)
	assert.Equal(t, 0, d.progress.Progress())
}

func TestConsoleEcho(t *testing.T) {
	d, _ := build(t, registry.Env{})

	for _, r := range "hi\n" {
		d.console.OnTextInput(0, r)
	}

	lines := d.console.Lines()
	assert.Equal(t, "This is a console test! Type below.", lines[0])
	assert.Equal(t, ">:hi", lines[1])
	assert.Equal(t, "you said: hi", lines[2])
	assert.Equal(t, ">:", lines[3])
	assert.True(t, d.console.Reading())
}

func TestPlotDraws(t *testing.T) {
	p := &Plot{Area: gfx.PlotArea{W: 20, H: 10, XMin: -10, XMax: 10, YMin: -1.5, YMax: 1.5}, F: func(float64) float64 { return 0.75 }}
	screen := core.NewScreen(21, 11)
	p.Draw(scene.NewCanvas(screen, core.NewViewport(0, 0, 21, 11)), 0)

	assert.Equal(t, core.ColorGreen, screen.GetCell(4, 2).Bg)
	assert.Equal(t, gfx.AxisColor, screen.GetCell(10, 8).Bg)
}
