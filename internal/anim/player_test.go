package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

type strip []*core.Image

func (s strip) Len() int                { return len(s) }
func (s strip) Frame(i int) *core.Image { return s[i] }

func newStrip(glyphs string) strip {
	var s strip
	for _, r := range glyphs {
		s = append(s, core.ImageFromRows([]string{string(r)}, core.ColorWhite, 0))
	}
	return s
}

const ms = time.Millisecond

func TestPlayerAdvanceAndStop(t *testing.T) {
	p := NewPlayer(newStrip("0123456789"))
	p.Add("walk", []int{5, 2, 9}, 200*ms)
	require.NoError(t, p.Play("walk", false))

	p.Update(200 * ms)
	p.Update(200 * ms)
	p.Update(50 * ms)

	assert.Equal(t, 2, p.FrameIndex())
	assert.Equal(t, 50*ms, p.Elapsed())
	idx, ok := p.SheetIndex()
	require.True(t, ok)
	assert.Equal(t, 9, idx)

	p.Update(200 * ms)
	assert.Equal(t, Stopped, p.State())
	assert.Equal(t, "", p.Current())
	assert.Equal(t, 0, p.FrameIndex())
	assert.Equal(t, time.Duration(0), p.Elapsed())
}

func TestPlayerLoopWraps(t *testing.T) {
	p := NewPlayer(newStrip("0123456789"))
	p.Add("walk", []int{5, 2, 9}, 200*ms)
	require.NoError(t, p.Play("walk", true))

	p.Update(200 * ms)
	p.Update(200 * ms)
	p.Update(50 * ms)
	p.Update(200 * ms)

	assert.True(t, p.Playing())
	assert.Equal(t, 0, p.FrameIndex())
	idx, _ := p.SheetIndex()
	assert.Equal(t, 5, idx)
}

func TestPlayerNoCatchUp(t *testing.T) {
	p := NewPlayer(nil)
	p.Add("idle", []int{0, 1, 2, 3}, 100*ms)
	require.NoError(t, p.Play("idle", true))

	p.Update(time.Second)

	assert.Equal(t, 1, p.FrameIndex(), "one advance per update at most")
	assert.Equal(t, time.Duration(0), p.Elapsed())
}

func TestPlayerUnknownAnimation(t *testing.T) {
	p := NewPlayer(nil)
	p.Add("idle", []int{0}, 100*ms)
	require.NoError(t, p.Play("idle", true))
	p.Update(40 * ms)

	err := p.Play("jump", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "jump")
	assert.Equal(t, "idle", p.Current(), "state is unchanged on error")
	assert.Equal(t, 40*ms, p.Elapsed())
}

func TestPlayerUpdateWhileStopped(t *testing.T) {
	p := NewPlayer(nil)
	p.Add("idle", []int{0, 1}, 100*ms)

	p.Update(time.Second)

	assert.Equal(t, Stopped, p.State())
	assert.Equal(t, time.Duration(0), p.Elapsed())
}

func TestPlayerRestartResets(t *testing.T) {
	p := NewPlayer(nil)
	p.Add("a", []int{0, 1, 2}, 100*ms)
	p.Add("b", []int{3, 4}, 50*ms)
	require.NoError(t, p.Play("a", true))
	p.Update(100 * ms)
	p.Update(30 * ms)

	require.NoError(t, p.Play("b", false))

	assert.Equal(t, "b", p.Current())
	assert.Equal(t, 0, p.FrameIndex())
	assert.Equal(t, time.Duration(0), p.Elapsed())
	assert.False(t, p.Looping())
}

func TestPlayerDraw(t *testing.T) {
	p := NewPlayer(newStrip("abc"))
	p.Add("ok", []int{2}, 100*ms)
	p.Add("bad", []int{7}, 100*ms)
	screen := core.NewScreen(5, 1)
	c := scene.NewCanvas(screen, core.NewViewport(0, 0, 5, 1))

	p.Draw(c, 0, 0, core.DrawOptions{})
	assert.Equal(t, "     ", screen.String(), "stopped player draws nothing")

	require.NoError(t, p.Play("bad", true))
	p.Draw(c, 0, 0, core.DrawOptions{})
	assert.Equal(t, "     ", screen.String(), "out-of-range sheet index draws nothing")

	require.NoError(t, p.Play("ok", true))
	p.Draw(c, 1, 0, core.DrawOptions{})
	assert.Equal(t, " c   ", screen.String())
}
