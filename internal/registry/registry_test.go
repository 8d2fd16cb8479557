package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

type marker struct {
	scene.Base
	name string
}

type testDemo struct {
	id      string
	objects int
	err     error
}

func (d testDemo) ID() string    { return d.id }
func (d testDemo) Title() string { return "Test " + d.id }

func (d testDemo) Build(s *scene.Scene, _ Env) error {
	for range d.objects {
		s.Add(&marker{name: d.id})
	}
	return d.err
}

func init() {
	Register("test-a", func() Demo { return testDemo{id: "test-a", objects: 2} })
	Register("test-b", func() Demo { return testDemo{id: "test-b", objects: 1} })
	Register("test-broken", func() Demo { return testDemo{id: "test-broken", err: errors.New("boom")} })
}

func TestListSorted(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID, "List() sorted by ID")
	}
	assert.Contains(t, list, DemoInfo{ID: "test-a", Title: "Test test-a"})
}

func TestCreateAndExists(t *testing.T) {
	assert.True(t, Exists("test-b"))
	assert.False(t, Exists("nope"))

	d, err := Create("test-b")
	require.NoError(t, err)
	assert.Equal(t, "test-b", d.ID())

	_, err = Create("nope")
	assert.Error(t, err)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("test-a", func() Demo { return testDemo{id: "test-a"} })
	})
}

func TestSwitchReplacesObjects(t *testing.T) {
	s := scene.New(core.DefaultConfig(), nil)
	require.NoError(t, Switch(s, "test-a", Env{}))
	s.Sweep()
	require.Equal(t, 2, s.Len())

	s.Camera().Move(5, 5)
	require.NoError(t, Switch(s, "test-b", Env{}))
	assert.Equal(t, s.DefaultViewport(), s.Viewport(), "Switch resets the viewport")
	s.Sweep()

	objs := s.Objects()
	require.Len(t, objs, 1)
	assert.Equal(t, "test-b", objs[0].(*marker).name)
}

func TestSwitchErrors(t *testing.T) {
	s := scene.New(core.DefaultConfig(), nil)
	assert.Error(t, Switch(s, "nope", Env{}), "unknown demo")
	assert.Error(t, Switch(s, "test-broken", Env{}), "build errors are reported")
}

func TestEnvSound(t *testing.T) {
	assert.IsType(t, gfx.Silent{}, (Env{}).Sound(), "empty Env falls back to silent audio")
}
