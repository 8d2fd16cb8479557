// Package menu is the launcher: a list of every other registered demo.
// Choosing one replaces the menu in the running scene.
package menu

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/registry"
	"github.com/vovakirdan/tui-scene/internal/scene"
	"github.com/vovakirdan/tui-scene/internal/widget"
)

// ID is the registry key of the demo.
const ID = "menu"

func init() {
	registry.Register(ID, func() registry.Demo {
		return New()
	})
}

// Demo is the launcher.
type Demo struct {
	font   gfx.Font
	demos  []registry.DemoInfo
	list   *widget.ListBox
	detail *widget.Label
	notice *widget.Dialog
}

// New creates the launcher.
func New() *Demo {
	return &Demo{font: gfx.ASCIIFont(core.ColorWhite)}
}

// ID implements registry.Demo.
func (d *Demo) ID() string { return ID }

// Title implements registry.Demo.
func (d *Demo) Title() string { return "Demo Launcher" }

// Build implements registry.Demo.
func (d *Demo) Build(s *scene.Scene, env registry.Env) error {
	d.demos = d.demos[:0]
	for _, info := range registry.List() {
		if info.ID != ID {
			d.demos = append(d.demos, info)
		}
	}

	titles := make([]string, len(d.demos))
	for i, info := range d.demos {
		titles[i] = info.Title
	}

	vp := s.DefaultViewport()
	s.Add(widget.NewLabel("SCENE DEMOS", 2, 1, gfx.ASCIIFont(core.ColorBrightYellow)))
	d.detail = widget.NewLabel("", 2, 3, gfx.ASCIIFont(core.ColorGray))
	s.Add(d.detail)

	d.list = widget.NewListBox(titles, 2, 5, max(vp.W/2, 20), max(vp.H-7, 3), d.font,
		func(_ scene.ID, ev widget.ListEvent, i int) {
			d.onChoice(s, env, ev, i)
		})
	s.Add(d.list)
	return nil
}

func (d *Demo) onChoice(s *scene.Scene, env registry.Env, ev widget.ListEvent, i int) {
	info := d.demos[i]
	if ev == widget.ChoiceSelect {
		d.detail.SetCaption(fmt.Sprintf("%s  (%s)", info.Title, info.ID))
		return
	}

	env.Sound().Play(env.Sound().Tone("launch", 440, 100*time.Millisecond))
	s.Logger().Info("launching demo", "demo", info.ID)
	err := registry.Switch(s, info.ID, env)
	if err == nil {
		return
	}

	s.Logger().Error("demo failed to start", "demo", info.ID, "err", err)
	s.Clear()
	s.ResetViewport()
	if err := d.Build(s, env); err != nil {
		s.Logger().Error("menu failed to rebuild", "err", err)
		return
	}
	vp := s.DefaultViewport()
	d.notice = widget.NewDialog(err.Error(), 4, 4, max(vp.W-8, 20), 7, core.ColorRed, d.font, nil)
	s.Add(d.notice)
}
