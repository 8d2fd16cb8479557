// Package browser lets the user pick files from the configured root and
// keeps a history of the picks.
package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/registry"
	"github.com/vovakirdan/tui-scene/internal/scene"
	"github.com/vovakirdan/tui-scene/internal/widget"
)

// ID is the registry key of the demo.
const ID = "browser"

// ErrNoRoot is returned by Build when the environment has no file tree.
var ErrNoRoot = errors.New("browser: no file tree to browse")

func init() {
	registry.Register(ID, func() registry.Demo {
		return New()
	})
}

// Demo is the file browser.
type Demo struct {
	font   gfx.Font
	scene  *scene.Scene
	env    registry.Env
	status *widget.Label
	files  *widget.FileListBox
	saved  *widget.Dialog
	picks  int
}

// New creates the demo.
func New() *Demo {
	return &Demo{font: gfx.ASCIIFont(core.ColorWhite)}
}

// ID implements registry.Demo.
func (d *Demo) ID() string { return ID }

// Title implements registry.Demo.
func (d *Demo) Title() string { return "File Browser" }

// Build implements registry.Demo.
func (d *Demo) Build(s *scene.Scene, env registry.Env) error {
	if env.Root == nil {
		return ErrNoRoot
	}
	d.scene, d.env = s, env

	s.Add(widget.NewLabel("Up/Down/PgUp/PgDn move, Return opens", 1, 0, gfx.ASCIIFont(core.ColorGray)))
	d.status = widget.NewLabel("", 1, 1, d.font)
	s.Add(d.status)
	return d.open()
}

// open adds a fresh browser at the root.
func (d *Demo) open() error {
	vp := d.scene.DefaultViewport()
	files, err := widget.NewFileListBox(d.env.Root, 2, 6, max(vp.W-4, 10), max(vp.H-8, 3), d.font, d.onFile)
	if err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	d.files = files
	d.scene.Add(files)
	return nil
}

func (d *Demo) onFile(_ scene.ID, ev widget.ListEvent, name string) {
	if ev == widget.ChoiceSelect {
		d.status.SetCaption(name)
		return
	}

	d.picks++
	msg := "Picked " + name
	if d.env.Picks != nil {
		id, err := d.env.Picks.SavePick(ID, name)
		if err != nil {
			d.scene.Logger().Error("saving pick failed", "path", name, "err", err)
			msg = "Could not save " + name
		} else {
			msg = fmt.Sprintf("Saved pick #%d: %s", id, name)
		}
	}
	d.env.Sound().Play(d.env.Sound().Tone("pick", 660, 80*time.Millisecond))

	vp := d.scene.DefaultViewport()
	d.saved = widget.NewDialog(msg, 4, 4, max(vp.W-8, 20), 7, core.ColorBlue, d.font, func(scene.ID, bool) {
		if err := d.open(); err != nil {
			d.scene.Logger().Error("reopening browser failed", "err", err)
		}
	})
	d.scene.Add(d.saved)
}

// Picks returns how many files were chosen since Build.
func (d *Demo) Picks() int { return d.picks }
