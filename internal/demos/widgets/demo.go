// Package widgets is a tour of the UI objects: a text box, a progress bar
// fed by a timer, a picture, a function plot, a file browser, a console and
// an OK/Cancel dialog.
package widgets

import (
	_ "embed"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/registry"
	"github.com/vovakirdan/tui-scene/internal/scene"
	"github.com/vovakirdan/tui-scene/internal/widget"
)

// ID is the registry key of the demo.
const ID = "widgets"

// ProgressStep is how much the bar grows on every timer tick.
const ProgressStep = 10

//go:embed assets/picture.yaml
var pictureYAML []byte

func init() {
	registry.Register(ID, func() registry.Demo {
		return New()
	})
}

// Demo builds the widget tour.
type Demo struct {
	font     gfx.Font
	audio    gfx.Audio
	progress *widget.ProgressBar
	timer    *scene.Timer
	console  *widget.Console
	files    *widget.FileListBox
	text     *widget.TextBox
	dialog   *widget.Dialog
	answer   *widget.Label
}

// New creates the demo.
func New() *Demo {
	return &Demo{font: gfx.ASCIIFont(core.ColorWhite)}
}

// ID implements registry.Demo.
func (d *Demo) ID() string { return ID }

// Title implements registry.Demo.
func (d *Demo) Title() string { return "Widget Tour" }

// Build implements registry.Demo.
func (d *Demo) Build(s *scene.Scene, env registry.Env) error {
	d.audio = env.Sound()

	img, err := gfx.ParseImage(pictureYAML)
	if err != nil {
		return fmt.Errorf("widgets: picture: %w", err)
	}

	d.text = widget.NewTextBox(1, 0, 30, d.font)
	d.text.OnSubmit = func(_ scene.ID, text string) {
		s.Logger().Info("text submitted", "text", text)
		d.text.SetText("")
	}

	d.progress = widget.NewProgressBar(1, 2, 24, 3, gfx.ASCIIFont(core.ColorBlack))
	d.timer = scene.NewTimer(time.Second, d.onTimer)

	d.console = widget.NewConsole(42, 14, 38, 9, d.font, d.onLine)
	d.console.PutString("This is a console test! Type below.\n")
	d.console.GetInput(">:")

	s.Add(widget.NewPictureBox(img, 28, 1))
	if env.Root != nil {
		d.files, err = widget.NewFileListBox(env.Root, 2, 11, 36, 10, d.font, func(_ scene.ID, ev widget.ListEvent, name string) {
			if ev != widget.ChoiceChosen {
				return
			}
			s.Logger().Info("file chosen", "path", name)
			d.console.PutString(name + "\n")
		})
		if err != nil {
			return fmt.Errorf("widgets: file list: %w", err)
		}
		s.Add(d.files)
	}
	s.Add(d.console)
	s.Add(&Plot{Area: gfx.PlotArea{X: 46, Y: 1, W: 32, H: 10, XMin: -10, XMax: 10, YMin: -1.5, YMax: 1.5}, F: math.Sin})
	s.Add(d.progress)
	s.Add(d.timer)
	s.Add(d.text)
	d.timer.Start()

	d.dialog = widget.NewConfirm("Hello World! This is a message from a dialog box!",
		15, 6, 50, 8, core.ColorDarkGray, d.font, func(_ scene.ID, ok bool) {
			caption, freq := "You pressed Cancel!", 220.0
			if ok {
				caption, freq = "You pressed OK!", 880.0
			}
			d.answer = widget.NewLabel(caption, 32, 0, d.font)
			s.Add(d.answer)
			d.audio.Play(d.audio.Tone("answer", freq, 150*time.Millisecond))
		})
	s.Add(d.dialog)
	return nil
}

// onTimer grows the bar and rearms the timer, wrapping once full.
func (d *Demo) onTimer(scene.ID) {
	next := d.progress.Progress() + ProgressStep
	if d.progress.Progress() >= 100 {
		next = 0
	}
	d.progress.SetProgress(next)
	d.timer.Start()
}

// onLine echoes a console line and prompts again.
func (d *Demo) onLine(_ scene.ID, line string) {
	if line != "" {
		d.console.PutString("you said: " + line + "\n")
	}
	d.console.GetInput(">:")
}

// Plot draws a function of x over a fixed area every frame.
type Plot struct {
	scene.Base

	Area  gfx.PlotArea
	F     func(float64) float64
	Color core.Color
}

// Draw implements scene.Drawer.
func (p *Plot) Draw(c *scene.Canvas, _ time.Duration) {
	col := p.Color
	if col == core.ColorDefault {
		col = core.ColorGreen
	}
	gfx.PlotFunction(c, p.Area, p.F, 0.1, col)
}
