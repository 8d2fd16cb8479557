package widget

import (
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/vovakirdan/tui-scene/internal/choice"
	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// FileFunc receives the browser's ID, the event and the slash-separated
// path of the selection within the browsed file system.
type FileFunc func(id scene.ID, ev ListEvent, name string)

type fileEntry struct {
	name string
	dir  bool
}

// FileListBox browses a file system. Choosing a directory enters it,
// ".." leads back up to the root, and choosing a file reports it and
// removes the browser.
type FileListBox struct {
	scene.Base

	Ribbon core.Color

	view     listView
	fsys     fs.FS
	dir      string
	entries  []fileEntry
	callback FileFunc
}

// NewFileListBox creates a browser showing the root of fsys.
func NewFileListBox(fsys fs.FS, x, y, w, h int, font gfx.Font, callback FileFunc) (*FileListBox, error) {
	l := &FileListBox{
		Ribbon:   core.ColorBlue,
		view:     newListView(x, y, w, h, font),
		fsys:     fsys,
		callback: callback,
	}
	l.X, l.Y = x, y

	entries, err := l.list(".")
	if err != nil {
		return nil, err
	}
	l.show(".", entries)
	return l, nil
}

func (l *FileListBox) list(dir string) ([]fileEntry, error) {
	des, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	entries := make([]fileEntry, 0, len(des)+1)
	if dir != "." {
		entries = append(entries, fileEntry{name: "..", dir: true})
	}
	for _, de := range des {
		entries = append(entries, fileEntry{name: de.Name(), dir: de.IsDir()})
	}
	return entries, nil
}

func (l *FileListBox) show(dir string, entries []fileEntry) {
	l.dir = dir
	l.entries = entries
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.name
		if e.dir {
			labels[i] = "-> " + e.name
		}
	}
	l.view.pages.Rebuild(labels)
}

// Dir returns the directory being shown.
func (l *FileListBox) Dir() string { return l.dir }

// Names returns the entries of the current directory in display order.
func (l *FileListBox) Names() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.name
	}
	return out
}

// Paginator exposes the block layout.
func (l *FileListBox) Paginator() *choice.Paginator { return l.view.pages }

// Selected returns the path of the selected entry and whether it is a
// directory.
func (l *FileListBox) Selected() (string, bool, bool) {
	i := l.view.pages.Current()
	if i < 0 {
		return "", false, false
	}
	e := l.entries[i]
	if e.name == ".." {
		return path.Dir(l.dir), true, true
	}
	return path.Join(l.dir, e.name), e.dir, true
}

// OnKeyPress implements scene.KeyPressHandler.
func (l *FileListBox) OnKeyPress(_ time.Duration, b core.Button) {
	if moved, handled := l.view.navigate(b); handled {
		if moved && l.callback != nil {
			if name, _, ok := l.Selected(); ok {
				l.callback(l.ID(), ChoiceSelect, name)
			}
		}
		return
	}
	if b != core.ButtonReturn {
		return
	}

	name, dir, ok := l.Selected()
	if !ok {
		return
	}
	if dir {
		l.enter(name)
		return
	}
	if l.callback != nil {
		l.callback(l.ID(), ChoiceChosen, name)
	}
	l.Delete()
}

// enter switches to dir, keeping the current listing if it cannot be read.
func (l *FileListBox) enter(dir string) {
	entries, err := l.list(dir)
	if err != nil {
		if s := l.Scene(); s != nil {
			s.Logger().Warn("file browser listing failed", "dir", dir, "err", err)
		}
		return
	}
	l.show(dir, entries)
}

// Draw implements scene.Drawer.
func (l *FileListBox) Draw(c *scene.Canvas, _ time.Duration) {
	l.view.x, l.view.y = l.X, l.Y
	cw, ch := l.view.font.GlyphSize()

	c.Block(l.X-cw, l.Y-3*ch, l.view.w+2*cw, 2*ch, l.Ribbon, true)
	if i := l.view.pages.Current(); i >= 0 {
		header := "Selected: " + l.entries[i].name
		if l.entries[i].dir {
			header += " (DIRECTORY)"
		}
		l.view.font.PutString(c, header, l.X, l.Y-2*ch)
	}

	l.view.draw(c)
}
