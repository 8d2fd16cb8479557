package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-scene/internal/core"
)

// KeyMap binds terminal keys to logical buttons.
// Letters are not bound so they always reach text input.
// Terminals do not report Shift or Ctrl on their own, so those buttons are
// only reachable from the window backend.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Space    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Escape   key.Binding
	Return   key.Binding
	Quit     key.Binding

	Screenshot key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Space:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "space")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "escape")),
		Return:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Return, k.Escape, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Space},
		{k.Return, k.Escape, k.Screenshot, k.Quit},
	}
}

// Keystroke is one translated key press.
type Keystroke struct {
	Button core.Button
	Char   rune
}

// Translate converts a key message to keystrokes.
// Pasted text yields one keystroke per rune.
func (k KeyMap) Translate(msg tea.KeyMsg) []Keystroke {
	switch {
	case key.Matches(msg, k.Up):
		return one(core.ButtonUp, 0)
	case key.Matches(msg, k.Down):
		return one(core.ButtonDown, 0)
	case key.Matches(msg, k.Left):
		return one(core.ButtonLeft, 0)
	case key.Matches(msg, k.Right):
		return one(core.ButtonRight, 0)
	case key.Matches(msg, k.Space):
		return one(core.ButtonSpace, ' ')
	case key.Matches(msg, k.PageUp):
		return one(core.ButtonPageUp, 0)
	case key.Matches(msg, k.PageDown):
		return one(core.ButtonPageDown, 0)
	case key.Matches(msg, k.Escape):
		return one(core.ButtonEscape, 0)
	case key.Matches(msg, k.Return):
		return one(core.ButtonReturn, '\n')
	}

	switch msg.Type {
	case tea.KeyBackspace:
		return one(core.ButtonNone, '\b')
	case tea.KeyRunes:
		out := make([]Keystroke, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, Keystroke{Button: core.ButtonNone, Char: r})
		}
		return out
	}
	return nil
}

func one(b core.Button, ch rune) []Keystroke {
	return []Keystroke{{Button: b, Char: ch}}
}
