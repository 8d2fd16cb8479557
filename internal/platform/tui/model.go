// Package tui runs scenes in a terminal, locally or over SSH, through Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/platform"
	"github.com/vovakirdan/tui-scene/internal/scene"
)

// frameMsg signals that the loop presented a new frame.
type frameMsg struct{}

// closedMsg signals that the loop has stopped.
type closedMsg struct{}

// Bridge is the Bubble Tea model that connects a terminal to a scene loop.
// Input is forwarded to the queue; View shows the latest presented frame.
// The loop runs on its own goroutine and never touches the model.
type Bridge struct {
	queue *platform.Queue
	keys  KeyMap

	// ScreenshotDir receives text dumps of the current frame. Empty disables them.
	ScreenshotDir string

	view     string
	mouse    core.Button // Button of the last mouse press, for releases
	quitting bool
}

// NewBridge creates a bridge model reading frames from q.
func NewBridge(q *platform.Queue, keys KeyMap) Bridge {
	return Bridge{
		queue: q,
		keys:  keys,
		mouse: core.ButtonNone,
	}
}

// Init starts waiting for frames.
func (m Bridge) Init() tea.Cmd {
	return waitFrame(m.queue)
}

// Update handles messages and updates the model state.
func (m Bridge) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.queue.Resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		if frame := m.queue.Frame(); frame != nil {
			m.view = RenderScreen(frame)
		}
		return m, waitFrame(m.queue)

	case closedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Bridge) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		// The loop stops on its next tick and closes the queue.
		m.queue.Quit()
		return m, nil
	}
	if key.Matches(msg, m.keys.Screenshot) && m.ScreenshotDir != "" {
		m.saveScreenshot()
		return m, nil
	}
	for _, ks := range m.keys.Translate(msg) {
		m.queue.Press(ks.Button, ks.Char)
	}
	return m, nil
}

// handleMouse processes pointer input.
func (m Bridge) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.queue.MoveMouse(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		b := mouseButton(msg.Button)
		if b == core.ButtonNone {
			return m, nil
		}
		m.mouse = b
		m.queue.MouseButton(b, true)
	case tea.MouseActionRelease:
		// Most terminals do not say which button was released.
		if m.mouse != core.ButtonNone {
			m.queue.MouseButton(m.mouse, false)
			m.mouse = core.ButtonNone
		}
	}
	return m, nil
}

func mouseButton(b tea.MouseButton) core.Button {
	switch b {
	case tea.MouseButtonLeft:
		return core.ButtonMouse1
	case tea.MouseButtonRight:
		return core.ButtonMouse2
	default:
		return core.ButtonNone
	}
}

// saveScreenshot writes the latest frame to a timestamped text file.
func (m Bridge) saveScreenshot() {
	frame := m.queue.Frame()
	if frame == nil {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.ScreenshotDir, 0o755)

	name := fmt.Sprintf("scene_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, the scene continues regardless
	os.WriteFile(filepath.Join(m.ScreenshotDir, name), []byte(frame.String()), 0o600)
}

// View renders the latest frame.
func (m Bridge) View() string {
	if m.quitting {
		return ""
	}
	return m.view
}

// waitFrame blocks until the loop presents a frame or stops.
func waitFrame(q *platform.Queue) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-q.Updates(); !ok {
			return closedMsg{}
		}
		return frameMsg{}
	}
}

// Run drives loop in the current terminal until the loop stops or ctx ends.
// The loop runs on its own goroutine; the terminal program owns this one.
func Run(parent context.Context, loop *scene.Loop, q *platform.Queue, model Bridge, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer q.Close()
		loop.Run(ctx)
	}()

	_, err := p.Run()
	cancel()
	<-done

	if errors.Is(err, tea.ErrProgramKilled) && parent.Err() != nil {
		err = nil
	}
	if err != nil {
		logger.Error("terminal program failed", "error", err)
		return fmt.Errorf("run terminal: %w", err)
	}
	return nil
}
