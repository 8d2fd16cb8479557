package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-scene/internal/storage"
)

const maxHistoryRows = 100

// HistorySource is the part of the store the history screen reads.
type HistorySource interface {
	RecentRuns(demoID string, limit int) ([]storage.RunEntry, error)
	RecentPicks(demoID string, limit int) ([]storage.PickEntry, error)
}

// HistoryTab is one demo shown on the history screen.
type HistoryTab struct {
	ID    string
	Title string
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Toggle, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next demo")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev demo")),
		Toggle: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "runs/picks")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// HistoryModel is the Bubble Tea model for browsing stored runs and picks.
type HistoryModel struct {
	source    HistorySource
	tabs      []HistoryTab
	cursor    int
	showPicks bool
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	err       error
	width     int
	height    int
	quitting  bool
}

// NewHistoryModel creates a history screen over the given demos.
func NewHistoryModel(source HistorySource, tabs []HistoryTab, width, height int) HistoryModel {
	m := HistoryModel{
		source: source,
		tabs:   tabs,
		help:   help.New(),
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable builds the table for the current mode.
func (m HistoryModel) createTable() table.Model {
	var columns []table.Column
	if m.showPicks {
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Path", Width: max(m.width-30, 20)},
			{Title: "Date", Width: 14},
		}
	} else {
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "User", Width: 12},
			{Title: "Ticks", Width: 8},
			{Title: "Time", Width: 10},
			{Title: "Date", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load fills the table for the selected demo.
func (m *HistoryModel) load() {
	m.err = nil
	if m.source == nil || len(m.tabs) == 0 {
		m.table.SetRows(nil)
		return
	}
	id := m.tabs[m.cursor].ID

	var rows []table.Row
	if m.showPicks {
		picks, err := m.source.RecentPicks(id, maxHistoryRows)
		m.err = err
		for i, p := range picks {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				p.Path,
				p.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	} else {
		runs, err := m.source.RecentRuns(id, maxHistoryRows)
		m.err = err
		for i, r := range runs {
			user := r.User
			if user == "" {
				user = "local"
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				user,
				fmt.Sprintf("%d", r.Ticks),
				r.Duration.Round(100 * time.Millisecond).String(),
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			if len(m.tabs) > 0 {
				m.cursor = (m.cursor + 1) % len(m.tabs)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			if len(m.tabs) > 0 {
				m.cursor = (m.cursor - 1 + len(m.tabs)) % len(m.tabs)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.showPicks = !m.showPicks
			m.table = m.createTable()
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mode := "RUNS"
	if m.showPicks {
		mode = "PICKS"
	}
	title := mode
	if len(m.tabs) > 0 {
		title = fmt.Sprintf("%s - %s", mode, m.tabs[m.cursor].Title)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(t.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + t.Title + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.content()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// content renders the table or a status message.
func (m HistoryModel) content() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 2)
	switch {
	case m.err != nil:
		return emptyStyle.Render("Cannot read history: " + m.err.Error())
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("Nothing recorded yet.")
	}
	return m.table.View()
}

// RunHistory runs the history screen in the current terminal.
func RunHistory(source HistorySource, tabs []HistoryTab, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(source, tabs, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
