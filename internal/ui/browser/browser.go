// Package browser is a full-screen help browser: a sidebar of pages and a
// scrollable viewport showing the selected one.
package browser

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/footprint-tools/argtree/internal/ui/style"
)

// ErrNotTerminal is returned by Run when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("help browser requires an interactive terminal")

// Entry is one browsable page. Render is called with the content width
// whenever the window size changes.
type Entry struct {
	Title  string
	Render func(width int) string
}

// KeyMap holds the browser key bindings. Scrolling keys belong to the
// viewport.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
	Top  key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(key.WithKeys("tab", "n", "right"), key.WithHelp("tab/n", "next")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "p", "left"), key.WithHelp("S-tab/p", "prev")),
		Top:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

const (
	sidebarMin    = 16
	sidebarMax    = 32
	footerHeight  = 1
	defaultWidth  = 100
	defaultHeight = 30
)

// Model is the bubbletea model of the browser.
type Model struct {
	entries  []Entry
	cursor   int
	keys     KeyMap
	viewport viewport.Model
	help     help.Model
	colors   style.ColorConfig
	width    int
	height   int
}

// New creates a browser over entries, sized for a default terminal until
// the first window size message arrives.
func New(entries []Entry) Model {
	m := Model{
		entries:  entries,
		keys:     DefaultKeyMap(),
		viewport: viewport.New(0, 0),
		help:     help.New(),
		colors:   style.GetColors(),
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Run starts the browser in the alternate screen on entries[start] and
// blocks until it quits.
func Run(entries []Entry, start int) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	if len(entries) == 0 {
		return nil
	}

	m := New(entries)
	m.move(start)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// Cursor returns the index of the selected entry.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.move(m.cursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.move(m.cursor - 1)
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// move moves the cursor with wrap-around and shows the new entry from the top.
func (m *Model) move(i int) {
	if len(m.entries) == 0 {
		return
	}
	m.cursor = (i%len(m.entries) + len(m.entries)) % len(m.entries)
	m.refresh()
	m.viewport.GotoTop()
}

func (m *Model) sidebarWidth() int {
	return min(max(m.width/4, sidebarMin), sidebarMax)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.viewport.Width = max(width-m.sidebarWidth()-1, 1)
	m.viewport.Height = max(height-footerHeight, 1)
	m.help.Width = width
	m.refresh()
}

func (m *Model) refresh() {
	if len(m.entries) == 0 {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.entries[m.cursor].Render(m.viewport.Width))
}

func (m Model) View() string {
	main := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), " ", m.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderFooter())
}

func (m Model) renderSidebar() string {
	width := m.sidebarWidth()
	selected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.Info))
	plain := lipgloss.NewStyle()

	var lines []string
	for i, e := range m.entries {
		prefix, st := "  ", plain
		if i == m.cursor {
			prefix, st = "▸ ", selected
		}
		lines = append(lines, prefix+st.Render(e.Title))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(m.viewport.Height).
		MaxHeight(m.viewport.Height).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	bindings := []key.Binding{
		m.keys.Next,
		m.keys.Prev,
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		m.keys.Top,
		m.keys.Quit,
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted)).
		Render(m.help.ShortHelpView(bindings))
}
