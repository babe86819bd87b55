package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kxue43/asset-toolkit/rename"
)

type (
	entryItem struct {
		entry   rename.Entry
		present bool
		drop    bool
	}

	// Model lets the user review the pending renames and untick entries
	// before anything touches the filesystem. The caller applies the
	// selection after the program exits.
	Model struct {
		help      help.Model
		items     []entryItem
		index     int
		confirmed bool
	}

	reviewKeyMap struct{}
)

var (
	keys = struct {
		up    key.Binding
		down  key.Binding
		tick  key.Binding
		apply key.Binding
		help  key.Binding
		quit  key.Binding
	}{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		tick: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "tick/untick"),
		),
		apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "apply"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit without renaming"),
		),
	}

	palette = struct {
		magenta lipgloss.Color
		grey    lipgloss.Color
	}{
		magenta: lipgloss.Color("212"),
		grey:    lipgloss.Color("243"),
	}

	cursorStyle  = lipgloss.NewStyle().Foreground(palette.magenta)
	missingStyle = lipgloss.NewStyle().Foreground(palette.grey)
)

func (reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.help, keys.quit}
}

func (reviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.up, keys.down, keys.tick},
		{keys.apply, keys.help, keys.quit},
	}
}

// InitialModel stats every source file under baseDir once, up front.
func InitialModel(baseDir string, m rename.Mapping) Model {
	items := make([]entryItem, len(m))

	for i, e := range m {
		_, err := os.Stat(filepath.Clean(filepath.Join(baseDir, e.Old)))

		items[i] = entryItem{entry: e, present: err == nil}
	}

	return Model{items: items, help: help.New()}
}

// Confirmed reports whether the user chose to apply the selection.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Selected returns the entries left ticked, in their original order.
func (m Model) Selected() rename.Mapping {
	selected := make(rename.Mapping, 0, len(m.items))

	for i := range m.items {
		if !m.items[i].drop {
			selected = append(selected, m.items[i].entry)
		}
	}

	return selected
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.index > 0 {
			m.index--
		}
	case key.Matches(keyMsg, keys.down):
		if m.index < len(m.items)-1 {
			m.index++
		}
	case key.Matches(keyMsg, keys.tick):
		if len(m.items) > 0 {
			m.items[m.index].drop = !m.items[m.index].drop
		}
	case key.Matches(keyMsg, keys.apply):
		m.confirmed = true

		return m, tea.Quit
	case key.Matches(keyMsg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("Pending renames:\n\n")

	for i := range m.items {
		if i == m.index {
			b.WriteString(cursorStyle.Render("> "))
		} else {
			b.WriteString("  ")
		}

		item := &m.items[i]

		style := lipgloss.NewStyle().Strikethrough(item.drop)
		line := item.entry.Old + " -> " + item.entry.New

		if item.present {
			b.WriteString(style.Render(line))
		} else {
			b.WriteString(missingStyle.Render(line + "  (missing)"))
		}

		b.WriteRune('\n')
	}

	b.WriteRune('\n')
	b.WriteString(m.help.View(reviewKeyMap{}))
	b.WriteRune('\n')

	return b.String()
}
