package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-merge/internal/config"
	"github.com/vovakirdan/tui-merge/internal/core"
	"github.com/vovakirdan/tui-merge/internal/games/merge"
	"github.com/vovakirdan/tui-merge/internal/games/merge/layouts"
	"github.com/vovakirdan/tui-merge/internal/registry"
)

// Menu layout constants
const (
	minWidthForPreview = 70 // Minimum width to show the board preview
	menuChromeHeight   = 8  // Title, help and margins around the table
)

// MenuKeyMap defines the key bindings for the layout menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the layout picker.
type MenuModel struct {
	layouts  []layouts.Layout
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	config   core.RuntimeConfig
	quitting bool
	selected *layouts.Layout
}

// NewMenuModel creates a menu listing the given layouts with the cursor
// on the layout whose id is current, if any.
func NewMenuModel(ls []layouts.Layout, cfg core.RuntimeConfig, current string) MenuModel {
	m := MenuModel{
		layouts: ls,
		help:    help.New(),
		keys:    DefaultMenuKeyMap(),
		config:  cfg,
	}
	m.help.Width = cfg.ScreenW
	m.table = m.createTable()
	for i, l := range ls {
		if l.ID == current {
			m.table.SetCursor(i)
			break
		}
	}
	return m
}

// createTable builds the layout table sized to the window.
func (m MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Layout", Width: 18},
		{Title: "Size", Width: 6},
		{Title: "Pieces", Width: 6},
		{Title: "Source", Width: 10},
	}

	rows := make([]table.Row, len(m.layouts))
	for i, l := range m.layouts {
		source := "built-in"
		if l.FilePath != "" {
			source = "file"
		}
		rows[i] = table.Row{
			l.Title(),
			fmt.Sprintf("%dx%d", l.Width, l.Height),
			strconv.Itoa(len(l.Placements)),
			source,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.config.ScreenH-menuChromeHeight, 3)),
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

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.layouts) {
				selected := m.layouts[i]
				m.selected = &selected
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("M E R G E"), m.config.ScreenW))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var body string
	if len(m.layouts) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		body = boxStyle.Render(emptyStyle.Render("No layouts found."))
	} else {
		body = boxStyle.Render(m.table.View())
		if m.config.ScreenW >= minWidthForPreview {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", boxStyle.Render(m.preview()))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, body))
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.config.ScreenW))

	return b.String()
}

// preview renders the highlighted layout as text.
func (m MenuModel) preview() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.layouts) {
		return ""
	}
	board, err := m.layouts[i].NewBoard()
	if err != nil {
		return err.Error()
	}
	return board.String()
}

// Selected returns the chosen layout, or nil if none was chosen yet.
func (m MenuModel) Selected() *layouts.Layout {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// GameFor returns a game playing l with an already loaded config.
func GameFor(l layouts.Layout, cfg config.MergeConfig) registry.Game {
	return merge.NewWithLayout(l, cfg)
}
