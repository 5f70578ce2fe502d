package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-merge/internal/config"
	"github.com/vovakirdan/tui-merge/internal/core"
	"github.com/vovakirdan/tui-merge/internal/games/merge/layouts"
	"github.com/vovakirdan/tui-merge/internal/registry"
)

// SessionModel manages the full flow: menu -> board -> menu.
// It is the top-level model for SSH sessions and for local play.
type SessionModel struct {
	layouts   []layouts.Layout
	gameCfg   config.MergeConfig
	config    core.RuntimeConfig
	logger    *log.Logger
	current   string
	menu      MenuModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a session that starts in the menu with the
// configured layout highlighted. A nil logger discards output.
func NewSessionModel(ls []layouts.Layout, gameCfg config.MergeConfig, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		layouts: ls,
		gameCfg: gameCfg,
		config:  cfg,
		logger:  logger,
		current: gameCfg.Layout,
		menu:    NewMenuModel(ls, cfg, gameCfg.Layout),
	}
}

// WithGame returns a session that opens g first. The menu stays
// reachable from the board.
func (m SessionModel) WithGame(g registry.Game) SessionModel {
	gameModel := NewGameModel(g, m.config, m.logger).WithMenu()
	m.gameModel = &gameModel
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.gameModel != nil {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	m.logger.Info("layout opened", "layout", selected.ID)
	m.current = selected.ID
	gameModel := NewGameModel(GameFor(*selected, m.gameCfg), m.config, m.logger).WithMenu()
	m.gameModel = &gameModel
	return m, m.gameModel.Init()
}

// updateGame handles updates when a board is open.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.layouts, m.config, m.current)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// InGame reports whether a board is open.
func (m SessionModel) InGame() bool {
	return m.gameModel != nil
}

// RunSession runs the menu and boards in the local terminal. A non-nil
// start game is opened before the menu.
func RunSession(ls []layouts.Layout, gameCfg config.MergeConfig, start registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	session := NewSessionModel(ls, gameCfg, cfg, logger)
	if start != nil {
		session = session.WithGame(start)
	}
	p := tea.NewProgram(
		session,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
