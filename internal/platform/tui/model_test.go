package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-merge/internal/config"
	"github.com/vovakirdan/tui-merge/internal/core"
	"github.com/vovakirdan/tui-merge/internal/games/merge/layouts"
)

// recordingGame counts calls and remembers the frames it was stepped with.
type recordingGame struct {
	resets  int
	resizes int
	frames  []core.InputFrame
}

func (g *recordingGame) ID() string { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) State() core.GameState { return core.GameState{} }
func (g *recordingGame) Resize(w, h int) { g.resizes++ }
func (g *recordingGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "rec") }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	frame.Pointer = append(frame.Pointer, in.Pointer...)
	g.frames = append(g.frames, frame)
	return core.StepResult{Events: []string{"stepped"}}
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelBatchesInputPerTick(t *testing.T) {
	g := &recordingGame{}
	m := NewGameModel(g, core.DefaultConfig(), nil)
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})

	if len(g.frames) != 1 {
		t.Fatalf("steps = %d, want 1", len(g.frames))
	}
	f := g.frames[0]
	if !f.Has(core.ActionRight) || !f.Has(core.ActionConfirm) || len(f.Pointer) != 1 {
		t.Errorf("frame = %+v", f)
	}

	// Idle ticks do not step the game
	m = update(t, m, TickMsg{})
	if len(g.frames) != 1 {
		t.Errorf("idle tick stepped the game")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}

func TestGameModelResizeKeepsState(t *testing.T) {
	g := &recordingGame{}
	m := NewGameModel(g, core.DefaultConfig(), nil)
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resizes != 1 || g.resets != 1 {
		t.Errorf("resizes=%d resets=%d, want 1 1", g.resizes, g.resets)
	}
	if c := m.Config(); c.ScreenW != 100 || c.ScreenH != 40 {
		t.Errorf("config = %+v", c)
	}
}

func TestGameModelQuitAndMenu(t *testing.T) {
	g := &recordingGame{}

	m := NewGameModel(g, core.DefaultConfig(), nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if m.BackToMenu() {
		t.Error("menu key honoured without a menu")
	}

	m = m.WithMenu()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if !m.BackToMenu() {
		t.Error("menu key ignored")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q did not quit")
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(&recordingGame{}, core.RuntimeConfig{ScreenW: 10, ScreenH: 2, TickRate: 30}, nil)
	if !strings.HasPrefix(m.View(), "rec") {
		t.Errorf("View = %q", m.View())
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	ls := layouts.Builtin()
	gameCfg := config.DefaultMergeConfig()
	gameCfg.Layout = "swap"
	s := NewSessionModel(ls, gameCfg, core.DefaultConfig(), nil)

	// The configured layout is highlighted, so enter opens it
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if !s.InGame() {
		t.Fatal("enter did not open a board")
	}
	if !strings.Contains(s.View(), "Minimum Swap") {
		t.Errorf("board view missing configured layout:\n%s", s.View())
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	s = next.(SessionModel)
	if s.InGame() {
		t.Fatal("menu key did not close the board")
	}
	if sel := s.menu.layouts[s.menu.table.Cursor()].ID; sel != "swap" {
		t.Errorf("menu cursor on %q after returning, want swap", sel)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	s = next.(SessionModel)
	if s.View() != "" {
		t.Error("session did not quit")
	}
}

func TestSessionStartsWithGame(t *testing.T) {
	game := &recordingGame{}
	s := NewSessionModel(layouts.Builtin(), config.DefaultMergeConfig(), core.DefaultConfig(), nil).WithGame(game)
	if !s.InGame() {
		t.Fatal("session with a start game opened in the menu")
	}
	s.Init()
	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	s = next.(SessionModel)
	if s.InGame() {
		t.Fatal("menu key did not reach the menu")
	}
	if !strings.Contains(s.View(), "Meadow") {
		t.Errorf("menu view missing layouts:\n%s", s.View())
	}
}
