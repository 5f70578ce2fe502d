package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-merge/internal/config"
	"github.com/vovakirdan/tui-merge/internal/core"
	"github.com/vovakirdan/tui-merge/internal/games/merge"
	"github.com/vovakirdan/tui-merge/internal/games/merge/layouts"
	"github.com/vovakirdan/tui-merge/internal/games/merge/model"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuSelect(t *testing.T) {
	ls := layouts.Builtin()
	if len(ls) < 2 {
		t.Skip("need two layouts")
	}
	m := NewMenuModel(ls, core.DefaultConfig(), "")

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil || sel.ID != ls[1].ID {
		t.Fatalf("Selected = %v, want %s", sel, ls[1].ID)
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	ls := layouts.Builtin()
	m := NewMenuModel(ls, core.DefaultConfig(), "")

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	for i := 0; i < len(ls)+3; i++ {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if sel := m.Selected(); sel == nil || sel.ID != ls[len(ls)-1].ID {
		t.Errorf("Selected = %v, want last layout", sel)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(layouts.Builtin(), core.DefaultConfig(), "")
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q did not quit the menu")
	}
}

func TestMenuViewShowsLayouts(t *testing.T) {
	ls := layouts.Builtin()
	m := NewMenuModel(ls, core.DefaultConfig(), "")

	view := m.View()
	for _, l := range ls {
		if !strings.Contains(view, l.Title()) {
			t.Errorf("menu missing %q", l.Title())
		}
	}

	empty := NewMenuModel(nil, core.DefaultConfig(), "")
	if !strings.Contains(empty.View(), "No layouts found") {
		t.Error("empty menu has no placeholder")
	}
}

func TestMenuStartsOnCurrentLayout(t *testing.T) {
	ls := layouts.Builtin()
	tests := []struct {
		current string
		want    string
	}{
		{"swap", "swap"},
		{"nursery", "nursery"},
		{"", ls[0].ID},
		{"missing", ls[0].ID},
	}

	for _, tt := range tests {
		m := NewMenuModel(ls, core.DefaultConfig(), tt.current)
		if got := ls[m.table.Cursor()].ID; got != tt.want {
			t.Errorf("current %q: cursor on %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestGameFor(t *testing.T) {
	cfg := config.DefaultMergeConfig()
	cfg.Cell.Width = 7

	user := layouts.Layout{
		ID: "mine", Width: 2, Height: 2, FilePath: "/tmp/mine.yaml",
		Placements: []layouts.Placement{{At: model.C(1, 1), Piece: model.Box()}},
	}
	g := GameFor(user, cfg)
	if g.ID() != "merge_mine" {
		t.Errorf("ID = %q", g.ID())
	}

	// The layout is used as given, even though no file exists at FilePath
	g.Reset(core.DefaultConfig())
	mg, ok := g.(*merge.Game)
	if !ok {
		t.Fatalf("GameFor returned %T", g)
	}
	snap := mg.Snapshot()
	if snap.Layout != "mine" || snap.Board.FilledCount() != 1 {
		t.Errorf("layout = %q filled = %d", snap.Layout, snap.Board.FilledCount())
	}

	// Cell width comes from the passed config
	x0, _ := mg.CellOrigin(model.C(0, 0))
	x1, _ := mg.CellOrigin(model.C(1, 0))
	if x1-x0 != cfg.Cell.Width {
		t.Errorf("cell pitch = %d, want %d", x1-x0, cfg.Cell.Width)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, 'c', core.ColorRed)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") || !strings.Contains(lines[0], "c") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "xyz " {
		t.Errorf("line 1 = %q, want plain text", lines[1])
	}
}
