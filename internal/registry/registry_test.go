package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-merge/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return &stubGame{id: "test_b"} })
	Register("test_a", func() Game { return &stubGame{id: "test_a"} })

	if !Exists("test_a") {
		t.Fatal("test_a not registered")
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("ID = %q, want test_a", g.ID())
	}

	// Each call returns a fresh instance
	g2, _ := Create("test_a")
	if g == g2 {
		t.Error("Create returned the same instance twice")
	}

	var a, b int = -1, -1
	for i, info := range List() {
		switch info.ID {
		case "test_a":
			a = i
			if info.Title != "Stub test_a" {
				t.Errorf("title = %q", info.Title)
			}
		case "test_b":
			b = i
		}
	}
	if a < 0 || b < 0 || a > b {
		t.Errorf("List order: test_a at %d, test_b at %d", a, b)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create error = %v, want ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate id")
		}
	}()
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })
}
