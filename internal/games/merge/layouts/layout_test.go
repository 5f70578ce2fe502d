package layouts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-merge/internal/games/merge/model"
)

const twoByThree = `
id: push
name: Push Test
size: {w: 2, h: 3}
pieces:
  - {x: 0, y: 0, kind: flower}
  - {x: 0, y: 1, kind: box}
  - {x: 1, y: 1, kind: flower, level: 1}
`

func TestParseYAML(t *testing.T) {
	l, err := ParseYAML([]byte(twoByThree))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if l.ID != "push" || l.Name != "Push Test" {
		t.Errorf("id/name = %q/%q", l.ID, l.Name)
	}
	if l.Width != 2 || l.Height != 3 {
		t.Errorf("size = %dx%d, expected 2x3", l.Width, l.Height)
	}
	if len(l.Placements) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(l.Placements))
	}
	if p := l.Placements[1]; p.At != model.C(0, 1) || p.Piece != model.Box() {
		t.Errorf("placement 1 = %+v", p)
	}
}

func TestParseYAMLDefaults(t *testing.T) {
	l, err := ParseYAML([]byte("id: bare\nsize: {w: 1, h: 1}\npieces:\n  - {x: 0, y: 0, kind: Flower}\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if l.Title() != "bare" {
		t.Errorf("Title() = %q, expected id fallback", l.Title())
	}
	if l.Placements[0].Piece.Level() != 1 {
		t.Errorf("missing level should default to 1, got %d", l.Placements[0].Piece.Level())
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"missing id", "size: {w: 1, h: 1}\n", ErrInvalidLayout},
		{"zero size", "id: x\nsize: {w: 0, h: 2}\n", ErrInvalidLayout},
		{"unknown kind", "id: x\nsize: {w: 1, h: 1}\npieces:\n  - {x: 0, y: 0, kind: tree}\n", model.ErrUnknownKind},
		{"level too high", "id: x\nsize: {w: 1, h: 1}\npieces:\n  - {x: 0, y: 0, kind: box, level: 2}\n", model.ErrInvalidLevel},
		{"off board", "id: x\nsize: {w: 2, h: 2}\npieces:\n  - {x: 2, y: 0, kind: box}\n", ErrInvalidLayout},
		{"overlap", "id: x\nsize: {w: 2, h: 2}\npieces:\n  - {x: 1, y: 1, kind: box}\n  - {x: 1, y: 1, kind: flower}\n", ErrInvalidLayout},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.yaml))
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseYAML error = %v, expected %v", err, tc.err)
			}
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("error %v should wrap ErrInvalidLayout", err)
			}
		})
	}

	if _, err := ParseYAML([]byte("id: [unterminated")); err == nil {
		t.Error("expected a yaml error")
	}
}

func TestLayoutNewBoard(t *testing.T) {
	l, err := ParseYAML([]byte(twoByThree))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	b, err := l.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	if b.Width() != 2 || b.Height() != 3 || b.FilledCount() != 3 {
		t.Errorf("board = %dx%d with %d pieces", b.Width(), b.Height(), b.FilledCount())
	}

	// The board from the layout resolves the local push scenario.
	next, err := b.MoveAuto(model.NewMovement(1, 1, 0, 1, model.Flower()))
	if err != nil {
		t.Fatalf("MoveAuto failed: %v", err)
	}
	if next == nil || next.To != model.C(0, 2) || next.Piece != model.Box() {
		t.Errorf("follow-up = %v, expected box to (0,2)", next)
	}
}

func TestBuiltinLayoutsAreValid(t *testing.T) {
	all := Builtin()
	if len(all) == 0 {
		t.Fatal("expected built-in layouts")
	}

	for i, l := range all {
		if i > 0 && all[i-1].ID >= l.ID {
			t.Errorf("layouts not sorted: %q before %q", all[i-1].ID, l.ID)
		}
		if _, err := l.NewBoard(); err != nil {
			t.Errorf("%s: NewBoard failed: %v", l.ID, err)
		}
	}
}

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "more")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	writeFile(t, filepath.Join(dir, "push.yaml"), twoByThree)
	writeFile(t, filepath.Join(nested, "tiny.yml"), "id: tiny\nsize: {w: 1, h: 1}\n")
	writeFile(t, filepath.Join(dir, "broken.yaml"), "id: broken\nsize: {w: -1, h: 1}\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a layout")

	got, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "push" || got[1].ID != "tiny" {
		t.Fatalf("LoadAll = %+v, expected push and tiny", got)
	}
	if got[0].FilePath != filepath.Join(dir, "push.yaml") {
		t.Errorf("FilePath = %q", got[0].FilePath)
	}
}

func TestAllAndFind(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "swap.yaml"), "id: swap\nname: My Swap\nsize: {w: 3, h: 1}\n")
	writeFile(t, filepath.Join(dir, "push.yaml"), twoByThree)

	all, err := All(dir)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != len(Builtin())+1 {
		t.Errorf("expected user swap to replace built-in, got %d layouts", len(all))
	}

	swap, err := Find(dir, "swap")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if swap.Name != "My Swap" || swap.Width != 3 {
		t.Errorf("Find(swap) = %+v, expected user layout", swap)
	}

	if _, err := Find("", "meadow"); err != nil {
		t.Errorf("Find(meadow) without dir failed: %v", err)
	}
	if _, err := Find(filepath.Join(dir, "missing"), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find(nope) error = %v, expected ErrNotFound", err)
	}
}

func writeFile(t *testing.T, p, content string) {
	t.Helper()
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", p, err)
	}
}
