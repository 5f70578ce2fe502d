// Package merge drives a merge board from platform input.
// It owns the board, a cursor and the grabbed cell, and turns each drop
// into exactly one MoveAuto call on the model.
package merge

import (
	"fmt"

	"github.com/vovakirdan/tui-merge/internal/config"
	"github.com/vovakirdan/tui-merge/internal/core"
	"github.com/vovakirdan/tui-merge/internal/games/merge/layouts"
	"github.com/vovakirdan/tui-merge/internal/games/merge/model"
	"github.com/vovakirdan/tui-merge/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// layoutsDir overrides the configured layouts directory when set
var layoutsDir string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLayoutsDir sets the directory scanned for user layouts.
func SetLayoutsDir(dir string) {
	layoutsDir = dir
}

// LayoutsDir returns the effective layouts directory for cfg.
func LayoutsDir(cfg config.MergeConfig) string {
	if layoutsDir != "" {
		return layoutsDir
	}
	return config.ExpandHome(cfg.LayoutsDir)
}

func init() {
	registry.Register("merge", func() registry.Game {
		return New()
	})
	for _, l := range layouts.Builtin() {
		l := l
		registry.Register("merge_"+l.ID, func() registry.Game {
			return NewLayout(l)
		})
	}
}

// Game implements registry.Game for a single merge board.
type Game struct {
	id       string
	layoutID string // Empty: use the configured layout
	fixed    bool   // Config and layout were supplied, skip loading

	cfg    config.MergeConfig
	layout layouts.Layout
	board  *model.Board

	cursor  model.Coord
	grabbed model.Coord
	holding bool

	moves    int
	status   string
	lastMove *model.Movement
	lastPush *model.Movement

	tick     uint64
	screenW  int
	screenH  int
	boardX   int
	boardY   int
	tooSmall bool
}

// New creates a game playing the layout named in the config.
func New() *Game {
	return &Game{id: "merge"}
}

// NewLayout creates a game bound to one layout id.
// Reset looks the id up again, so a user file can replace a built-in.
func NewLayout(l layouts.Layout) *Game {
	return &Game{
		id:       "merge_" + l.ID,
		layoutID: l.ID,
		layout:   l,
	}
}

// NewWithLayout creates a game with a fixed config and layout.
// Nothing is read from disk on Reset.
func NewWithLayout(l layouts.Layout, cfg config.MergeConfig) *Game {
	return &Game{
		id:       "merge_" + l.ID,
		layoutID: l.ID,
		fixed:    true,
		cfg:      cfg,
		layout:   l,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.layoutID == "" {
		return "Merge"
	}
	return "Merge: " + g.layout.Title()
}

// Reset loads config and layout and starts from the layout's position.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixed {
		cfg, err := config.LoadMerge(configPath)
		if err != nil {
			cfg = config.DefaultMergeConfig()
		}
		g.cfg = cfg
		g.layout = g.resolveLayout()
	}

	g.tick = 0
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.restart()
	g.computeLayout()
}

// resolveLayout finds the layout to play, falling back to an empty
// board of the configured size.
func (g *Game) resolveLayout() layouts.Layout {
	id := g.layoutID
	if id == "" {
		id = g.cfg.Layout
	}
	if id != "" {
		if l, err := layouts.Find(LayoutsDir(g.cfg), id); err == nil {
			return l
		}
	}
	if g.layout.ID != "" {
		return g.layout
	}
	return layouts.Layout{
		ID:     "empty",
		Name:   "Empty",
		Width:  g.cfg.Board.Width,
		Height: g.cfg.Board.Height,
	}
}

// restart rebuilds the board from the layout and clears session state.
func (g *Game) restart() {
	board, err := g.layout.NewBoard()
	if err != nil {
		// Validated layouts never fail here; keep the game usable anyway.
		board, _ = model.NewBoard(1, 1)
		g.status = err.Error()
	} else {
		g.status = fmt.Sprintf("%s: %d pieces", g.layout.Title(), board.FilledCount())
	}
	g.board = board
	g.cursor = model.C(0, 0)
	g.holding = false
	g.moves = 0
	g.lastMove = nil
	g.lastPush = nil
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	var events []string

	if in.Has(core.ActionRestart) {
		g.restart()
		events = append(events, "restart "+g.layout.ID)
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionBack) && g.holding {
		g.holding = false
		g.status = "Grab cancelled"
		events = append(events, "cancel "+g.grabbed.String())
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, 1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, -1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	if in.Has(core.ActionConfirm) {
		if g.holding {
			events = append(events, g.drop(g.cursor)...)
		} else {
			events = append(events, g.grab(g.cursor)...)
		}
	}

	for _, p := range in.Pointer {
		events = append(events, g.pointer(p)...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor shifts the cursor, clamped to the board. Up grows Y.
func (g *Game) moveCursor(dx, dy int) {
	g.cursor.X = core.Clamp(g.cursor.X+dx, 0, g.board.Width()-1)
	g.cursor.Y = core.Clamp(g.cursor.Y+dy, 0, g.board.Height()-1)
}

// pointer handles one mouse event. A press grabs, a release drops.
func (g *Game) pointer(p core.PointerEvent) []string {
	c, ok := g.CellAt(p.X, p.Y)

	switch p.Kind {
	case core.PointerPress:
		if !ok || g.holding {
			return nil
		}
		g.cursor = c
		return g.grab(c)
	case core.PointerRelease:
		if !g.holding {
			return nil
		}
		if !ok {
			g.holding = false
			g.status = "Dropped outside the board"
			return []string{"cancel " + g.grabbed.String()}
		}
		g.cursor = c
		return g.drop(c)
	}
	return nil
}

// grab picks up the piece at c, if any.
func (g *Game) grab(c model.Coord) []string {
	cell, err := g.board.Cell(c.X, c.Y)
	if err != nil {
		g.status = err.Error()
		return nil
	}
	if cell.Empty() {
		g.status = fmt.Sprintf("Nothing to pick up at %s", c)
		return nil
	}

	g.grabbed = c
	g.holding = true
	g.status = fmt.Sprintf("Holding %s from %s", cell.Piece, c)
	return []string{"grab " + c.String()}
}

// drop releases the held piece onto to. Dropping on the grabbed cell
// only releases it; any other cell resolves one MoveAuto.
func (g *Game) drop(to model.Coord) []string {
	from := g.grabbed
	g.holding = false

	if to == from {
		g.status = "Released"
		return []string{"release " + from.String()}
	}

	src, err := g.board.Cell(from.X, from.Y)
	if err != nil {
		g.status = err.Error()
		return nil
	}
	dst, err := g.board.Cell(to.X, to.Y)
	if err != nil {
		g.status = err.Error()
		return nil
	}

	m := model.Movement{From: from, To: to, Piece: src.Piece}
	next, err := g.board.MoveAuto(m)
	if err != nil {
		g.status = err.Error()
		return []string{"error " + err.Error()}
	}

	g.moves++
	g.lastMove = &m
	g.lastPush = next

	events := []string{"move " + m.String()}
	switch {
	case next != nil:
		g.status = fmt.Sprintf("Pushed %s to %s", next.Piece, next.To)
		events = append(events, "push "+next.String())
	case dst.Filled:
		merged, _ := g.board.Cell(to.X, to.Y)
		g.status = fmt.Sprintf("Merged into %s level %d", merged.Piece.Kind(), merged.Piece.Level())
		events = append(events, "merge "+merged.Piece.String())
	default:
		g.status = fmt.Sprintf("Moved %s to %s", m.Piece, to)
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Paused: g.tooSmall,
	}
}

// Board returns the live board.
func (g *Game) Board() *model.Board {
	return g.board
}

// Status returns the status line text.
func (g *Game) Status() string {
	return g.status
}
