package merge

import "github.com/vovakirdan/tui-merge/internal/games/merge/model"

// Snapshot captures the session state for tests and debugging.
type Snapshot struct {
	Tick     uint64
	Layout   string
	Board    *model.Board // Deep copy
	Cursor   model.Coord
	Grabbed  model.Coord
	Holding  bool
	Moves    int
	Status   string
	LastMove *model.Movement
	LastPush *model.Movement // Displaced piece of the last move, if any
	TooSmall bool
}

// Snapshot returns a copy of the current session state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Layout:   g.layout.ID,
		Board:    g.board.Clone(),
		Cursor:   g.cursor,
		Grabbed:  g.grabbed,
		Holding:  g.holding,
		Moves:    g.moves,
		Status:   g.status,
		TooSmall: g.tooSmall,
	}
	if g.lastMove != nil {
		m := *g.lastMove
		s.LastMove = &m
	}
	if g.lastPush != nil {
		m := *g.lastPush
		s.LastPush = &m
	}
	return s
}
