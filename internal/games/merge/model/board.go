package model

import (
	"fmt"
	"strings"
)

// Board is a fixed-size grid of cells.
// Cells are stored in row-major order: index = y*width + x.
// A Board is not safe for concurrent use.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("model: %dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds returns true if (x, y) is on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) check(x, y int) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("model: (%d,%d) on %dx%d board: %w", x, y, b.width, b.height, ErrOutOfBounds)
	}
	return nil
}

// Cell returns a copy of the cell at (x, y).
func (b *Board) Cell(x, y int) (Cell, error) {
	if err := b.check(x, y); err != nil {
		return Cell{}, err
	}
	return b.cells[b.index(x, y)], nil
}

// SetCell places p at (x, y), overwriting whatever was there.
// No merge check is performed.
func (b *Board) SetCell(x, y int, p Piece) error {
	if err := b.check(x, y); err != nil {
		return err
	}
	b.cells[b.index(x, y)] = FilledCell(p)
	return nil
}

// ClearCell empties the cell at (x, y).
func (b *Board) ClearCell(x, y int) error {
	if err := b.check(x, y); err != nil {
		return err
	}
	b.cells[b.index(x, y)] = EmptyCell()
	return nil
}

// IsCellEmpty reports whether the cell at (x, y) holds no piece.
func (b *Board) IsCellEmpty(x, y int) (bool, error) {
	c, err := b.Cell(x, y)
	if err != nil {
		return false, err
	}
	return c.Empty(), nil
}

// SetCells bulk-loads cells in row-major order. Only the first
// min(width*height, len(cells)) cells are written; the rest of the
// board is left untouched.
func (b *Board) SetCells(cells []Cell) {
	n := min(len(b.cells), len(cells))
	copy(b.cells[:n], cells[:n])
}

// Move resolves m against the board.
//
// The source cell is always cleared. If the destination is empty the
// piece is placed there; if it holds a piece that m.Piece merges with,
// the merged piece is placed there. In both cases Move returns nil.
//
// Otherwise m.Piece takes the destination and the previous occupant is
// displaced: Move returns the Movement that relocates it to the nearest
// empty cell, but does not place it. Use MoveAuto to also commit it.
func (b *Board) Move(m Movement) (*Movement, error) {
	if err := b.check(m.From.X, m.From.Y); err != nil {
		return nil, err
	}
	if err := b.check(m.To.X, m.To.Y); err != nil {
		return nil, err
	}

	b.cells[b.index(m.From.X, m.From.Y)] = EmptyCell()

	toIdx := b.index(m.To.X, m.To.Y)
	target := b.cells[toIdx]

	if target.Empty() {
		b.cells[toIdx] = FilledCell(m.Piece)
		return nil, nil
	}

	if m.Piece.MergesWith(target.Piece) {
		merged, err := m.Piece.Merge(target.Piece)
		if err != nil {
			return nil, err
		}
		b.cells[toIdx] = FilledCell(merged)
		return nil, nil
	}

	b.cells[toIdx] = FilledCell(m.Piece)

	dest, err := b.nearestEmpty(m.To)
	if err != nil {
		return nil, err
	}
	return &Movement{From: m.To, To: dest, Piece: target.Piece}, nil
}

// MoveAuto is Move followed by placing the displaced piece, if any, at
// its new cell. The follow-up Movement is returned for the caller to
// mirror in its own view.
func (b *Board) MoveAuto(m Movement) (*Movement, error) {
	next, err := b.Move(m)
	if err != nil || next == nil {
		return next, err
	}
	if err := b.SetCell(next.To.X, next.To.Y, next.Piece); err != nil {
		return nil, err
	}
	return next, nil
}

// nearestEmpty searches concentric clamped squares around c for an
// empty cell. For each ring the top and bottom rows are scanned left to
// right before the left and right columns are scanned bottom to top.
func (b *Board) nearestEmpty(c Coord) (Coord, error) {
	for shift := 1; shift < max(b.width, b.height); shift++ {
		left := max(c.X-shift, 0)
		right := min(c.X+shift, b.width-1)
		bottom := max(c.Y-shift, 0)
		top := min(c.Y+shift, b.height-1)

		for i := left; i <= right; i++ {
			if b.cells[b.index(i, top)].Empty() {
				return C(i, top), nil
			}
			if b.cells[b.index(i, bottom)].Empty() {
				return C(i, bottom), nil
			}
		}
		for i := bottom; i <= top; i++ {
			if b.cells[b.index(left, i)].Empty() {
				return C(left, i), nil
			}
			if b.cells[b.index(right, i)].Empty() {
				return C(right, i), nil
			}
		}
	}
	return Coord{}, fmt.Errorf("model: displacing from %s: %w", c, ErrBoardFull)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
	}
}

// Cells returns a row-major copy of all cells.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	count := 0
	for _, cell := range b.cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	return len(b.cells) - b.FilledCount()
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i, cell := range b.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board as text, highest row first. Empty cells are
// shown as ".", pieces as the first letter of their kind followed by
// their level (e.g. "F2").
func (b *Board) String() string {
	var sb strings.Builder
	for y := b.height - 1; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := b.cells[b.index(x, y)]
			if cell.Empty() {
				sb.WriteString(" .")
				continue
			}
			fmt.Fprintf(&sb, "%c%d", strings.ToUpper(cell.Piece.Kind().String())[0], cell.Piece.Level())
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
