package model

import "fmt"

// Coord is a zero-based cell coordinate. X grows to the right, Y grows
// towards the "top" edge used by the displacement search.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Cell is one board slot. Piece is meaningful only when Filled is true.
type Cell struct {
	Filled bool
	Piece  Piece
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{}
}

// FilledCell returns a cell holding p.
func FilledCell(p Piece) Cell {
	return Cell{Filled: true, Piece: p}
}

// Empty reports whether the cell holds no piece.
func (c Cell) Empty() bool {
	return !c.Filled
}

// Movement describes a relocation of Piece from one cell to another.
// It is used both for requested moves and for the follow-up move of a
// displaced piece.
type Movement struct {
	From  Coord
	To    Coord
	Piece Piece
}

// NewMovement builds a Movement from raw coordinates.
func NewMovement(fromX, fromY, toX, toY int, piece Piece) Movement {
	return Movement{
		From:  C(fromX, fromY),
		To:    C(toX, toY),
		Piece: piece,
	}
}

// String returns a description such as "box/1 (0,1)->(0,2)".
func (m Movement) String() string {
	return fmt.Sprintf("%s %s->%s", m.Piece, m.From, m.To)
}
