package model

import "errors"

var (
	// ErrInvalidMerge is returned by Piece.Merge for pieces that do not merge.
	ErrInvalidMerge = errors.New("unstackable pieces")

	// ErrOutOfBounds is returned by board accessors for coordinates off the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrBoardFull is returned by Move when a displaced piece has nowhere to go.
	ErrBoardFull = errors.New("no valid move: board is full")

	// ErrInvalidLevel is returned by NewPiece for levels outside 1..MaxLevel.
	ErrInvalidLevel = errors.New("invalid piece level")

	// ErrUnknownKind is returned by ParseKind and NewPiece for undefined kinds.
	ErrUnknownKind = errors.New("unknown piece kind")

	// ErrInvalidSize is returned by NewBoard for non-positive dimensions.
	ErrInvalidSize = errors.New("invalid board size")
)
