// Package model provides the board and piece rules for the merge game.
// This package is UI-agnostic and has no dependencies outside the standard library.
package model

import (
	"fmt"
	"strings"
)

// Kind identifies the family a piece belongs to.
type Kind uint8

const (
	KindFlower Kind = iota + 1
	KindBox
)

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindFlower, KindBox}
}

// MaxLevel returns the level at which pieces of this kind stop merging.
func (k Kind) MaxLevel() int {
	switch k {
	case KindFlower:
		return 2
	case KindBox:
		return 1
	default:
		return 0
	}
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFlower:
		return "flower"
	case KindBox:
		return "box"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k.MaxLevel() > 0
}

// ParseKind converts a kind name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flower":
		return KindFlower, nil
	case "box":
		return KindBox, nil
	default:
		return 0, fmt.Errorf("model: %q: %w", s, ErrUnknownKind)
	}
}

// Piece is an immutable game item. Merging produces a new Piece.
type Piece struct {
	kind  Kind
	level int
}

// NewPiece creates a piece of the given kind and level.
// The level must be within [1, kind.MaxLevel()].
func NewPiece(kind Kind, level int) (Piece, error) {
	if !kind.Valid() {
		return Piece{}, fmt.Errorf("model: kind %d: %w", kind, ErrUnknownKind)
	}
	if level < 1 || level > kind.MaxLevel() {
		return Piece{}, fmt.Errorf("model: %s level %d (max %d): %w",
			kind, level, kind.MaxLevel(), ErrInvalidLevel)
	}
	return Piece{kind: kind, level: level}, nil
}

// Flower returns a level 1 flower.
func Flower() Piece {
	return Piece{kind: KindFlower, level: 1}
}

// FlowerAt returns a flower at the given level.
func FlowerAt(level int) (Piece, error) {
	return NewPiece(KindFlower, level)
}

// Box returns a level 1 box.
func Box() Piece {
	return Piece{kind: KindBox, level: 1}
}

// BoxAt returns a box at the given level.
func BoxAt(level int) (Piece, error) {
	return NewPiece(KindBox, level)
}

// Kind returns the piece kind.
func (p Piece) Kind() Kind {
	return p.kind
}

// Level returns the piece level (1-based).
func (p Piece) Level() int {
	return p.level
}

// MaxLevel is shorthand for p.Kind().MaxLevel().
func (p Piece) MaxLevel() int {
	return p.kind.MaxLevel()
}

// MergesWith reports whether other can be merged into p.
// Only the receiver's level ceiling is checked; with equal kinds and
// levels the ceiling is the same on both sides.
func (p Piece) MergesWith(other Piece) bool {
	return p.level < p.kind.MaxLevel() && other.kind == p.kind && other.level == p.level
}

// Merge returns the piece produced by merging other into p.
func (p Piece) Merge(other Piece) (Piece, error) {
	if !p.MergesWith(other) {
		return Piece{}, fmt.Errorf("model: %s with %s: %w", p, other, ErrInvalidMerge)
	}
	return Piece{kind: p.kind, level: p.level + 1}, nil
}

// String returns a compact description such as "flower/2".
func (p Piece) String() string {
	return fmt.Sprintf("%s/%d", p.kind, p.level)
}
