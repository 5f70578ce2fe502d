package model

import (
	"errors"
	"testing"
)

func TestNearestEmptyFullBoard(t *testing.T) {
	b, err := NewBoard(3, 2)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	for i := range b.cells {
		b.cells[i] = FilledCell(Box())
	}

	_, err = b.nearestEmpty(C(1, 1))
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("nearestEmpty error = %v, want ErrBoardFull", err)
	}
}

func TestNearestEmptySingleCellBoard(t *testing.T) {
	b, err := NewBoard(1, 1)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	// No ring fits on a 1x1 board, even when the only cell is empty.
	if _, err := b.nearestEmpty(C(0, 0)); !errors.Is(err, ErrBoardFull) {
		t.Errorf("nearestEmpty error = %v, want ErrBoardFull", err)
	}
}

func TestNearestEmptyCoversWholeBoard(t *testing.T) {
	// The last ring reaches the opposite corner of a non-square board.
	b, err := NewBoard(5, 2)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	for i := range b.cells {
		b.cells[i] = FilledCell(Box())
	}
	b.cells[b.index(0, 0)] = EmptyCell()

	got, err := b.nearestEmpty(C(4, 1))
	if err != nil {
		t.Fatalf("nearestEmpty failed: %v", err)
	}
	if got != C(0, 0) {
		t.Errorf("nearestEmpty = %v, want (0,0)", got)
	}
}

func TestIndexIsRowMajor(t *testing.T) {
	b, err := NewBoard(4, 3)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	seen := make(map[int]bool)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := b.index(x, y)
			if idx != y*4+x {
				t.Errorf("index(%d, %d) = %d, want %d", x, y, idx, y*4+x)
			}
			if seen[idx] {
				t.Errorf("index %d produced twice", idx)
			}
			seen[idx] = true
		}
	}
	if len(seen) != len(b.cells) {
		t.Errorf("index covers %d cells, want %d", len(seen), len(b.cells))
	}
}
