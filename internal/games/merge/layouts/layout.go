// Package layouts loads starting boards for the merge game from YAML files.
// This package depends on model but model does not depend on layouts.
package layouts

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-merge/internal/games/merge/model"
)

// ErrInvalidLayout is wrapped by every validation failure.
var ErrInvalidLayout = errors.New("invalid layout")

// yamlLayout is the on-disk representation of a layout file.
type yamlLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     yamlSize          `yaml:"size"`
	Pieces   []yamlPiece       `yaml:"pieces"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

type yamlSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type yamlPiece struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Kind  string `yaml:"kind"`
	Level int    `yaml:"level,omitempty"` // 0 means level 1
}

// Placement is a piece at a board coordinate.
type Placement struct {
	At    model.Coord
	Piece model.Piece
}

// Layout describes a starting board.
type Layout struct {
	ID         string
	Name       string
	Width      int
	Height     int
	Placements []Placement
	Metadata   map[string]string
	FilePath   string // Empty for built-in layouts
}

// ParseYAML parses and validates a layout file.
func ParseYAML(data []byte) (Layout, error) {
	var yl yamlLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("layouts: yaml unmarshal: %w", err)
	}

	l := Layout{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    yl.Size.W,
		Height:   yl.Size.H,
		Metadata: yl.Metadata,
	}
	if l.Name == "" {
		l.Name = l.ID
	}

	for i, yp := range yl.Pieces {
		kind, err := model.ParseKind(yp.Kind)
		if err != nil {
			return Layout{}, fmt.Errorf("layouts: %s: piece %d: %w", l.ID, i, errors.Join(ErrInvalidLayout, err))
		}
		level := yp.Level
		if level == 0 {
			level = 1
		}
		p, err := model.NewPiece(kind, level)
		if err != nil {
			return Layout{}, fmt.Errorf("layouts: %s: piece %d: %w", l.ID, i, errors.Join(ErrInvalidLayout, err))
		}
		l.Placements = append(l.Placements, Placement{At: model.C(yp.X, yp.Y), Piece: p})
	}

	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks the layout for a usable id, a positive size and
// placements that are on the board and do not overlap.
func (l Layout) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("layouts: missing id: %w", ErrInvalidLayout)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("layouts: %s: size %dx%d: %w", l.ID, l.Width, l.Height, ErrInvalidLayout)
	}

	seen := make(map[model.Coord]bool, len(l.Placements))
	for _, p := range l.Placements {
		if p.At.X < 0 || p.At.X >= l.Width || p.At.Y < 0 || p.At.Y >= l.Height {
			return fmt.Errorf("layouts: %s: piece at %s outside %dx%d board: %w",
				l.ID, p.At, l.Width, l.Height, ErrInvalidLayout)
		}
		if seen[p.At] {
			return fmt.Errorf("layouts: %s: two pieces at %s: %w", l.ID, p.At, ErrInvalidLayout)
		}
		seen[p.At] = true
	}
	return nil
}

// NewBoard builds a fresh board holding the layout's pieces.
func (l Layout) NewBoard() (*model.Board, error) {
	b, err := model.NewBoard(l.Width, l.Height)
	if err != nil {
		return nil, fmt.Errorf("layouts: %s: %w", l.ID, err)
	}
	for _, p := range l.Placements {
		if err := b.SetCell(p.At.X, p.At.Y, p.Piece); err != nil {
			return nil, fmt.Errorf("layouts: %s: %w", l.ID, err)
		}
	}
	return b, nil
}

// Title returns the display name, falling back to the id.
func (l Layout) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}
