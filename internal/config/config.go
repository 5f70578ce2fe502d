// Package config provides YAML-based configuration loading for the
// merge game and its platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-merge/internal/core"
	"github.com/vovakirdan/tui-merge/internal/games/merge/model"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// MergeConfig contains all configuration for the merge game.
type MergeConfig struct {
	Board      BoardConfig           `yaml:"board"`
	Layout     string                `yaml:"layout"`
	LayoutsDir string                `yaml:"layouts_dir"`
	Cell       CellConfig            `yaml:"cell"`
	Pieces     map[string]PieceStyle `yaml:"pieces"`
}

// BoardConfig sets the size of an empty board, used when no layout is selected.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CellConfig sets how many terminal cells one board cell occupies.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PieceStyle defines how pieces of one kind are drawn.
type PieceStyle struct {
	Color  string   `yaml:"color"`
	Glyphs []string `yaml:"glyphs"` // One glyph per level, starting at level 1
}

// Validate checks the configuration for values the game cannot use.
func (c MergeConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board %dx%d: %w", c.Board.Width, c.Board.Height, ErrInvalidConfig)
	}
	if c.Cell.Width < 3 || c.Cell.Height < 1 {
		return fmt.Errorf("config: cell %dx%d too small: %w", c.Cell.Width, c.Cell.Height, ErrInvalidConfig)
	}

	for name, style := range c.Pieces {
		kind, err := model.ParseKind(name)
		if err != nil {
			return fmt.Errorf("config: pieces.%s: %w", name, errors.Join(ErrInvalidConfig, err))
		}
		if len(style.Glyphs) != 0 && len(style.Glyphs) != kind.MaxLevel() {
			return fmt.Errorf("config: pieces.%s: %d glyphs for %d levels: %w",
				name, len(style.Glyphs), kind.MaxLevel(), ErrInvalidConfig)
		}
		if style.Color != "" {
			if _, ok := core.ParseColor(style.Color); !ok {
				return fmt.Errorf("config: pieces.%s: unknown color %q: %w", name, style.Color, ErrInvalidConfig)
			}
		}
	}
	return nil
}

// Style returns the style for a kind, falling back to the defaults for
// anything the config leaves unset.
func (c MergeConfig) Style(kind model.Kind) PieceStyle {
	def := DefaultMergeConfig().Pieces[kind.String()]
	style, ok := c.Pieces[kind.String()]
	if !ok {
		return def
	}
	if style.Color == "" {
		style.Color = def.Color
	}
	if len(style.Glyphs) == 0 {
		style.Glyphs = def.Glyphs
	}
	return style
}

// Glyph returns the glyph for a piece.
func (c MergeConfig) Glyph(p model.Piece) string {
	glyphs := c.Style(p.Kind()).Glyphs
	if p.Level() < 1 || p.Level() > len(glyphs) {
		return "?"
	}
	return glyphs[p.Level()-1]
}

// Color returns the screen colour for a piece kind.
func (c MergeConfig) Color(kind model.Kind) core.Color {
	color, _ := core.ParseColor(c.Style(kind).Color)
	return color
}
