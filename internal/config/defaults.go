package config

import (
	_ "embed"
)

//go:embed defaults/merge.yaml
var defaultMergeYAML []byte

// DefaultMergeConfig returns the hardcoded default configuration.
// It matches defaults/merge.yaml.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		Board: BoardConfig{
			Width:  4,
			Height: 4,
		},
		Layout:     "meadow",
		LayoutsDir: "~/.merge/layouts",
		Cell: CellConfig{
			Width:  5,
			Height: 2,
		},
		Pieces: map[string]PieceStyle{
			"flower": {Color: "bright-magenta", Glyphs: []string{"✿", "❀"}},
			"box":    {Color: "orange", Glyphs: []string{"▣"}},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMergeYAML
}
