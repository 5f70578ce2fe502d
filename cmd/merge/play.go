package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-merge/internal/core"
	"github.com/vovakirdan/tui-merge/internal/games/merge"
	"github.com/vovakirdan/tui-merge/internal/games/merge/layouts"
	"github.com/vovakirdan/tui-merge/internal/platform/tui"
	"github.com/vovakirdan/tui-merge/internal/registry"
)

var (
	flagLayout string
	flagGame   string
	flagMenu   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Opens a board in the terminal. Without --layout the layout named in
the config is opened, or an empty board of the configured size when the
config names none. Press m on a board for a menu of every layout.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Grab piece, then drop it
  Mouse        - Drag a piece onto another cell
  Esc          - Cancel the current grab
  R            - Restart the layout
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  merge play
  merge play --menu
  merge play --layout nursery
  merge play --game merge_swap
  merge play --layouts-dir ./my-layouts --log-file merge.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Layout id to open directly")
	playCmd.Flags().StringVar(&flagGame, "game", "merge", "Registered game id to open (see 'merge list')")
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Start in the layout menu")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Logs would corrupt the alternate screen unless they go to a file
	tuiLogger := logger
	if flagLogFile == "" {
		tuiLogger = log.New(io.Discard)
	}

	if flagLayout != "" {
		l, err := layouts.Find(merge.LayoutsDir(cfg), flagLayout)
		if err != nil {
			return err
		}
		return tui.Run(tui.GameFor(l, cfg), runtime, tuiLogger)
	}

	ls, err := loadLayouts(cfg)
	if err != nil {
		return err
	}
	if flagMenu {
		return tui.RunSession(ls, cfg, nil, runtime, tuiLogger)
	}

	game, err := registry.Create(flagGame)
	if err != nil {
		return err
	}
	return tui.RunSession(ls, cfg, game, runtime, tuiLogger)
}
