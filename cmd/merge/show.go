package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-merge/internal/games/merge"
	"github.com/vovakirdan/tui-merge/internal/games/merge/layouts"
	"github.com/vovakirdan/tui-merge/internal/games/merge/model"
)

var flagMoves []string

var showCmd = &cobra.Command{
	Use:   "show <layout>",
	Short: "Print a layout and replay moves on it",
	Long: `Prints the starting board of a layout, highest row first.
Each --move picks up the piece at fx,fy and drops it on tx,ty, then the
board is printed again together with any piece that had to make room.

Examples:
  merge show swap --move 0,0,1,0
  merge show crowded --move 0,3,2,1`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringArrayVar(&flagMoves, "move", nil, "Move as fx,fy,tx,ty (repeatable)")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	l, err := layouts.Find(merge.LayoutsDir(cfg), args[0])
	if err != nil {
		return err
	}
	board, err := l.NewBoard()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s) %dx%d\n%s\n", l.Title(), l.ID, l.Width, l.Height, board)

	for _, spec := range flagMoves {
		from, to, err := parseMove(spec)
		if err != nil {
			return err
		}
		cell, err := board.Cell(from.X, from.Y)
		if err != nil {
			return fmt.Errorf("move %q: %w", spec, err)
		}
		if cell.Empty() {
			return fmt.Errorf("move %q: no piece at %s", spec, from)
		}

		m := model.Movement{From: from, To: to, Piece: cell.Piece}
		next, err := board.MoveAuto(m)
		if err != nil {
			return fmt.Errorf("move %q: %w", spec, err)
		}
		logger.Debug("move applied", "move", m, "pushed", next != nil)

		fmt.Fprintf(out, "\n%s\n", m)
		if next != nil {
			fmt.Fprintf(out, "pushed %s\n", next)
		}
		fmt.Fprintln(out, board)
	}
	return nil
}

// parseMove parses "fx,fy,tx,ty".
func parseMove(s string) (model.Coord, model.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return model.Coord{}, model.Coord{}, fmt.Errorf("move %q: want fx,fy,tx,ty", s)
	}

	var n [4]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return model.Coord{}, model.Coord{}, fmt.Errorf("move %q: %w", s, err)
		}
		n[i] = v
	}
	return model.C(n[0], n[1]), model.C(n[2], n[3]), nil
}
