package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List all available layouts",
	Long: `Shows built-in layouts and those found in the layouts directory.
A layout file with the same id as a built-in one replaces it.`,
	Args: cobra.NoArgs,
	RunE: runLayouts,
}

func runLayouts(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ls, err := loadLayouts(cfg)
	if err != nil {
		return err
	}

	if len(ls) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No layouts available.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "NAME", "SIZE", "PIECES", "SOURCE")

	for _, l := range ls {
		source := "built-in"
		if l.FilePath != "" {
			source = l.FilePath
		}
		t.Row(l.ID, l.Title(), fmt.Sprintf("%dx%d", l.Width, l.Height), strconv.Itoa(len(l.Placements)), source)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t)
	return nil
}
