// merge is a terminal merge-board game.
//
// Usage:
//
//	merge layouts            - List available layouts
//	merge list               - List registered game ids
//	merge show <layout>      - Print a layout, optionally after some moves
//	merge play [--layout id] - Play locally (configured layout by default)
//	merge serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--layouts-dir <dir>  - Extra layout directory
//	--fps <rate>         - Tick rate (default: 30)
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-merge/internal/config"
	"github.com/vovakirdan/tui-merge/internal/games/merge"
	"github.com/vovakirdan/tui-merge/internal/games/merge/layouts"
)

var (
	// Global flags
	flagConfig     string
	flagLayoutsDir string
	flagFPS        int
	flagLogLevel   string
	flagLogFile    string

	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: "merge", ReportTimestamp: true})
	logSink io.Closer
)

func main() {
	defer closeLog()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge - drag, stack and shuffle pieces in your terminal",
	Long: `Merge is a small board game for the terminal. Drop a piece on an
identical one to merge it into the next level; drop it anywhere else and
whatever was there is pushed to the nearest free cell.

Available commands:
  layouts  - Show all available layouts
  list     - Show registered game ids
  show     - Print a layout and replay moves on it
  play     - Play locally
  serve    - Start SSH server for remote play

Examples:
  merge layouts
  merge show crowded --move 0,3,2,1
  merge play --layout meadow
  merge serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLayoutsDir, "layouts-dir", "", "Directory with extra layout files (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup configures logging and hands CLI paths to the game package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagLogFile != "" {
		f, err := os.OpenFile(config.ExpandHome(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logger.SetOutput(f)
		logSink = f
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	merge.SetConfigPath(flagConfig)
	merge.SetLayoutsDir(config.ExpandHome(flagLayoutsDir))
	return nil
}

func closeLog() {
	if logSink != nil {
		logSink.Close()
		logSink = nil
	}
}

// loadConfig loads the merge config honouring --config.
func loadConfig() (config.MergeConfig, error) {
	cfg, err := config.LoadMerge(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "layout", cfg.Layout, "layouts_dir", merge.LayoutsDir(cfg))
	return cfg, nil
}

// loadLayouts returns built-in and user layouts for cfg.
func loadLayouts(cfg config.MergeConfig) ([]layouts.Layout, error) {
	ls, err := layouts.All(merge.LayoutsDir(cfg))
	if err != nil {
		return nil, err
	}
	logger.Debug("layouts loaded", "count", len(ls))
	return ls, nil
}
