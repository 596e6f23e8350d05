// snake is a terminal snake game.
//
// Usage:
//
//	snake                      - Play
//	snake difficulties [name]  - Show the difficulty table
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--log-file <path>    - Write logs to a file (default: discard)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Version is shown in the main menu corner.
const Version = "0.1.0"

var (
	// Global flags
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake in your terminal",
	Long: `Snake is a terminal snake game. Eat the food before it expires,
avoid the walls and your own tail.

Controls:
  W/A/S/D, Arrows  - Steer (menu: arrows)
  Enter            - Select / resume / restart
  Esc              - Pause (in game), quit (main menu)
  Ctrl+C           - Quit at any time

The terminal must be at least 100x56 cells.

Examples:
  snake
  snake --fps 30
  snake --log-file /tmp/snake.log --log-level debug
  snake difficulties`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate cap (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(difficultiesCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size so the first frame can tell whether the field fits
	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Open the session scoreboard
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open session scoreboard", "error", err)
		store = nil
	}

	opts := snake.Options{
		Logger:  logger,
		Version: Version,
	}
	if store != nil {
		defer store.Close()
		opts.Scores = store
	}

	logger.Info("starting", "version", Version, "fps", cfg.TickRate, "width", width, "height", height)
	machine := snake.NewMachine(opts)

	if err := tui.Run(machine, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	if store != nil {
		if err := printSessionSummary(cmd.OutOrStdout(), store); err != nil {
			logger.Warn("could not print session summary", "error", err)
		}
	}
	return nil
}
