package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gemcrush/internal/core"
	"github.com/vovakirdan/gemcrush/internal/games/gemcrush"
	"github.com/vovakirdan/gemcrush/internal/platform/tui"
	"github.com/vovakirdan/gemcrush/internal/registry"
	"github.com/vovakirdan/gemcrush/internal/storage"
)

var flagMode string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Gem Crush.

Click a gem to pick it, then click a neighbour to swap. The keyboard
works too: move the cursor and press space on both gems.

Controls:
  Mouse        - Pick / swap gems
  Arrows/hjkl  - Move cursor
  Space/Enter  - Pick / swap at cursor
  Esc          - Drop the picked gem
  Tab          - Scoreboard
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Modes:
  gemcrush          - Chains are cleared and the board refills
  gemcrush_classic  - Chains score every pass without clearing;
                      moves are not restored on restart

Examples:
  gemcrush play
  gemcrush play --mode gemcrush_classic
  gemcrush play --seed 42 --player alice`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", string(gemcrush.ModeStandard), "Game mode: gemcrush, gemcrush_classic")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Logs must not reach the terminal while the alt screen is up
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Create game instance
	game, err := registry.Create(flagMode)
	if err != nil {
		return fmt.Errorf("%w (run 'gemcrush list' to see modes)", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting game", "mode", flagMode, "player", flagPlayer, "seed", flagSeed)

	runErr := tui.Run(game, store, cfg, tui.Options{
		Player: flagPlayer,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
