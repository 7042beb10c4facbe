package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/games/tetris"
	"github.com/vovakirdan/blockpilot/internal/platform/tui"
	"github.com/vovakirdan/blockpilot/internal/registry"
	"github.com/vovakirdan/blockpilot/internal/storage"
)

var (
	flagAutoplay   bool
	flagPlayer     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right, H/L   - Shift piece
  Down, J           - Soft drop
  Up, K, X          - Rotate clockwise
  Z                 - Rotate anticlockwise
  Space             - Hard drop
  A                 - Hand control to the pilot and back
  P                 - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot to ~/.blockpilot/screenshots
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  blockpilot play
  blockpilot play --difficulty hard
  blockpilot play --autoplay --player random
  blockpilot play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAutoplay, "autoplay", false, "Let the pilot play from the first piece")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Pilot name (see 'blockpilot players')")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; the game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newTUILogger()
	if err != nil {
		return err
	}
	defer closeLog()

	gameID := tetris.IDManual
	if flagAutoplay {
		gameID = tetris.IDAutoplay
	}

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Player:     flagPlayer,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
