package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockpilot/internal/platform/tui"
	"github.com/vovakirdan/blockpilot/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive mode picker",
	Long: `Open the title menu to play, watch the pilot, or browse high scores.

Menu controls:
  Up/Down, J/K  - Navigate
  Enter         - Select
  Tab           - High scores
  Esc/B         - Back to the menu (from a game or the scoreboard)
  Q/Ctrl+C      - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPlayer, "player", "", "Pilot name (see 'blockpilot players')")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newTUILogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Player:     flagPlayer,
		Logger:     logger,
	}
	if err := tui.RunSession(store, terminalConfig(), opts); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
