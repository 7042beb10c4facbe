// blockpilot is a falling-block puzzle game for the terminal with a built-in
// pilot that can play for you.
//
// Usage:
//
//	blockpilot play               - Play a game (A hands control to the pilot)
//	blockpilot play --autoplay    - Watch the pilot from the first piece
//	blockpilot menu               - Pick a mode interactively
//	blockpilot bench              - Run headless pilot games and report statistics
//	blockpilot scores [game]      - Show high scores and stored bench runs
//	blockpilot players            - List available pilots
//	blockpilot serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.blockpilot/scores.db)
//	--config <path>      - Use a custom tetris.yaml
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/blockpilot/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockpilot",
	Short: "blockpilot - falling blocks with an autopilot",
	Long: `blockpilot is a falling-block puzzle game for the terminal. Play it
yourself, hand the controls to the pilot at any moment, or benchmark pilots
headlessly across many seeds.

Available commands:
  play     - Play a game directly
  menu     - Interactive mode picker
  bench    - Benchmark a pilot over many seeded games
  scores   - View high scores and bench runs
  players  - List available pilots
  list     - Show registered game modes
  serve    - Start SSH server for remote play

Examples:
  blockpilot play
  blockpilot play --autoplay --player heuristic
  blockpilot bench --games 20 --pieces 500 --workers 4 --save
  blockpilot serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockpilot/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}
