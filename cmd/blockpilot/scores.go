package main

import (
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockpilot/internal/games/tetris"
	"github.com/vovakirdan/blockpilot/internal/platform/tui"
	"github.com/vovakirdan/blockpilot/internal/registry"
	"github.com/vovakirdan/blockpilot/internal/storage"
)

var (
	flagScoresClear  bool
	flagScoresBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game|bench]",
	Short: "Show high scores and bench runs",
	Long: `Display the top 10 scores for a game mode, or the stored bench runs.
Without an argument every board is shown.

Examples:
  blockpilot scores
  blockpilot scores tetris
  blockpilot scores tetris_autoplay
  blockpilot scores bench
  blockpilot scores tetris --clear
  blockpilot scores --browse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

// benchBoard names the bench runs board on the command line.
const benchBoard = "bench"

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the given board")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Browse every board in the interactive scoreboard")
	scoresCmd.MarkFlagsMutuallyExclusive("clear", "browse")
}

func runScores(_ *cobra.Command, args []string) error {
	boards := []string{tetris.IDManual, tetris.IDAutoplay, benchBoard}
	if len(args) == 1 {
		board := args[0]
		if board != benchBoard && !registry.Exists(board) {
			return fmt.Errorf("unknown board %q (run 'blockpilot list' to see game modes)", board)
		}
		boards = []string{board}
	} else if flagScoresClear {
		return fmt.Errorf("--clear needs a board name")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresBrowse {
		term := terminalConfig()
		return tui.RunScoreboard(store, term.ScreenW, term.ScreenH)
	}

	if flagScoresClear {
		if boards[0] == benchBoard {
			err = store.ClearBotRuns("")
		} else {
			err = store.ClearScores(boards[0])
		}
		if err != nil {
			return err
		}
		fmt.Printf("Cleared %s.\n", boards[0])
		return nil
	}

	for i, board := range boards {
		if i > 0 {
			fmt.Println()
		}
		if board == benchBoard {
			err = printBenchRuns(store)
		} else {
			err = printScores(store, board)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", registry.Title(gameID))
	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %-6d  %-5d  %s\n", i+1, e.Score, e.Lines, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Printf("\n  Best %d (most lines %d), average %.0f over %d games\n",
			stats.HighScore, stats.BestLines, stats.AvgScore, stats.GamesCount)
	}
	return nil
}

func printBenchRuns(store *storage.Store) error {
	runs, err := store.TopBotRuns(10)
	if err != nil {
		return err
	}

	fmt.Println("Bench Runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("  No bench runs stored yet. Run 'blockpilot bench --save'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Rank\tPilot\tScore\tLines\tPieces\tSeed")
	for i, r := range runs {
		fmt.Fprintf(w, "  %d\t%s\t%d\t%d\t%d\t%d\n", i+1, r.Player, r.Score, r.Lines, r.Pieces, r.Seed)
	}
	w.Flush()

	stats, err := store.GetPlayerStats()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Println()
	for _, name := range names {
		ps := stats[name]
		fmt.Printf("  %-10s %d runs, best %d, mean score %.0f, mean lines %.1f\n",
			name, ps.Runs, ps.BestScore, ps.AvgScore, ps.AvgLines)
	}
	return nil
}
