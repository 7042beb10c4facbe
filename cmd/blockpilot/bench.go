package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockpilot/internal/bench"
	"github.com/vovakirdan/blockpilot/internal/storage"
)

var (
	flagBenchGames   int
	flagBenchPieces  int
	flagBenchWorkers int
	flagBenchPlayer  string
	flagBenchSave    bool
	flagBenchDiff    string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark a pilot over many seeded games",
	Long: `Play games headlessly with a pilot and report score statistics.

Game i uses seed --seed+i, so a run is reproducible for a fixed seed,
whatever the worker count.

Examples:
  blockpilot bench
  blockpilot bench --games 50 --pieces 1000 --workers 8
  blockpilot bench --player random --seed 42 --save`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchGames, "games", 10, "Number of games")
	benchCmd.Flags().IntVar(&flagBenchPieces, "pieces", 500, "Pieces per game (0 = until game over)")
	benchCmd.Flags().IntVar(&flagBenchWorkers, "workers", runtime.NumCPU(), "Games played concurrently")
	benchCmd.Flags().StringVar(&flagBenchPlayer, "player", "", "Pilot name (default from config)")
	benchCmd.Flags().BoolVar(&flagBenchSave, "save", false, "Store every run in the scores database")
	benchCmd.Flags().StringVar(&flagBenchDiff, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runBench(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store *storage.Store
	if flagBenchSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	report, err := bench.Run(cmd.Context(), bench.Options{
		Player:     flagBenchPlayer,
		Games:      flagBenchGames,
		MaxPieces:  flagBenchPieces,
		Workers:    flagBenchWorkers,
		Seed:       seed,
		ConfigPath: flagConfig,
		Difficulty: flagBenchDiff,
		Store:      store,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

func printReport(r bench.Report) {
	fmt.Printf("Pilot %s, %d games in %s\n\n", r.Player, len(r.Results), r.Elapsed.Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Seed\tScore\tLines\tPieces\tEnd\tTime")
	for _, res := range r.Results {
		end := "limit"
		if res.GameOver {
			end = "topped out"
		}
		fmt.Fprintf(w, "  %d\t%d\t%d\t%d\t%s\t%s\n",
			res.Seed, res.Score, res.Lines, res.Pieces, end, res.Duration.Round(time.Millisecond))
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("Score   mean %.1f  stddev %.1f  best %d (seed %d)\n", r.MeanScore, r.StdDevScore, r.BestScore, r.BestSeed)
	fmt.Printf("Lines   mean %.1f\n", r.MeanLines)
	fmt.Printf("Pieces  mean %.1f\n", r.MeanPieces)
	fmt.Printf("Topped out in %d of %d games\n", r.GameOvers, len(r.Results))
}
