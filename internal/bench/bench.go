// Package bench plays headless pilot games to measure how well a player
// performs across many seeds.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/blockpilot/internal/bot"
	"github.com/vovakirdan/blockpilot/internal/config"
	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/games/tetris"
	"github.com/vovakirdan/blockpilot/internal/storage"
)

// Options configure a benchmark.
type Options struct {
	Player     string
	Games      int
	MaxPieces  int // Per game; 0 plays until game over
	Workers    int
	Seed       int64 // Game i uses Seed+i
	ConfigPath string
	Difficulty string
	Store      *storage.Store // Each run is saved when set
	Logger     *log.Logger
}

// Result is the outcome of one game.
type Result struct {
	Seed     int64
	Pieces   int
	Lines    int
	Score    int
	GameOver bool
	Duration time.Duration
}

// Report aggregates a benchmark.
type Report struct {
	Player      string
	Results     []Result // In seed order
	MeanScore   float64
	StdDevScore float64
	MeanLines   float64
	MeanPieces  float64
	BestScore   int
	BestSeed    int64
	GameOvers   int
	Elapsed     time.Duration
}

// maxPiecesCap bounds games that are asked to run until game over.
const maxPiecesCap = 1_000_000

// Run plays opts.Games games concurrently and aggregates the results.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Games <= 0 {
		return Report{}, errors.New("bench: games must be positive")
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.MaxPieces <= 0 {
		opts.MaxPieces = maxPiecesCap
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg, err := config.LoadTetris(opts.ConfigPath)
	if err != nil {
		return Report{}, err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return Report{}, err
	}
	if preset != "" {
		config.ApplyTetrisPreset(&cfg, preset)
	}
	if opts.Player == "" {
		opts.Player = cfg.Bot.Player
	}
	// Reject unknown players before starting workers.
	if _, err := bot.New(opts.Player, bot.Options{}); err != nil {
		return Report{}, err
	}

	start := time.Now()
	results := make([]Result, opts.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range opts.Games {
		seed := opts.Seed + int64(i)
		g.Go(func() error {
			res, err := playGame(ctx, cfg, opts, seed, logger)
			if err != nil {
				return err
			}
			results[i] = res
			logger.Info("game finished",
				"seed", seed, "pieces", res.Pieces, "lines", res.Lines,
				"score", res.Score, "game_over", res.GameOver)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("bench: %w", err)
	}

	if opts.Store != nil {
		for _, res := range results {
			if _, err := opts.Store.SaveBotRun(storage.BotRun{
				Player:   opts.Player,
				Seed:     res.Seed,
				Pieces:   res.Pieces,
				Lines:    res.Lines,
				Score:    res.Score,
				GameOver: res.GameOver,
				Duration: res.Duration,
			}); err != nil {
				return Report{}, err
			}
		}
	}

	report := summarize(opts.Player, results)
	report.Elapsed = time.Since(start)
	return report, nil
}

// playGame runs one seeded game with its own pilot instance.
func playGame(ctx context.Context, cfg config.TetrisConfig, opts Options, seed int64, logger *log.Logger) (Result, error) {
	pilot, err := bot.New(opts.Player, bot.Options{
		Seed:       seed,
		Logger:     logger,
		DumpBoards: cfg.Bot.Trace,
	})
	if err != nil {
		return Result{}, err
	}

	started := time.Now()
	game := tetris.New(cfg, pilot, logger)
	game.Reset(core.RuntimeConfig{Seed: seed}.Normalized())

	var state core.GameState
	for placed := 0; placed < opts.MaxPieces && !state.GameOver; placed++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		state = game.PlaceNext().State
	}

	snap := game.Snapshot()
	return Result{
		Seed:     seed,
		Pieces:   snap.Pieces,
		Lines:    snap.Lines,
		Score:    snap.Score,
		GameOver: state.GameOver,
		Duration: time.Since(started),
	}, nil
}

// summarize computes the aggregate statistics of a finished benchmark.
func summarize(player string, results []Result) Report {
	scores := lo.Map(results, func(r Result, _ int) float64 { return float64(r.Score) })
	lines := lo.Map(results, func(r Result, _ int) float64 { return float64(r.Lines) })
	pieces := lo.Map(results, func(r Result, _ int) float64 { return float64(r.Pieces) })

	best := lo.MaxBy(results, func(a, b Result) bool { return a.Score > b.Score })

	report := Report{
		Player:     player,
		Results:    results,
		MeanScore:  stat.Mean(scores, nil),
		MeanLines:  stat.Mean(lines, nil),
		MeanPieces: stat.Mean(pieces, nil),
		BestScore:  best.Score,
		BestSeed:   best.Seed,
		GameOvers:  lo.CountBy(results, func(r Result) bool { return r.GameOver }),
	}
	if len(scores) > 1 {
		report.StdDevScore = stat.StdDev(scores, nil)
	}
	return report
}
