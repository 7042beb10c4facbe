package bench

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/blockpilot/internal/bot"
	"github.com/vovakirdan/blockpilot/internal/storage"
)

// isolate keeps user and local config files out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestRunDeterministic(t *testing.T) {
	isolate(t)

	opts := Options{Player: bot.HeuristicName, Games: 4, MaxPieces: 40, Seed: 7}

	serial := opts
	serial.Workers = 1
	parallel := opts
	parallel.Workers = 4

	a, err := Run(context.Background(), serial)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	b, err := Run(context.Background(), parallel)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(a.Results) != 4 || len(b.Results) != 4 {
		t.Fatalf("got %d and %d results, expected 4", len(a.Results), len(b.Results))
	}
	for i := range a.Results {
		ra, rb := a.Results[i], b.Results[i]
		ra.Duration, rb.Duration = 0, 0
		if ra != rb {
			t.Errorf("result %d differs between worker counts: %+v vs %+v", i, ra, rb)
		}
		if ra.Seed != 7+int64(i) {
			t.Errorf("result %d seed = %d, expected %d", i, ra.Seed, 7+int64(i))
		}
		if ra.Pieces != 40 || ra.GameOver {
			t.Errorf("result %d = %+v, expected 40 pieces without game over", i, ra)
		}
	}
	if a.MeanScore != b.MeanScore || a.BestScore != b.BestScore {
		t.Errorf("aggregates differ: %+v vs %+v", a, b)
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Seed: 1, Pieces: 10, Lines: 2, Score: 200},
		{Seed: 2, Pieces: 30, Lines: 6, Score: 600, GameOver: true},
		{Seed: 3, Pieces: 20, Lines: 4, Score: 400},
	}

	r := summarize("heuristic", results)
	if r.MeanScore != 400 || r.MeanLines != 4 || r.MeanPieces != 20 {
		t.Errorf("means = %v, %v, %v", r.MeanScore, r.MeanLines, r.MeanPieces)
	}
	if r.StdDevScore != 200 {
		t.Errorf("StdDevScore = %v, expected 200", r.StdDevScore)
	}
	if r.BestScore != 600 || r.BestSeed != 2 {
		t.Errorf("best = %d (seed %d), expected 600 (seed 2)", r.BestScore, r.BestSeed)
	}
	if r.GameOvers != 1 {
		t.Errorf("GameOvers = %d, expected 1", r.GameOvers)
	}

	single := summarize("random", results[:1])
	if single.StdDevScore != 0 {
		t.Errorf("StdDevScore for one game = %v, expected 0", single.StdDevScore)
	}
}

func TestRunSavesRuns(t *testing.T) {
	isolate(t)

	store, err := storage.Open(filepath.Join(t.TempDir(), "bench.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	report, err := Run(context.Background(), Options{
		Player:    bot.RandomName,
		Games:     3,
		MaxPieces: 15,
		Workers:   2,
		Seed:      100,
		Store:     store,
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if report.Player != bot.RandomName {
		t.Errorf("Player = %q", report.Player)
	}

	runs, err := store.RecentBotRuns(bot.RandomName, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("stored %d runs, expected 3", len(runs))
	}
	for _, run := range runs {
		if run.Seed < 100 || run.Seed > 102 {
			t.Errorf("unexpected seed %d", run.Seed)
		}
	}
}

func TestRunErrors(t *testing.T) {
	isolate(t)

	if _, err := Run(context.Background(), Options{Player: "oracle", Games: 1}); err == nil {
		t.Error("unknown player should fail")
	}
	if _, err := Run(context.Background(), Options{Games: 0}); err == nil {
		t.Error("zero games should fail")
	}
	if _, err := Run(context.Background(), Options{Games: 1, Difficulty: "brutal"}); err == nil {
		t.Error("unknown difficulty should fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{Games: 2, MaxPieces: 10})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() with cancelled context = %v, expected context.Canceled", err)
	}
}
