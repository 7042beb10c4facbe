package storage

import (
	"testing"
	"time"
)

func TestBotRunRoundTrip(t *testing.T) {
	store := openTestStore(t)

	run := BotRun{
		Player:   "heuristic",
		Seed:     42,
		Pieces:   500,
		Lines:    198,
		Score:    31200,
		GameOver: true,
		Duration: 1500 * time.Millisecond,
	}
	id, err := store.SaveBotRun(run)
	if err != nil {
		t.Fatalf("SaveBotRun() failed: %v", err)
	}

	runs, err := store.RecentBotRuns("heuristic", 10)
	if err != nil {
		t.Fatalf("RecentBotRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, expected 1", len(runs))
	}

	got := runs[0]
	if got.ID != id || got.CreatedAt.IsZero() {
		t.Errorf("ID = %d, CreatedAt = %v", got.ID, got.CreatedAt)
	}
	got.ID, got.CreatedAt = 0, time.Time{}
	if got != run {
		t.Errorf("stored run = %+v, expected %+v", got, run)
	}
}

func TestRecentBotRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveBotRun(BotRun{Player: "heuristic", Seed: int64(i), Score: i * 100}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveBotRun(BotRun{Player: "random", Seed: 99}); err != nil {
		t.Fatal(err)
	}

	runs, err := store.RecentBotRuns("heuristic", 3)
	if err != nil {
		t.Fatalf("RecentBotRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, expected 3", len(runs))
	}
	// Newest first.
	for i, want := range []int64{4, 3, 2} {
		if runs[i].Seed != want {
			t.Errorf("run %d seed = %d, expected %d", i, runs[i].Seed, want)
		}
	}

	all, err := store.RecentBotRuns("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 6 || all[0].Player != "random" {
		t.Errorf("RecentBotRuns(all) = %d runs, first %q", len(all), all[0].Player)
	}
}

func TestPlayerStatsAndBest(t *testing.T) {
	store := openTestStore(t)

	if best, err := store.BestBotRun("heuristic"); err != nil || best != nil {
		t.Fatalf("BestBotRun() on empty store = %+v, %v", best, err)
	}

	runs := []BotRun{
		{Player: "heuristic", Seed: 1, Pieces: 100, Lines: 40, Score: 4000},
		{Player: "heuristic", Seed: 2, Pieces: 300, Lines: 80, Score: 9000},
		{Player: "random", Seed: 1, Pieces: 30, Lines: 0, Score: 0, GameOver: true},
	}
	for _, r := range runs {
		if _, err := store.SaveBotRun(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.GetPlayerStats()
	if err != nil {
		t.Fatalf("GetPlayerStats() failed: %v", err)
	}
	h := stats["heuristic"]
	if h == nil {
		t.Fatal("missing heuristic stats")
	}
	if h.Runs != 2 || h.BestScore != 9000 || h.AvgScore != 6500 || h.AvgLines != 60 || h.AvgPieces != 200 {
		t.Errorf("heuristic stats = %+v", h)
	}
	if r := stats["random"]; r == nil || r.Runs != 1 {
		t.Errorf("random stats = %+v", r)
	}

	best, err := store.BestBotRun("heuristic")
	if err != nil {
		t.Fatalf("BestBotRun() failed: %v", err)
	}
	if best == nil || best.Seed != 2 {
		t.Errorf("BestBotRun() = %+v, expected seed 2", best)
	}

	if err := store.ClearBotRuns("random"); err != nil {
		t.Fatalf("ClearBotRuns() failed: %v", err)
	}
	if left, _ := store.RecentBotRuns("", 10); len(left) != 2 {
		t.Errorf("after clearing random %d runs remain, expected 2", len(left))
	}
	if err := store.ClearBotRuns(""); err != nil {
		t.Fatal(err)
	}
	if left, _ := store.RecentBotRuns("", 10); len(left) != 0 {
		t.Errorf("after clearing all %d runs remain", len(left))
	}
}

func TestTopBotRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []BotRun{
		{Player: "random", Seed: 1, Score: 40},
		{Player: "heuristic", Seed: 2, Score: 900},
		{Player: "heuristic", Seed: 3, Score: 900},
		{Player: "heuristic", Seed: 4, Score: 300},
	} {
		if _, err := store.SaveBotRun(r); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.TopBotRuns(3)
	if err != nil {
		t.Fatalf("TopBotRuns() failed: %v", err)
	}
	// Equal scores keep insertion order.
	want := []int64{2, 3, 4}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs, expected %d", len(runs), len(want))
	}
	for i, seed := range want {
		if runs[i].Seed != seed {
			t.Errorf("run %d seed = %d, expected %d", i, runs[i].Seed, seed)
		}
	}
}
