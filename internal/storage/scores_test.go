package storage

import (
	"testing"
	"time"
)

func TestTopScores(t *testing.T) {
	store := openTestStore(t)
	mustSaveScores(t, store, "tetris", 100, 50, 200, 400, 300)
	mustSaveScores(t, store, "tetris_autoplay", 9000)

	tests := []struct {
		name     string
		gameID   string
		limit    int
		expected []int
	}{
		{"all sorted", "tetris", 10, []int{400, 300, 200, 100, 50}},
		{"limited", "tetris", 3, []int{400, 300, 200}},
		{"default limit", "tetris", 0, []int{400, 300, 200, 100, 50}},
		{"other game", "tetris_autoplay", 10, []int{9000}},
		{"unknown game", "nope", 10, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := store.TopScores(tc.gameID, tc.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(entries) != len(tc.expected) {
				t.Fatalf("got %d entries, expected %d", len(entries), len(tc.expected))
			}
			for i, e := range entries {
				if e.Score != tc.expected[i] || e.GameID != tc.gameID {
					t.Errorf("entry %d = %+v, expected score %d", i, e, tc.expected[i])
				}
				if e.CreatedAt.IsZero() {
					t.Errorf("entry %d has no timestamp", i)
				}
			}
		})
	}
}

func TestSaveScoreKeepsLinesAndLevel(t *testing.T) {
	store := openTestStore(t)
	mustSaveScores(t, store, "tetris", 500)
	if _, err := store.SaveScore(ScoreEntry{GameID: "tetris", Score: 500, Lines: 42, Level: 5}); err != nil {
		t.Fatal(err)
	}

	entries, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, expected 2", len(entries))
	}
	// Equal scores keep insertion order.
	if entries[0].Lines != 5 || entries[1].Lines != 42 || entries[1].Level != 5 {
		t.Errorf("entries = %+v", entries)
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSaveScores(t, store, "tetris", 100, 300, 200)
	mustSaveScores(t, store, "tetris_autoplay", 50)

	if high, _ = store.HighScore("tetris"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("tetris", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("tetris_autoplay", 10); len(scores) != 1 {
		t.Error("Pilot scores should not be affected by clearing human scores")
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSaveScores(t, store, "tetris", 100, 200, 600)
	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 600 || stats.AvgScore != 300 || stats.BestLines != 6 {
		t.Errorf("stats = %+v", stats)
	}
	if time.Since(stats.LastPlayed) > 24*time.Hour {
		t.Errorf("LastPlayed = %v, expected a recent time", stats.LastPlayed)
	}
}
