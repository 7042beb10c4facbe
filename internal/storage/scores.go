package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one finished game on a scoreboard.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Lines     int
	Level     int
	CreatedAt time.Time
}

// GameStats aggregates the stored scores of one board.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	BestLines  int
	LastPlayed time.Time
}

// SaveScore records a finished game and returns its ID.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	return s.insert("score",
		"INSERT INTO scores (game_id, score, lines, level) VALUES (?, ?, ?, ?)",
		e.GameID, e.Score, e.Lines, e.Level,
	)
}

// TopScores returns the best limit scores of a board, highest first.
// Equal scores keep insertion order.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, lines, level, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			created any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Lines, &e.Level, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		e.CreatedAt = parseTime(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read scores: %w", err)
	}
	return entries, nil
}

// HighScore returns the best score of a board, or 0 when it is empty.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes every score of a board.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetGameStats summarizes a board. An empty board yields zero stats.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(lines), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.BestLines, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(last)
	return stats, nil
}
