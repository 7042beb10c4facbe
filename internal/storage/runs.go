package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// BotRun is the outcome of one headless pilot game.
type BotRun struct {
	ID        int64
	Player    string
	Seed      int64
	Pieces    int
	Lines     int
	Score     int
	GameOver  bool // False when the run stopped at the piece limit
	Duration  time.Duration
	CreatedAt time.Time
}

// PlayerStats aggregates the stored runs of one pilot.
type PlayerStats struct {
	Player    string
	Runs      int
	BestScore int
	AvgScore  float64
	AvgLines  float64
	AvgPieces float64
	LastRun   time.Time
}

// SaveBotRun records a benchmark run.
// Returns the ID of the inserted record.
func (s *Store) SaveBotRun(run BotRun) (int64, error) {
	return s.insert("bot run",
		`INSERT INTO bot_runs (player, seed, pieces, lines, score, game_over, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Player, run.Seed, run.Pieces, run.Lines, run.Score, run.GameOver, run.Duration.Milliseconds(),
	)
}

// RecentBotRuns retrieves the most recent runs, newest first.
// An empty player matches every pilot.
func (s *Store) RecentBotRuns(player string, limit int) ([]BotRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player, seed, pieces, lines, score, game_over, duration_ms, created_at
		 FROM bot_runs
		 WHERE ? = '' OR player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bot runs: %w", err)
	}
	return scanBotRuns(rows)
}

// TopBotRuns retrieves the highest scoring runs across every pilot.
func (s *Store) TopBotRuns(limit int) ([]BotRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player, seed, pieces, lines, score, game_over, duration_ms, created_at
		 FROM bot_runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bot runs: %w", err)
	}
	return scanBotRuns(rows)
}

// scanBotRuns reads bot run rows and closes them.
func scanBotRuns(rows *sql.Rows) ([]BotRun, error) {
	defer rows.Close()

	var runs []BotRun
	for rows.Next() {
		var (
			run        BotRun
			durationMS int64
			createdAt  any
		)
		if err := rows.Scan(
			&run.ID,
			&run.Player,
			&run.Seed,
			&run.Pieces,
			&run.Lines,
			&run.Score,
			&run.GameOver,
			&durationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		run.CreatedAt = parseTime(createdAt)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// GetPlayerStats aggregates the stored runs of every pilot, keyed by name.
func (s *Store) GetPlayerStats() (map[string]*PlayerStats, error) {
	rows, err := s.db.Query(
		`SELECT player, COUNT(*), MAX(score), AVG(score), AVG(lines), AVG(pieces), MAX(created_at)
		 FROM bot_runs
		 GROUP BY player`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PlayerStats)
	for rows.Next() {
		var (
			ps      PlayerStats
			lastRun any
		)
		if err := rows.Scan(&ps.Player, &ps.Runs, &ps.BestScore, &ps.AvgScore, &ps.AvgLines, &ps.AvgPieces, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastRun = parseTime(lastRun)
		stats[ps.Player] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// BestBotRun returns the highest scoring run of a pilot, or nil if it has none.
func (s *Store) BestBotRun(player string) (*BotRun, error) {
	var (
		run        BotRun
		durationMS int64
		createdAt  any
	)
	err := s.db.QueryRow(
		`SELECT id, player, seed, pieces, lines, score, game_over, duration_ms, created_at
		 FROM bot_runs
		 WHERE player = ?
		 ORDER BY score DESC, id ASC
		 LIMIT 1`,
		player,
	).Scan(
		&run.ID,
		&run.Player,
		&run.Seed,
		&run.Pieces,
		&run.Lines,
		&run.Score,
		&run.GameOver,
		&durationMS,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best bot run: %w", err)
	}

	run.Duration = time.Duration(durationMS) * time.Millisecond
	run.CreatedAt = parseTime(createdAt)
	return &run, nil
}

// ClearBotRuns deletes the stored runs of a pilot, or all runs for an empty name.
func (s *Store) ClearBotRuns(player string) error {
	_, err := s.db.Exec("DELETE FROM bot_runs WHERE ? = '' OR player = ?", player, player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear bot runs: %w", err)
	}
	return nil
}
