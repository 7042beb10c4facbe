// Package storage keeps finished games and pilot benchmark runs in SQLite.
// It uses the pure-Go modernc.org/sqlite driver, so no CGO is needed.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id TEXT NOT NULL,
	score INTEGER NOT NULL,
	lines INTEGER NOT NULL DEFAULT 0,
	level INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

CREATE TABLE IF NOT EXISTS bot_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	player TEXT NOT NULL,
	seed INTEGER NOT NULL,
	pieces INTEGER NOT NULL DEFAULT 0,
	lines INTEGER NOT NULL DEFAULT 0,
	score INTEGER NOT NULL DEFAULT 0,
	game_over INTEGER NOT NULL DEFAULT 0,
	duration_ms INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_bot_runs_top ON bot_runs(player, score DESC);
`

// Store is a handle to the blockpilot database.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating the file, its parent
// directories and the schema when missing. A leading ~ means the home
// directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One connection serializes writers from concurrent bench workers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, rest), nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// insert runs an INSERT and returns the new row ID.
func (s *Store) insert(what, query string, args ...any) (int64, error) {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save %s: %w", what, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s ID: %w", what, err)
	}
	return id, nil
}

// parseTime converts a created_at column into a time.
// The driver hands back either a time.Time or the raw text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{sqliteTime, time.RFC3339} {
			if t, err := time.Parse(layout, v); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
