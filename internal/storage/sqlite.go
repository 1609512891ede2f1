// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLite's CURRENT_TIMESTAMP layout.
const timestampLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one recorded session. Frames holds the encoded input recording and
// is only loaded by GetRun.
type Run struct {
	ID         string
	GameID     string
	Seed       int64
	ScreenW    int
	ScreenH    int
	ConfigHash string
	FrameCount int
	Score      int
	Frames     []byte
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			screen_w INTEGER NOT NULL,
			screen_h INTEGER NOT NULL,
			config_hash TEXT NOT NULL,
			frame_count INTEGER NOT NULL,
			score INTEGER NOT NULL,
			frames BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTimestamp accepts what the driver returns for a DATETIME column.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timestampLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveRun stores a recorded run under a fresh ID and returns that ID.
func (s *Store) SaveRun(run Run) (string, error) {
	// A nil slice binds as NULL
	if run.Frames == nil {
		run.Frames = []byte{}
	}
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, game_id, seed, screen_w, screen_h, config_hash, frame_count, score, frames)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		run.GameID,
		run.Seed,
		run.ScreenW,
		run.ScreenH,
		run.ConfigHash,
		run.FrameCount,
		run.Score,
		run.Frames,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first, without their frames.
// An empty gameID lists every game.
func (s *Store) ListRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, screen_w, screen_h, config_hash, frame_count, score, created_at
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.Seed,
			&r.ScreenW,
			&r.ScreenH,
			&r.ConfigHash,
			&r.FrameCount,
			&r.Score,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// GetRun loads a run with its frames. It returns nil if no run has the ID.
func (s *Store) GetRun(id string) (*Run, error) {
	var r Run
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, game_id, seed, screen_w, screen_h, config_hash, frame_count, score, frames, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	).Scan(
		&r.ID,
		&r.GameID,
		&r.Seed,
		&r.ScreenW,
		&r.ScreenH,
		&r.ConfigHash,
		&r.FrameCount,
		&r.Score,
		&r.Frames,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	r.CreatedAt = parseTimestamp(createdAt)

	return &r, nil
}

// DeleteRun removes a run. Deleting a missing run is not an error.
func (s *Store) DeleteRun(id string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	return nil
}
