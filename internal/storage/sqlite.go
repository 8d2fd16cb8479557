// Package storage provides SQLite-based persistence for scene history:
// files picked in the browser and finished loop runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for scene history.
type Store struct {
	db *sql.DB
}

// PickEntry is one file chosen from a file list.
type PickEntry struct {
	ID        int64
	DemoID    string
	Path      string
	CreatedAt time.Time
}

// RunEntry is one finished loop run.
type RunEntry struct {
	ID        int64
	DemoID    string
	User      string // SSH user, empty for local runs
	Ticks     uint64
	Duration  time.Duration
	CreatedAt time.Time
}

// DemoStats contains aggregated run statistics for a demo.
type DemoStats struct {
	DemoID        string
	Runs          int
	TotalTicks    int64
	TotalDuration time.Duration
	LastRun       time.Time
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
		CREATE TABLE IF NOT EXISTS picks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			demo_id TEXT NOT NULL,
			path TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_picks_demo_id ON picks(demo_id);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			demo_id TEXT NOT NULL,
			username TEXT NOT NULL DEFAULT '',
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_demo_id ON runs(demo_id);
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

// SavePick records a file chosen in the given demo.
// Returns the ID of the inserted record.
func (s *Store) SavePick(demoID, path string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO picks (demo_id, path) VALUES (?, ?)",
		demoID, path,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save pick: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentPicks retrieves the last N picks for the given demo, newest first.
func (s *Store) RecentPicks(demoID string, limit int) ([]PickEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, demo_id, path, created_at
		 FROM picks
		 WHERE demo_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		demoID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query picks: %w", err)
	}
	defer rows.Close()

	var entries []PickEntry
	for rows.Next() {
		var e PickEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.DemoID, &e.Path, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RecordRun stores a finished run.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(run RunEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (demo_id, username, ticks, duration_ms) VALUES (?, ?, ?, ?)",
		run.DemoID, run.User, int64(run.Ticks), run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns retrieves the last N runs, newest first.
// An empty demoID matches every demo.
func (s *Store) RecentRuns(demoID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, demo_id, username, ticks, duration_ms, created_at
		 FROM runs
		 WHERE ? = '' OR demo_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		demoID, demoID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var ticks, durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.DemoID, &e.User, &ticks, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// DemoStats retrieves aggregated run statistics for a specific demo.
func (s *Store) DemoStats(demoID string) (*DemoStats, error) {
	stats := &DemoStats{DemoID: demoID}

	var durationMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(duration_ms), 0)
		 FROM runs WHERE demo_id = ?`,
		demoID,
	).Scan(&stats.Runs, &stats.TotalTicks, &durationMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get demo stats: %w", err)
	}
	stats.TotalDuration = time.Duration(durationMS) * time.Millisecond

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE demo_id = ? ORDER BY id DESC LIMIT 1`,
		demoID,
	).Scan(&lastRun)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTime(lastRun)
	}

	return stats, nil
}

// ClearHistory deletes all picks and runs for the given demo.
func (s *Store) ClearHistory(demoID string) error {
	if _, err := s.db.Exec("DELETE FROM picks WHERE demo_id = ?", demoID); err != nil {
		return fmt.Errorf("storage: cannot clear picks: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE demo_id = ?", demoID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
