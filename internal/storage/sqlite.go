// Package storage provides SQLite-based persistence for settings and the
// attempt history of the exercise.
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

	"github.com/vovakirdan/frame-color/internal/exercise"
	"github.com/vovakirdan/frame-color/internal/settings"
)

const timestampLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// AttemptEntry is a stored exercise attempt.
type AttemptEntry struct {
	ID        int64
	SessionID string
	Target    exercise.FrameColor
	Selected  exercise.FrameColor
	Correct   bool
	CreatedAt time.Time
}

// AttemptStats aggregates stored attempts.
type AttemptStats struct {
	Attempts  int
	Correct   int
	Sessions  int
	LastEntry time.Time
}

// Accuracy returns the share of correct attempts in [0, 1].
func (s AttemptStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			target TEXT NOT NULL,
			selected TEXT NOT NULL,
			correct INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_session ON attempts(session_id);
		CREATE INDEX IF NOT EXISTS idx_attempts_created ON attempts(created_at DESC);
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

// Get returns the value stored under key. ok is false if the key is absent.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}

// Ensure Store can back the settings package.
var _ settings.KV = (*Store)(nil)

// SaveAttempt records an attempt and returns its ID.
func (s *Store) SaveAttempt(a exercise.Attempt) (int64, error) {
	createdAt := a.At
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := s.db.Exec(
		"INSERT INTO attempts (session_id, target, selected, correct, created_at) VALUES (?, ?, ?, ?, ?)",
		a.SessionID,
		a.Target.String(),
		a.Selected.String(),
		a.Outcome == exercise.OutcomeSuccess,
		createdAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordAttempt implements exercise.AttemptRecorder.
func (s *Store) RecordAttempt(a exercise.Attempt) error {
	_, err := s.SaveAttempt(a)
	return err
}

// Ensure Store implements AttemptRecorder
var _ exercise.AttemptRecorder = (*Store)(nil)

// RecentAttempts returns the latest attempts, newest first.
func (s *Store) RecentAttempts(limit int) ([]AttemptEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, target, selected, correct, created_at
		 FROM attempts
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// SessionAttempts returns every attempt of one session, oldest first.
func (s *Store) SessionAttempts(sessionID string) ([]AttemptEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, target, selected, correct, created_at
		 FROM attempts
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// Stats aggregates all stored attempts.
func (s *Store) Stats() (AttemptStats, error) {
	var stats AttemptStats
	var last any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(correct), 0), COUNT(DISTINCT session_id), MAX(created_at)
		 FROM attempts`,
	).Scan(&stats.Attempts, &stats.Correct, &stats.Sessions, &last)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get attempt stats: %w", err)
	}
	stats.LastEntry = parseTimestamp(last)

	return stats, nil
}

// ClearAttempts deletes the whole attempt history.
func (s *Store) ClearAttempts() error {
	if _, err := s.db.Exec("DELETE FROM attempts"); err != nil {
		return fmt.Errorf("storage: cannot clear attempts: %w", err)
	}
	return nil
}

func scanAttempts(rows *sql.Rows) ([]AttemptEntry, error) {
	var entries []AttemptEntry
	for rows.Next() {
		var e AttemptEntry
		var target, selected string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &target, &selected, &e.Correct, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Unknown names map to FrameColorNone rather than failing the query
		e.Target, _ = exercise.ParseFrameColor(target)
		e.Selected, _ = exercise.ParseFrameColor(selected)
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles both time.Time and string datetime columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timestampLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
