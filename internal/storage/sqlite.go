// Package storage provides SQLite-based persistence for input recordings.
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

	"github.com/vovakirdan/jumpy-jack/internal/core"
	"github.com/vovakirdan/jumpy-jack/internal/runner"
)

// Store manages the SQLite database connection for recordings.
type Store struct {
	db *sql.DB
}

// Recording is one recorded session: everything needed to replay it.
type Recording struct {
	ID         int64
	Seed       int64
	ConfigYAML string // Effective config at record time
	Frames     uint64
	FinalScore int
	Events     []runner.InputRecord
	CreatedAt  time.Time
}

// RecordingSummary is a recording without its event log.
type RecordingSummary struct {
	ID         int64
	Seed       int64
	Frames     uint64
	FinalScore int
	EventCount int
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
		CREATE TABLE IF NOT EXISTS recordings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			config_yaml TEXT NOT NULL,
			frames INTEGER NOT NULL,
			final_score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS recording_events (
			recording_id INTEGER NOT NULL REFERENCES recordings(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			frame_no INTEGER NOT NULL,
			key_code INTEGER NOT NULL,
			PRIMARY KEY (recording_id, seq)
		);
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

// SaveRecording stores a recording and its events in one transaction.
// Returns the ID of the inserted record.
func (s *Store) SaveRecording(rec Recording) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	result, err := tx.Exec(
		"INSERT INTO recordings (seed, config_yaml, frames, final_score) VALUES (?, ?, ?, ?)",
		rec.Seed, rec.ConfigYAML, int64(rec.Frames), rec.FinalScore,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save recording: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO recording_events (recording_id, seq, frame_no, key_code) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer stmt.Close()

	for i, ev := range rec.Events {
		if _, err := stmt.Exec(id, i, int64(ev.Frame), int(ev.Key)); err != nil {
			return 0, fmt.Errorf("storage: cannot save event %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit recording: %w", err)
	}
	return id, nil
}

// Recording loads a recording with its events.
// Returns nil without error if no recording has the given ID.
func (s *Store) Recording(id int64) (*Recording, error) {
	var rec Recording
	var frames int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, seed, config_yaml, frames, final_score, created_at
		 FROM recordings
		 WHERE id = ?`,
		id,
	).Scan(&rec.ID, &rec.Seed, &rec.ConfigYAML, &frames, &rec.FinalScore, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recording: %w", err)
	}
	rec.Frames = uint64(frames)
	rec.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		`SELECT frame_no, key_code FROM recording_events
		 WHERE recording_id = ?
		 ORDER BY seq`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var frame int64
		var key int
		if err := rows.Scan(&frame, &key); err != nil {
			return nil, fmt.Errorf("storage: cannot scan event: %w", err)
		}
		rec.Events = append(rec.Events, runner.InputRecord{Frame: uint64(frame), Key: core.Key(key)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &rec, nil
}

// Recordings lists the most recent recordings, newest first.
func (s *Store) Recordings(limit int) ([]RecordingSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.seed, r.frames, r.final_score, r.created_at,
		        (SELECT COUNT(*) FROM recording_events e WHERE e.recording_id = r.id)
		 FROM recordings r
		 ORDER BY r.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var out []RecordingSummary
	for rows.Next() {
		var r RecordingSummary
		var frames int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Seed, &frames, &r.FinalScore, &createdAt, &r.EventCount); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Frames = uint64(frames)
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// DeleteRecording removes a recording and its events.
func (s *Store) DeleteRecording(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM recording_events WHERE recording_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete events: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM recordings WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
