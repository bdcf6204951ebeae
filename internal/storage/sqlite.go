// Package storage provides SQLite-based persistence for the high score.
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

// Store manages the SQLite database connection for high-score slots.
type Store struct {
	db *sql.DB
}

// Entry is the stored value of one slot.
type Entry struct {
	Slot      string
	Value     int
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS high_scores (
			slot TEXT PRIMARY KEY,
			value INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
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

// HighScore returns the value stored in slot.
// Returns 0 if the slot is empty.
func (s *Store) HighScore(slot string) (int, error) {
	e, err := s.Entry(slot)
	if err != nil {
		return 0, err
	}
	return e.Value, nil
}

// Entry returns the full record of slot. An empty slot yields a zero
// Entry with no error.
func (s *Store) Entry(slot string) (Entry, error) {
	e := Entry{Slot: slot}
	var updatedAt any
	err := s.db.QueryRow(
		"SELECT value, updated_at FROM high_scores WHERE slot = ?",
		slot,
	).Scan(&e.Value, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return e, nil
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		e.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.UpdatedAt = parsed
		}
	}
	return e, nil
}

// SaveHighScore stores value in slot unless the slot already holds a
// higher one, so concurrent sessions never lower the best.
func (s *Store) SaveHighScore(slot string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (slot, value, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   value = excluded.value,
		   updated_at = excluded.updated_at
		 WHERE excluded.value > high_scores.value`,
		slot, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ClearHighScore empties slot.
func (s *Store) ClearHighScore(slot string) error {
	_, err := s.db.Exec("DELETE FROM high_scores WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// Slots returns every stored slot, highest value first.
func (s *Store) Slots() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT slot, value, updated_at
		 FROM high_scores
		 ORDER BY value DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query slots: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var updatedAt any
		if err := rows.Scan(&e.Slot, &e.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
