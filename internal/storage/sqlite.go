// Package storage provides SQLite-based persistence for clear times.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// keepCount is how many clear times survive pruning. Only the fastest
// finishes are worth keeping.
const keepCount = 10

// Store manages the SQLite database connection for clear-time persistence.
type Store struct {
	db *sql.DB
}

// ClearEntry represents a single recorded session clear.
type ClearEntry struct {
	ID        int64
	Seconds   float64
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS clear_times (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seconds REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_clear_times_fastest ON clear_times(seconds ASC);
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

// SaveClearTime records a finished session and prunes the table down to the
// ten fastest entries. Returns the ID of the inserted record; the record may
// be pruned immediately if it is slower than the existing ten.
func (s *Store) SaveClearTime(seconds float64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO clear_times (seconds) VALUES (?)",
		seconds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save clear time: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	_, err = s.db.Exec(
		`DELETE FROM clear_times
		 WHERE id NOT IN (
			SELECT id FROM clear_times ORDER BY seconds ASC, id ASC LIMIT ?
		 )`,
		keepCount,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune clear times: %w", err)
	}

	return id, nil
}

// FastestClears retrieves the N fastest clears, quickest first.
func (s *Store) FastestClears(limit int) ([]ClearEntry, error) {
	if limit <= 0 || limit > keepCount {
		limit = keepCount
	}

	rows, err := s.db.Query(
		`SELECT id, seconds, created_at
		 FROM clear_times
		 ORDER BY seconds ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clear times: %w", err)
	}
	defer rows.Close()

	var entries []ClearEntry
	for rows.Next() {
		var e ClearEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Seconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestTime returns the fastest recorded clear in seconds.
// Returns 0 if no clears exist.
func (s *Store) BestTime() (float64, error) {
	var seconds sql.NullFloat64
	err := s.db.QueryRow("SELECT MIN(seconds) FROM clear_times").Scan(&seconds)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !seconds.Valid {
		return 0, nil
	}

	return seconds.Float64, nil
}

// ClearAll deletes every recorded clear time.
func (s *Store) ClearAll() error {
	_, err := s.db.Exec("DELETE FROM clear_times")
	if err != nil {
		return fmt.Errorf("storage: cannot clear records: %w", err)
	}
	return nil
}
