// Package storage provides SQLite-based persistence for level results.
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

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry represents a single completed-level record.
// Lower move counts are better.
type ResultEntry struct {
	ID        int64
	SetID     string
	Level     int
	Moves     int
	Pushes    int
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			set_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			pushes INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_set ON results(set_id);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(set_id, level, moves ASC);
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

// SaveResult records a completed level for the given set.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(setID string, level, moves, pushes int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO results (set_id, level, moves, pushes) VALUES (?, ?, ?, ?)",
		setID, level, moves, pushes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestMoves returns the lowest move count recorded for the given level.
// Returns false if the level has never been completed.
func (s *Store) BestMoves(setID string, level int) (int, bool, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM results WHERE set_id = ? AND level = ?",
		setID, level,
	).Scan(&moves)

	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, false, nil
	}

	return int(moves.Int64), true, nil
}

// BestPerLevel returns the lowest move count for every completed level
// of the given set, keyed by level index.
func (s *Store) BestPerLevel(setID string) (map[int]int, error) {
	rows, err := s.db.Query(
		`SELECT level, MIN(moves)
		 FROM results
		 WHERE set_id = ?
		 GROUP BY level`,
		setID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	best := make(map[int]int)
	for rows.Next() {
		var level, moves int
		if err := rows.Scan(&level, &moves); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		best[level] = moves
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return best, nil
}

// Results retrieves all records for the given level, best first.
func (s *Store) Results(setID string, level int) ([]ResultEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, set_id, level, moves, pushes, created_at
		 FROM results
		 WHERE set_id = ? AND level = ?
		 ORDER BY moves ASC`,
		setID, level,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SetID, &e.Level, &e.Moves, &e.Pushes, &createdAt); err != nil {
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

// SolvedCount returns how many distinct levels of the set have been completed.
func (s *Store) SolvedCount(setID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(DISTINCT level) FROM results WHERE set_id = ?",
		setID,
	).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query solved count: %w", err)
	}

	return count, nil
}

// ClearResults deletes all records for the given set.
func (s *Store) ClearResults(setID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE set_id = ?", setID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// SetStats contains aggregated statistics for a level set.
type SetStats struct {
	SetID        string
	Attempts     int
	SolvedLevels int
	TotalMoves   int64
	LastPlayed   time.Time
}

// GetSetStats retrieves aggregated statistics for a specific level set.
func (s *Store) GetSetStats(setID string) (*SetStats, error) {
	stats := &SetStats{SetID: setID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT level), COALESCE(SUM(moves), 0)
		 FROM results WHERE set_id = ?`,
		setID,
	).Scan(&stats.Attempts, &stats.SolvedLevels, &stats.TotalMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get set stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE set_id = ? ORDER BY created_at DESC LIMIT 1`,
		setID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		switch v := lastPlayed.(type) {
		case time.Time:
			stats.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastPlayed = parsed
			}
		}
	}

	return stats, nil
}
