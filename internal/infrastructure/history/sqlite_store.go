package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"shellrig/internal/domain"
	"shellrig/internal/pkg/filesystem"
	"shellrig/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS history_entries (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    batch_id  TEXT    NOT NULL,
    ts        INTEGER NOT NULL,
    duration  INTEGER NOT NULL,
    command   TEXT    NOT NULL,
    UNIQUE(ts, command)
);
CREATE INDEX IF NOT EXISTS idx_history_command ON history_entries(command);
`

// SQLiteStore persists imported history in ~/.shellrig/history.db.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore opens (or creates) the database and applies the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".shellrig", "history.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db, path: path}, nil
}

// Import inserts entries under one batch id. Entries already present
// (same timestamp and command) are skipped; the inserted count is returned.
func (s *SQLiteStore) Import(ctx context.Context, batchID string, entries []domain.HistoryEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO history_entries (batch_id, ts, duration, command) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, entry := range entries {
		res, err := stmt.ExecContext(ctx, batchID, entry.Timestamp.Unix(), int64(entry.Duration/time.Second), entry.Command)
		if err != nil {
			return inserted, err
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}
	if err := tx.Commit(); err != nil {
		return inserted, err
	}
	return inserted, nil
}

// Stats returns the most-used commands with their last-used time.
func (s *SQLiteStore) Stats(ctx context.Context, limit int) ([]domain.CommandStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT command, COUNT(*), MAX(ts)
		   FROM history_entries
		  GROUP BY command
		  ORDER BY COUNT(*) DESC, MAX(ts) DESC
		  LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.CommandStat
	for rows.Next() {
		var stat domain.CommandStat
		var ts int64
		if err := rows.Scan(&stat.Command, &stat.Count, &ts); err != nil {
			return nil, err
		}
		stat.LastUsed = time.Unix(ts, 0)
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

// Clear drops all imported entries.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM history_entries`)
	return err
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the backing database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
