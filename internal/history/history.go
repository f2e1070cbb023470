// Package history records clean runs in a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded clean that changed content.
type Run struct {
	ID           int64
	DocID        string
	Path         string
	Op           string // "document", "block", "selection"
	LinesRemoved int
	BytesBefore  int
	BytesAfter   int
	Timestamp    time.Time
}

// Database is the SQLite history handle.
type Database struct {
	db *sql.DB
}

// DefaultPath returns the default history database path
// (~/.local/state/preen/history.db, falling back to the user cache dir).
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "preen", "history.db")
	}
	if cacheDir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cacheDir, "preen", "history.db")
	}
	return filepath.Join(".", "history.db")
}

// Open opens or creates the history database at path.
func Open(path string) (*Database, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	d := &Database{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return d, nil
}

func (d *Database) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		doc_id        TEXT NOT NULL,
		path          TEXT NOT NULL,
		op            TEXT NOT NULL,
		lines_removed INTEGER NOT NULL,
		bytes_before  INTEGER NOT NULL,
		bytes_after   INTEGER NOT NULL,
		ts            TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_doc_id ON runs(doc_id);
	`
	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return nil
}

// Close closes the database.
func (d *Database) Close() error {
	return d.db.Close()
}

// Record appends one run. The timestamp defaults to now.
func (d *Database) Record(run Run) error {
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now().UTC()
	}

	_, err := d.db.Exec(`
		INSERT INTO runs (doc_id, path, op, lines_removed, bytes_before, bytes_after, ts)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.DocID, run.Path, run.Op, run.LinesRemoved,
		run.BytesBefore, run.BytesAfter,
		run.Timestamp.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// List returns runs, newest first. An empty docID matches all documents.
// limit <= 0 means no limit.
func (d *Database) List(docID string, limit int) ([]Run, error) {
	query := `
		SELECT id, doc_id, path, op, lines_removed, bytes_before, bytes_after, ts
		FROM runs`
	args := []any{}
	if docID != "" {
		query += " WHERE doc_id = ?"
		args = append(args, docID)
	}
	query += " ORDER BY id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var ts string
		if err := rows.Scan(&run.ID, &run.DocID, &run.Path, &run.Op,
			&run.LinesRemoved, &run.BytesBefore, &run.BytesAfter, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			run.Timestamp = parsed
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
