package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

const snapshotSchemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    key        TEXT PRIMARY KEY,
    value      BLOB NOT NULL,
    updated_at TEXT NOT NULL
);
`

// SQLiteStore is a BlobStore backed by a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the snapshot database at the given path.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(snapshotSchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get returns the blob stored under key, or ErrNoSnapshot.
func (s *SQLiteStore) Get(key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT value FROM snapshots WHERE key = ?", key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %q: %w", key, err)
	}
	return data, nil
}

// Put overwrites the blob stored under key.
func (s *SQLiteStore) Put(key string, data []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)",
		key, data, now,
	)
	if err != nil {
		return fmt.Errorf("writing snapshot %q: %w", key, err)
	}
	return nil
}
