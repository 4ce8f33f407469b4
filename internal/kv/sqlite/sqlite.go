// Package sqlite implements kv.Store on a local SQLite file via the
// pure-Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/studykeep/studykeep/internal/kv"
)

const ddl = `CREATE TABLE IF NOT EXISTS Blobs (
    Key   TEXT PRIMARY KEY,
    Value TEXT NOT NULL
)`

type sqliteStore struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database at the given path, enables
// WAL journal mode and ensures the blob table exists.
func Open(path string) (kv.Store, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wires a store over an existing connection (used by tests
// and the factory).
func NewWithDB(db *sql.DB) (kv.Store, error) {
	if _, err := db.Exec(ddl); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	row := s.db.QueryRowContext(ctx, `SELECT Value FROM Blobs WHERE Key = ?`, key)
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO Blobs (Key, Value) VALUES (?,?)
         ON CONFLICT(Key) DO UPDATE SET Value = excluded.Value`, key, value)
	return err
}

func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqliteStore) Close() error { return s.db.Close() }
