// Package postgres implements kv.Store on PostgreSQL via the pgx
// stdlib driver. Intended for deployments that already run Postgres;
// the sqlite driver is the default.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/studykeep/studykeep/internal/kv"
)

const ddl = `CREATE TABLE IF NOT EXISTS blobs (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

type pgStore struct {
	db *sql.DB
}

// Open opens a PostgreSQL connection and verifies connectivity.
func Open(dsn string) (kv.Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wires a store over an existing connection.
func NewWithDB(db *sql.DB) (kv.Store, error) {
	if _, err := db.Exec(ddl); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &pgStore{db: db}, nil
}

func (s *pgStore) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	row := s.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = $1`, key)
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (s *pgStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO blobs (key, value) VALUES ($1,$2)
         ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	return err
}

func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *pgStore) Close() error { return s.db.Close() }
