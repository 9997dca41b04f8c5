// Package sqlite implements the driven ports on an in-memory SQLite database.
// The database lives only as long as the DB value; nothing is written to disk.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite"
)

// DB holds the connection pool for one named in-memory database.
// Writer and Reader point at the same pool: an in-memory database disappears
// when its last connection closes, so the pool is pinned to a single
// long-lived connection and every statement is serialized through it.
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
	name   string
}

// NewDB opens a private in-memory database identified by name. Two DBs opened
// with the same name in one process share data; use distinct names for
// isolation.
func NewDB(ctx context.Context, name string) (*DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)",
		url.PathEscape(name),
	)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	pool.SetMaxOpenConns(1)
	pool.SetMaxIdleConns(1)
	pool.SetConnMaxLifetime(0)
	pool.SetConnMaxIdleTime(0)

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{
		Writer: pool,
		Reader: pool,
		name:   name,
	}, nil
}

// Name returns the in-memory database name.
func (db *DB) Name() string {
	return db.name
}

// Close releases the connection, discarding all data.
func (db *DB) Close() error {
	if err := db.Writer.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
