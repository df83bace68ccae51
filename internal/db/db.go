// Package db provides PostgreSQL-backed implementations of the pipeline's
// store contracts: the recent-analysis index, the verification cache, and
// the informational report counters.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Setup creates the tables this service needs if they do not exist yet.
func (db *DB) Setup(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS analyses (
		fingerprint TEXT PRIMARY KEY,
		result      JSONB NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS verification_cache (
		company    TEXT PRIMARY KEY,
		verdict    JSONB NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS posting_reports (
		id              UUID PRIMARY KEY,
		fingerprint     TEXT UNIQUE NOT NULL,
		scam_reports    INT NOT NULL DEFAULT 0,
		false_positives INT NOT NULL DEFAULT 0,
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
