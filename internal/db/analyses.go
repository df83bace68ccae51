package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobshield/internal/types"
)

// Find returns the stored analysis for a fingerprint if its timestamp is at
// or after since. Stale rows are filtered by the time predicate, not deleted.
func (db *DB) Find(ctx context.Context, fingerprint string, since time.Time) (*types.AnalysisResult, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT result FROM analyses WHERE fingerprint = $1 AND created_at >= $2`,
		fingerprint, since,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored analysis: %w", err)
	}
	return &result, nil
}

// Upsert stores the result as the current analysis for its fingerprint.
func (db *DB) Upsert(ctx context.Context, fingerprint string, result *types.AnalysisResult) error {
	content, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (fingerprint, result, created_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (fingerprint) DO UPDATE SET result = $2, created_at = $3`,
		fingerprint, content, result.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert analysis: %w", err)
	}
	return nil
}
