package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobshield/internal/types"
)

// Get returns the cached verification verdict for a normalized company name,
// or ok=false if the entry is absent or expired.
func (db *DB) Get(ctx context.Context, key string) (types.CompanySignal, bool, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT verdict FROM verification_cache WHERE company = $1 AND expires_at > NOW()`,
		key,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.CompanySignal{}, false, nil
		}
		return types.CompanySignal{}, false, fmt.Errorf("failed to read verification cache: %w", err)
	}

	var verdict types.CompanySignal
	if err := json.Unmarshal(content, &verdict); err != nil {
		return types.CompanySignal{}, false, fmt.Errorf("failed to decode cached verdict: %w", err)
	}
	return verdict, true, nil
}

// SetWithTTL stores a verdict with an expiry. Concurrent writes for one
// company race benignly; the computation is deterministic per name.
func (db *DB) SetWithTTL(ctx context.Context, key string, value types.CompanySignal, ttl time.Duration) error {
	content, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal verdict: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO verification_cache (company, verdict, expires_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (company) DO UPDATE SET verdict = $2, expires_at = $3`,
		key, content, time.Now().Add(ttl),
	)
	if err != nil {
		return fmt.Errorf("failed to write verification cache: %w", err)
	}
	return nil
}
