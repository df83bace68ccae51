package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobshield/internal/types"
)

// Increment bumps the named counter for a fingerprint and returns the
// updated counts. Counters are informational and never feed into scoring.
func (db *DB) Increment(ctx context.Context, fingerprint, kind string) (types.ReportCounts, error) {
	var column string
	switch kind {
	case "scam":
		column = "scam_reports"
	case "false_positive":
		column = "false_positives"
	default:
		return types.ReportCounts{}, fmt.Errorf("unknown report kind: %s", kind)
	}

	counts := types.ReportCounts{Fingerprint: fingerprint}
	err := db.pool.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO posting_reports (id, fingerprint, %s)
		 VALUES ($1, $2, 1)
		 ON CONFLICT (fingerprint) DO UPDATE SET %s = posting_reports.%s + 1, updated_at = NOW()
		 RETURNING scam_reports, false_positives`, column, column, column),
		uuid.New(), fingerprint,
	).Scan(&counts.ScamReports, &counts.FalsePositives)
	if err != nil {
		return types.ReportCounts{}, fmt.Errorf("failed to increment report counter: %w", err)
	}
	return counts, nil
}

// GetReport returns the report counters for a fingerprint, zero-valued if
// the posting was never reported.
func (db *DB) GetReport(ctx context.Context, fingerprint string) (types.ReportCounts, error) {
	counts := types.ReportCounts{Fingerprint: fingerprint}
	err := db.pool.QueryRow(ctx,
		`SELECT scam_reports, false_positives FROM posting_reports WHERE fingerprint = $1`,
		fingerprint,
	).Scan(&counts.ScamReports, &counts.FalsePositives)
	if err != nil {
		if err == pgx.ErrNoRows {
			return counts, nil
		}
		return types.ReportCounts{}, fmt.Errorf("failed to get report counters: %w", err)
	}
	return counts, nil
}
