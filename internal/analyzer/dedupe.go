package analyzer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/jobshield/internal/types"
)

// FreshnessWindow is how long a stored result stays current. Within the
// window, identical postings always yield the same recorded verdict even if
// re-analysis would produce a slightly different external answer.
const FreshnessWindow = 24 * time.Hour

// ResultIndex is the outbound contract for the recent-analysis store.
// Staleness is decided by the since predicate at lookup time; stale entries
// are never hidden from the store itself, only from callers.
type ResultIndex interface {
	Find(ctx context.Context, fingerprint string, since time.Time) (*types.AnalysisResult, error)
	Upsert(ctx context.Context, fingerprint string, result *types.AnalysisResult) error
}

// Service is the public entry point of the pipeline: it deduplicates
// analyses by posting fingerprint before invoking the orchestrator.
type Service struct {
	orchestrator *Orchestrator
	index        ResultIndex
}

// NewService creates a Service over the given orchestrator and index.
func NewService(orchestrator *Orchestrator, index ResultIndex) *Service {
	return &Service{orchestrator: orchestrator, index: index}
}

// GetOrAnalyze returns the current result for the posting's fingerprint,
// computing and persisting a fresh one only when no result from the last 24
// hours exists. An unavailable index degrades to recomputation, never to
// request failure.
//
// The check-then-act here is not atomic: two concurrent calls for one
// fingerprint may both analyze and both write. The two results are
// behaviorally equivalent, so last write wins.
func (s *Service) GetOrAnalyze(ctx context.Context, posting *types.JobPosting) (*types.AnalysisResult, error) {
	if posting == nil {
		return nil, fmt.Errorf("posting is required")
	}

	fingerprint := posting.Fingerprint()
	since := time.Now().Add(-FreshnessWindow)

	cached, err := s.index.Find(ctx, fingerprint, since)
	if err != nil {
		log.Printf("Warning: recent-analysis index lookup failed for %s: %v", fingerprint, err)
	} else if cached != nil {
		return cached, nil
	}

	result := s.orchestrator.Analyze(ctx, posting)

	if err := s.index.Upsert(ctx, fingerprint, result); err != nil {
		log.Printf("Warning: failed to persist analysis for %s: %v", fingerprint, err)
	}

	return result, nil
}
