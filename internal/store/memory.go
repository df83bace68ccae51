// Package store provides in-memory implementations of the pipeline's store
// contracts. They serve deployments without a database and tests; the
// Postgres-backed equivalents live in internal/db.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/jonathan/jobshield/internal/types"
)

// MemoryCache is a TTL keyed cache for verification verdicts. Expired
// entries are invalidated by a read-time predicate, never eagerly swept.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     types.CompanySignal
	expiresAt time.Time
}

// NewMemoryCache creates an empty verification cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]cacheEntry)}
}

// Get returns the cached verdict if present and not expired.
func (c *MemoryCache) Get(_ context.Context, key string) (types.CompanySignal, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return types.CompanySignal{}, false, nil
	}
	return entry.value, true, nil
}

// SetWithTTL stores a verdict with an expiry. Last write wins.
func (c *MemoryCache) SetWithTTL(_ context.Context, key string, value types.CompanySignal, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

// MemoryIndex holds the most recent analysis result per posting fingerprint.
type MemoryIndex struct {
	mu      sync.RWMutex
	results map[string]*types.AnalysisResult
}

// NewMemoryIndex creates an empty recent-analysis index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{results: make(map[string]*types.AnalysisResult)}
}

// Find returns the stored result for a fingerprint if its timestamp is at or
// after since. Older entries are treated as absent but are not removed.
func (i *MemoryIndex) Find(_ context.Context, fingerprint string, since time.Time) (*types.AnalysisResult, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	result, ok := i.results[fingerprint]
	if !ok || result.Timestamp.Before(since) {
		return nil, nil
	}
	return result, nil
}

// Upsert stores the result as the current one for its fingerprint.
func (i *MemoryIndex) Upsert(_ context.Context, fingerprint string, result *types.AnalysisResult) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.results[fingerprint] = result
	return nil
}

// MemoryReports tracks informational report counters per fingerprint.
type MemoryReports struct {
	mu     sync.Mutex
	counts map[string]*types.ReportCounts
}

// NewMemoryReports creates an empty report counter store.
func NewMemoryReports() *MemoryReports {
	return &MemoryReports{counts: make(map[string]*types.ReportCounts)}
}

// Increment bumps the named counter for a fingerprint.
func (r *MemoryReports) Increment(_ context.Context, fingerprint, kind string) (types.ReportCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts, ok := r.counts[fingerprint]
	if !ok {
		counts = &types.ReportCounts{Fingerprint: fingerprint}
		r.counts[fingerprint] = counts
	}
	switch kind {
	case "scam":
		counts.ScamReports++
	case "false_positive":
		counts.FalsePositives++
	}
	return *counts, nil
}

// GetReport returns the counters for a fingerprint, zero-valued if never
// reported.
func (r *MemoryReports) GetReport(_ context.Context, fingerprint string) (types.ReportCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if counts, ok := r.counts[fingerprint]; ok {
		return *counts, nil
	}
	return types.ReportCounts{Fingerprint: fingerprint}, nil
}
