// Package verify classifies employer names as verified or suspicious, backed
// by a TTL cache so repeated lookups for the same employer are not recomputed.
package verify

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/jobshield/internal/types"
)

// CacheTTL is how long a verification verdict stays valid. Employer
// legitimacy changes slowly, so staleness risk is low relative to lookup cost.
const CacheTTL = 24 * time.Hour

// CacheStore is the outbound contract for the verification cache. A store
// failure must never abort verification; the verifier degrades to an
// uncached computation.
type CacheStore interface {
	// Get returns the cached verdict for a normalized company name, or
	// ok=false if absent or expired.
	Get(ctx context.Context, key string) (types.CompanySignal, bool, error)
	// SetWithTTL stores a verdict with an expiry. Concurrent writes for the
	// same key may race; last write wins, which is acceptable because the
	// computation is deterministic for a fixed name.
	SetWithTTL(ctx context.Context, key string, value types.CompanySignal, ttl time.Duration) error
}

// genericPatterns match staffing-agency and "hiring now"-style names that
// carry no employer identity.
var genericPatterns = []*regexp.Regexp{
	regexp.MustCompile(`hiring\s*now`),
	regexp.MustCompile(`(online|remote)\s*jobs?`),
	regexp.MustCompile(`staffing|recruiters?|recruiting|talent\s*(agency|group|solutions)`),
	regexp.MustCompile(`^(confidential|private|undisclosed)`),
	regexp.MustCompile(`work\s*(from|at)\s*home`),
	regexp.MustCompile(`career\s*(center|hub|portal)`),
}

// legitimacyPatterns match markers suggestive of a real incorporated entity.
var legitimacyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\.com\b`),
	regexp.MustCompile(`\b(inc|llc|ltd|corp|corporation|gmbh|plc)\b\.?`),
	regexp.MustCompile(`founded\s*in\s*\d{4}`),
	regexp.MustCompile(`headquarters?`),
	regexp.MustCompile(`\d+\s*employees`),
	regexp.MustCompile(`\b(nyse|nasdaq)\b`),
}

// Verifier computes employer legitimacy verdicts through a read-through cache.
type Verifier struct {
	cache CacheStore
}

// NewVerifier creates a Verifier backed by the given cache store.
func NewVerifier(cache CacheStore) *Verifier {
	return &Verifier{cache: cache}
}

// Verify returns the legitimacy verdict for an employer name. An empty name
// yields an unverified zero-confidence verdict without touching the cache.
func (v *Verifier) Verify(ctx context.Context, company string) types.CompanySignal {
	name := normalizeName(company)
	if name == "" {
		return types.CompanySignal{Verified: false, Confidence: 0}
	}

	if cached, ok, err := v.cache.Get(ctx, name); err != nil {
		log.Printf("Warning: verification cache read failed for %q: %v", name, err)
	} else if ok {
		return cached
	}

	verdict := classifyName(name)

	if err := v.cache.SetWithTTL(ctx, name, verdict, CacheTTL); err != nil {
		// Degrade, don't fail: the verdict is still returned uncached.
		log.Printf("Warning: verification cache write failed for %q: %v", name, err)
	}

	return verdict
}

// classifyName computes the verdict for a normalized employer name.
func classifyName(name string) types.CompanySignal {
	isGeneric := matchesAny(genericPatterns, name)
	hasLegit := matchesAny(legitimacyPatterns, name)

	confidence := 0.3
	if hasLegit {
		confidence = 0.7
	}

	return types.CompanySignal{
		Verified:   !isGeneric && hasLegit,
		Confidence: confidence,
		IsGeneric:  isGeneric,
	}
}

func matchesAny(patterns []*regexp.Regexp, name string) bool {
	for _, p := range patterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}

// normalizeName lowercases and collapses whitespace so cache keys are stable
// across cosmetic differences.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
