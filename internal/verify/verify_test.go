package verify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobshield/internal/types"
)

// spyCache records cache traffic and can be forced to fail.
type spyCache struct {
	entries map[string]types.CompanySignal
	gets    int
	sets    int
	failGet bool
	failSet bool
}

func newSpyCache() *spyCache {
	return &spyCache{entries: make(map[string]types.CompanySignal)}
}

func (c *spyCache) Get(_ context.Context, key string) (types.CompanySignal, bool, error) {
	c.gets++
	if c.failGet {
		return types.CompanySignal{}, false, errors.New("cache down")
	}
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *spyCache) SetWithTTL(_ context.Context, key string, value types.CompanySignal, _ time.Duration) error {
	c.sets++
	if c.failSet {
		return errors.New("cache down")
	}
	c.entries[key] = value
	return nil
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name     string
		company  string
		validate func(*testing.T, types.CompanySignal)
	}{
		{
			name:    "Generic staffing-style name",
			company: "Hiring Now LLC",
			validate: func(t *testing.T, signal types.CompanySignal) {
				assert.True(t, signal.IsGeneric)
				assert.False(t, signal.Verified)
				// "LLC" is a legitimacy marker, so confidence stays high.
				assert.Equal(t, 0.7, signal.Confidence)
			},
		},
		{
			name:    "Incorporated entity with markers",
			company: "Acme Corp. (NYSE: ACM), founded in 1998, headquarters in Austin, 500 employees",
			validate: func(t *testing.T, signal types.CompanySignal) {
				assert.True(t, signal.Verified)
				assert.False(t, signal.IsGeneric)
				assert.Equal(t, 0.7, signal.Confidence)
			},
		},
		{
			name:    "Plain name with no markers",
			company: "Blue River Bakery",
			validate: func(t *testing.T, signal types.CompanySignal) {
				assert.False(t, signal.Verified)
				assert.False(t, signal.IsGeneric)
				assert.Equal(t, 0.3, signal.Confidence)
			},
		},
		{
			name:    "Online jobs name",
			company: "Best Online Jobs Portal",
			validate: func(t *testing.T, signal types.CompanySignal) {
				assert.True(t, signal.IsGeneric)
				assert.False(t, signal.Verified)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := NewVerifier(newSpyCache())
			tt.validate(t, verifier.Verify(context.Background(), tt.company))
		})
	}
}

func TestVerifyEmptyNameSkipsCache(t *testing.T) {
	cache := newSpyCache()
	verifier := NewVerifier(cache)

	signal := verifier.Verify(context.Background(), "   ")

	assert.False(t, signal.Verified)
	assert.Zero(t, signal.Confidence)
	assert.Zero(t, cache.gets, "empty name must not read the cache")
	assert.Zero(t, cache.sets, "empty name must not write the cache")
}

func TestVerifyUsesCache(t *testing.T) {
	cache := newSpyCache()
	verifier := NewVerifier(cache)

	first := verifier.Verify(context.Background(), "Acme Inc.")
	second := verifier.Verify(context.Background(), "ACME   Inc.")

	assert.Equal(t, first, second, "normalized names share one cache entry")
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.sets, "second lookup must be a cache hit")
}

func TestVerifyDegradesOnCacheFailure(t *testing.T) {
	cache := newSpyCache()
	cache.failGet = true
	cache.failSet = true
	verifier := NewVerifier(cache)

	signal := verifier.Verify(context.Background(), "Acme Inc.")

	require.True(t, signal.Verified, "verdict must be computed even with the cache down")
	assert.Equal(t, 0.7, signal.Confidence)
}
