package providers

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	contractx "github.com/finwell-ai/advisor/agent/contract"
)

// Cached wraps a provider with a TTL cache and request coalescing:
// concurrent fetches for the same subject share one upstream call, and a
// fresh result is served from memory until it expires. Failed results are
// never cached so a transient upstream error clears on the next query.
type Cached struct {
	inner contractx.Provider
	ttl   time.Duration
	now   func() time.Time

	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result    contractx.ProviderResult
	expiresAt time.Time
}

func NewCached(inner contractx.Provider, ttl time.Duration) *Cached {
	return &Cached{
		inner:   inner,
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]cacheEntry{},
	}
}

func (c *Cached) SourceID() string { return c.inner.SourceID() }

func (c *Cached) Applicable(s contractx.Subject) bool { return c.inner.Applicable(s) }

func (c *Cached) Fetch(ctx context.Context, s contractx.Subject) contractx.ProviderResult {
	key := c.key(s)

	if result, ok := c.lookup(key); ok {
		return result
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		if result, ok := c.lookup(key); ok {
			return result, nil
		}
		result := c.inner.Fetch(ctx, s)
		if result.Status != contractx.StatusFailed {
			c.store(key, result)
		}
		return result, nil
	})
	return v.(contractx.ProviderResult)
}

func (c *Cached) key(s contractx.Subject) string {
	parts := []string{
		c.inner.SourceID(),
		strings.ToLower(s.Symbol),
		strings.ToLower(s.CanonicalID),
		s.WalletAddress,
		strings.ToLower(strings.Join(s.Symptoms, ",")),
	}
	return strings.Join(parts, "|")
}

func (c *Cached) lookup(key string) (contractx.ProviderResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiresAt) {
		return contractx.ProviderResult{}, false
	}
	return entry.result, true
}

func (c *Cached) store(key string, result contractx.ProviderResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{result: result, expiresAt: c.now().Add(c.ttl)}
}
