// Package cache provides caching implementations for upstream fetch results.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"econ_backend/internal/feature/indicators/domain/entity"
)

// SeriesCache memoizes provider fetch results keyed by request identity,
// bounding upstream call volume within a session. The fetch itself is
// passed in as a capability, so the cache stays provider-agnostic.
//
// Entries expire after a fixed TTL; expiry is lazy (checked on read,
// no background sweeper). Bounded memory relies on the small fixed set
// of (country x indicator) combinations, not on an eviction policy.
// When Redis is configured the cache is shared across processes;
// otherwise an in-process map takes over with the same contract.
type SeriesCache struct {
	rdb       *redis.Client
	ttl       time.Duration
	namespace string

	mu    sync.Mutex
	local map[string]localEntry
	now   func() time.Time
}

type localEntry struct {
	raw       entity.RawSeries
	createdAt time.Time
}

// NewSeriesCache creates a SeriesCache. rdb may be nil, in which case
// the in-process store is used. If ttl is 0 it defaults to 1 hour.
// If namespace is empty it uses "indicators".
func NewSeriesCache(rdb *redis.Client, ttl time.Duration, namespace string) *SeriesCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if namespace == "" {
		namespace = "indicators"
	}
	return &SeriesCache{
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		local:     make(map[string]localEntry),
		now:       time.Now,
	}
}

// GetOrFetch returns the cached result for key when its age is below
// the TTL; otherwise it invokes fetch, stores the result with the
// current timestamp, and returns it. Fetch errors are returned to the
// caller and nothing is stored. Concurrent calls on distinct keys do
// not interfere; concurrent calls on the same key may both fetch, each
// independently populating the cache.
func (c *SeriesCache) GetOrFetch(ctx context.Context, key string, fetch func(context.Context) (entity.RawSeries, error)) (entity.RawSeries, error) {
	if c.rdb == nil {
		return c.getOrFetchLocal(ctx, key, fetch)
	}

	k := c.cacheKey(key)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, k).Bytes(); err == nil && len(b) > 0 {
		var out entity.RawSeries
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, k).Err()
	}

	// 2) Fetch from upstream
	out, err := fetch(ctx)
	if err != nil {
		return entity.RawSeries{}, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, k, b, c.ttl).Err()
	}

	return out, nil
}

// getOrFetchLocal is the in-process variant. The lock is released while
// fetch runs so distinct keys never wait on each other.
func (c *SeriesCache) getOrFetchLocal(ctx context.Context, key string, fetch func(context.Context) (entity.RawSeries, error)) (entity.RawSeries, error) {
	c.mu.Lock()
	if e, ok := c.local[key]; ok && c.now().Sub(e.createdAt) < c.ttl {
		c.mu.Unlock()
		return e.raw, nil
	}
	c.mu.Unlock()

	out, err := fetch(ctx)
	if err != nil {
		return entity.RawSeries{}, err
	}

	c.mu.Lock()
	c.local[key] = localEntry{raw: out, createdAt: c.now()}
	c.mu.Unlock()
	return out, nil
}

// cacheKey prefixes the request key with the cache namespace.
func (c *SeriesCache) cacheKey(key string) string {
	return c.namespace + ":" + safe(key)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}
