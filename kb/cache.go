package kb

import (
	"context"
	"sync"
	"time"
)

// ConditionCache caches the full condition listing with a TTL so the fuzzy
// and suggestion tiers don't hit the database on every unresolved query.
// It is owned by the serving layer; the write path calls Invalidate after an
// admin edit rather than waiting for expiry.
type ConditionCache struct {
	store Store
	ttl   time.Duration

	mu        sync.Mutex
	entries   []Condition
	fetchedAt time.Time
}

func NewConditionCache(store Store, ttl time.Duration) *ConditionCache {
	return &ConditionCache{store: store, ttl: ttl}
}

// GetOrRefresh returns the cached listing, refreshing it from the store when
// the TTL has lapsed. A refresh failure with a warm cache serves the stale
// listing; resolution degrading beats failing.
func (c *ConditionCache) GetOrRefresh(ctx context.Context) ([]Condition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.entries, nil
	}

	entries, err := c.store.AllConditions(ctx)
	if err != nil {
		if c.entries != nil {
			return c.entries, nil
		}
		return nil, err
	}

	c.entries = entries
	c.fetchedAt = time.Now()
	return entries, nil
}

// Invalidate drops the cached listing. Called from the admin write path.
func (c *ConditionCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.fetchedAt = time.Time{}
}
