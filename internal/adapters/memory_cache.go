package adapters

import (
	"context"
	"sync"
	"time"

	"contract-mapper/internal/plan"
	"contract-mapper/internal/ports"
)

type cacheEntry struct {
	result    *plan.Plan
	expiresAt time.Time
}

// MemorySuggestionCache is a process-local suggestion cache. A zero TTL
// keeps the entry until the process exits.
type MemorySuggestionCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewMemorySuggestionCache constructs an empty cache.
func NewMemorySuggestionCache() *MemorySuggestionCache {
	return &MemorySuggestionCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *MemorySuggestionCache) Get(_ context.Context, key string) (*plan.Plan, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()

		return nil, false, nil
	}

	return entry.result.Clone(), true, nil
}

func (c *MemorySuggestionCache) Put(_ context.Context, key string, p *plan.Plan, ttl time.Duration) error {
	entry := cacheEntry{result: p.Clone()}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()

	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemorySuggestionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

var _ ports.SuggestionCache = (*MemorySuggestionCache)(nil)
