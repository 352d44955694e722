package caselaw

import (
	"sync"
	"time"

	"github.com/nyaysetu/legalchat/internal/models"
)

// cacheEntry pairs cached results with their insertion time.
type cacheEntry struct {
	results    []models.CaseLaw
	insertedAt time.Time
}

// cache is a bounded map of recent search results keyed by query string.
// Entries expire after an absolute TTL checked on read; when the size cap
// is exceeded the oldest entry is evicted.
type cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	maxSize int
	ttl     time.Duration
	now     func() time.Time
}

func newCache(maxSize int, ttl time.Duration) *cache {
	if maxSize <= 0 {
		maxSize = 128
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &cache{
		entries: make(map[string]cacheEntry),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *cache) get(key string) ([]models.CaseLaw, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.insertedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.results, true
}

func (c *cache) put(key string, results []models.CaseLaw) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictOldestLocked()
	}
	c.entries[key] = cacheEntry{results: results, insertedAt: c.now()}
}

func (c *cache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for k, e := range c.entries {
		if first || e.insertedAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.insertedAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
