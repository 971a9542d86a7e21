// Package rules matches queue events against configured action rules.
package rules

import (
	"sync"
	"time"

	"github.com/reflexhq/reflex/ent"
)

// cacheEntry holds a cached rule set with a timestamp for TTL
// expiration.
type cacheEntry struct {
	rules     []*ent.ActionRule
	fetchedAt time.Time
}

// Cache is a thread-safe in-memory cache of trigger lookups with TTL
// expiration. Expired entries are cleaned up lazily on Get() — no
// background goroutine. Rule writes bust the whole cache; cross-pod
// invalidation arrives via the rules NOTIFY channel.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

// NewCache creates a new cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// Get returns a cached rule set if present and not expired.
func (c *Cache) Get(key string) ([]*ent.ActionRule, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Expired — clean up lazily.
		// Re-check under write lock: a concurrent Set() may have replaced
		// the entry with a fresh one between RUnlock and Lock.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.rules, true
}

// Set stores a rule set with the current timestamp.
func (c *Cache) Set(key string, rules []*ent.ActionRule) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{
		rules:     rules,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}

// Invalidate drops every entry. Called on any rule write, locally and
// on NOTIFY from other pods.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}
