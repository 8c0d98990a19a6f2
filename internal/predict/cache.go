package predict

import (
	"sync"
	"time"

	"github.com/kennonjarvis-debug/JARVIS-AI/pkg/models"
)

const (
	// DefaultTTL is how long a cached prediction stays valid.
	DefaultTTL = 300 * time.Second
	// keyContextLen is how much of the context participates in the cache key.
	keyContextLen = 50
)

type cacheEntry struct {
	prediction models.MemoryPrediction
	storedAt   time.Time
}

// Cache memoizes memory-backed predictions per user and context prefix.
// Entries expire lazily: an expired entry is discarded on the read that
// finds it, never by a background sweeper.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCache returns a cache with the given TTL. A non-positive TTL falls back
// to DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetClock replaces the cache's time source. Tests use this to control expiry.
func (c *Cache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Key builds the cache key from a user ID and the leading part of a context.
// Two contexts that agree on their first 50 characters share an entry.
func Key(userID, context string) string {
	runes := []rune(context)
	if len(runes) > keyContextLen {
		runes = runes[:keyContextLen]
	}
	return userID + ":" + string(runes)
}

// Get returns the cached prediction for the key if it is still fresh.
func (c *Cache) Get(key string) (models.MemoryPrediction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return models.MemoryPrediction{}, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return models.MemoryPrediction{}, false
	}
	return entry.prediction, true
}

// Put stores a prediction under the key, replacing any existing entry.
func (c *Cache) Put(key string, prediction models.MemoryPrediction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{prediction: prediction, storedAt: c.now()}
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len reports the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
