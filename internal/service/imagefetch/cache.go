package imagefetch

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// cache is a bounded in-memory byte cache keyed by a hash of the
// sanitized URL. When full, the oldest entry is evicted. Scoped to one
// Service instance, it is not a durable cache.
type cache struct {
	mu      sync.Mutex
	entries map[string][]byte
	order   []string
	max     int
}

func newCache(maxEntries int) *cache {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &cache{
		entries: make(map[string][]byte, maxEntries),
		max:     maxEntries,
	}
}

func cacheKey(sanitizedURL string) string {
	sum := sha256.Sum256([]byte(sanitizedURL))
	return hex.EncodeToString(sum[:])
}

func (c *cache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	return data, ok
}

func (c *cache) put(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		return
	}
	if len(c.order) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = data
	c.order = append(c.order, key)
}

func (c *cache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte, c.max)
	c.order = nil
}

func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
