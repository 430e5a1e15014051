package priority

import "sync"

// Cache memoizes suggestions by their normalized input key. It is unbounded,
// never evicts, and lives as long as the owning Service; nothing is persisted.
type Cache struct {
	mu   sync.RWMutex
	data map[string]Suggestion
}

// NewCache constructs an empty cache.
func NewCache() *Cache {
	return &Cache{data: make(map[string]Suggestion)}
}

// Get returns the cached suggestion for key, if present.
func (c *Cache) Get(key string) (Suggestion, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	suggestion, ok := c.data[key]
	return suggestion, ok
}

// Put stores the suggestion under key. Racing writers on the same key are
// last-writer-wins.
func (c *Cache) Put(key string, suggestion Suggestion) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = suggestion
}
