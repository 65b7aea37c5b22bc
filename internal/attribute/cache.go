package attribute

import (
	"sync"

	"shopsync/pkg/models"
)

type cacheKey struct {
	name string
	kind models.AttributeKind
}

// Cache is the run-scoped lookup of resolved attributes. It is created
// fresh per diff-and-deploy invocation, never evicts within a run and is
// never persisted. The resolver reads and writes through it, so everything
// it holds is exactly what the run has resolved so far. Safe for concurrent
// use; the first writer for a given name and kind wins and later Puts for
// the same key are ignored.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]models.RemoteAttribute
}

// NewCache creates an empty run-scoped cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]models.RemoteAttribute)}
}

// Get returns the resolved attribute for a name and kind, if present.
func (c *Cache) Get(name string, kind models.AttributeKind) (models.RemoteAttribute, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	attr, ok := c.entries[cacheKey{name, kind}]
	return attr, ok
}

// Put stores an attribute unless its key is already present.
func (c *Cache) Put(attr models.RemoteAttribute) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := cacheKey{attr.Name, attr.Kind}
	if _, exists := c.entries[key]; exists {
		return
	}
	c.entries[key] = attr
}

// Replace stores an attribute unconditionally. Used when an attribute's
// value set grows during the run, so later readers see the grown set.
func (c *Cache) Replace(attr models.RemoteAttribute) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{attr.Name, attr.Kind}] = attr
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
