package cache

import (
	"context"
	"strconv"
	"strings"
	"sync"
)

// Cache is a keyed read-through cache with explicit invalidation. Safe for
// concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]any)}
}

// Key builds a cache key from an entity name and an optional record id,
// e.g. Key("productos") or Key("productos", 5).
func Key(entity string, id ...int64) string {
	if len(id) == 0 {
		return entity
	}
	return entity + "/" + strconv.FormatInt(id[0], 10)
}

// Invalidate drops the given keys. Unknown keys are ignored.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
}

// InvalidateEntity drops the entity's list key and every record key under it.
func (c *Cache) InvalidateEntity(entity string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key == entity || strings.HasPrefix(key, entity+"/") {
			delete(c.entries, key)
		}
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Resolve returns the cached value under key, fetching and storing it on a
// miss. A cached value of the wrong type counts as a miss and is replaced.
// Fetch errors are not cached.
func Resolve[T any](ctx context.Context, c *Cache, key string, fetch func(context.Context) (T, error)) (T, error) {
	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		if v, ok := cached.(T); ok {
			return v, nil
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
	return v, nil
}
