package resolver

import (
	"sync"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/internal/schema"
)

// Cache memoizes Resolve by variant for a fixed catalog and own schema.
// Both inputs are immutable, so a cached result never goes stale.
type Cache struct {
	cat *catalog.Catalog
	own schema.Schema

	mu      sync.RWMutex
	entries map[catalog.PrimitiveID]Effective
}

// NewCache returns an empty Cache bound to cat and own.
func NewCache(cat *catalog.Catalog, own schema.Schema) *Cache {
	return &Cache{
		cat:     cat,
		own:     own,
		entries: make(map[catalog.PrimitiveID]Effective),
	}
}

// Resolve returns the effective schema for variant, computing it on first use.
// Unknown primitives are never cached.
func (c *Cache) Resolve(variant catalog.PrimitiveID) (Effective, error) {
	c.mu.RLock()
	eff, ok := c.entries[variant]
	c.mu.RUnlock()
	if ok {
		return eff, nil
	}

	eff, err := Resolve(c.cat, variant, c.own)
	if err != nil {
		return Effective{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have stored an identical value meanwhile.
	if existing, ok := c.entries[variant]; ok {
		return existing, nil
	}
	c.entries[variant] = eff
	return eff, nil
}

// Len returns the number of cached variants.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
