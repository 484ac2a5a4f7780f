package catalog

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/alexisbeaulieu97/polymorph/internal/schema"
	polyerrors "github.com/alexisbeaulieu97/polymorph/pkg/errors"
)

// PrimitiveID identifies a renderable primitive: a tag-like element or a
// nested component registered under a name.
type PrimitiveID string

// String returns the string representation of the identifier.
func (id PrimitiveID) String() string {
	return string(id)
}

// Catalog is the closed set of primitives and their native attribute
// schemas. A Catalog never changes after it is built; reconfiguration means
// building a new one.
type Catalog struct {
	entries map[PrimitiveID]schema.Schema
	ids     []PrimitiveID
}

// Load bulk-loads entries into a new Catalog.
func Load(entries map[PrimitiveID]schema.Schema) (*Catalog, error) {
	m := make(map[PrimitiveID]schema.Schema, len(entries))
	for id, s := range entries {
		if id == "" {
			return nil, fmt.Errorf("catalog: empty primitive id")
		}
		m[id] = s
	}

	ids := slices.Collect(maps.Keys(m))
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return &Catalog{entries: m, ids: ids}, nil
}

// Lookup returns the native schema registered for id.
func (c *Catalog) Lookup(id PrimitiveID) (schema.Schema, error) {
	if c != nil {
		if s, ok := c.entries[id]; ok {
			return s, nil
		}
	}
	return schema.Schema{}, polyerrors.NewUnknownPrimitiveError(string(id))
}

// IsMember reports whether id is registered. It never fails.
func (c *Catalog) IsMember(id PrimitiveID) bool {
	if c == nil {
		return false
	}
	_, ok := c.entries[id]
	return ok
}

// IDs returns the registered identifiers in sorted order.
func (c *Catalog) IDs() []PrimitiveID {
	if c == nil {
		return nil
	}
	return slices.Clone(c.ids)
}

// Len returns the number of registered primitives.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}
