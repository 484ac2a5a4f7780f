package catalog

import (
	"fmt"

	"github.com/alexisbeaulieu97/polymorph/internal/schema"
)

// Nested is a resolvable entity, typically another component, that can be
// registered as a primitive. Its published schema becomes the native schema
// of the entry.
type Nested interface {
	Schema() schema.Schema
}

// Builder accumulates catalog entries before they are published.
// It is not safe for concurrent use.
type Builder struct {
	entries map[PrimitiveID]schema.Schema
	err     error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[PrimitiveID]schema.Schema)}
}

// From returns a Builder seeded with every entry of c, for deriving a new
// catalog from an existing one.
func From(c *Catalog) *Builder {
	b := NewBuilder()
	if c == nil {
		return b
	}
	for id, s := range c.entries {
		b.entries[id] = s
	}
	return b
}

// Add registers id with the given native schema. Registering the same id
// twice is an error reported by Build.
func (b *Builder) Add(id PrimitiveID, s schema.Schema) *Builder {
	if b.err != nil {
		return b
	}
	if id == "" {
		b.err = fmt.Errorf("catalog: empty primitive id")
		return b
	}
	if _, exists := b.entries[id]; exists {
		b.err = fmt.Errorf("catalog: primitive %q already registered", id)
		return b
	}
	b.entries[id] = s
	return b
}

// AddAttributes is shorthand for Add with a schema built from attrs.
func (b *Builder) AddAttributes(id PrimitiveID, attrs ...schema.Attribute) *Builder {
	if b.err != nil {
		return b
	}
	s, err := schema.New(attrs...)
	if err != nil {
		b.err = fmt.Errorf("catalog: primitive %q: %w", id, err)
		return b
	}
	return b.Add(id, s)
}

// AddNested registers a nested entity under id using its published schema.
func (b *Builder) AddNested(id PrimitiveID, n Nested) *Builder {
	if b.err != nil {
		return b
	}
	if n == nil {
		b.err = fmt.Errorf("catalog: nested primitive %q is nil", id)
		return b
	}
	return b.Add(id, n.Schema())
}

// Build publishes the accumulated entries as an immutable Catalog.
func (b *Builder) Build() (*Catalog, error) {
	if b.err != nil {
		return nil, b.err
	}
	return Load(b.entries)
}
