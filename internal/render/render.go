// Package render defines the renderer collaborator that turns a validated
// primitive, its attributes and content into an output node, along with two
// implementations: a virtual node tree and a lipgloss terminal renderer.
package render

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/internal/schema"
)

// Node is the opaque output of a Renderer.
type Node any

// Renderer produces an output node for a primitive. Implementations receive
// attributes that already conform to the effective schema of the primitive.
type Renderer interface {
	Render(ctx context.Context, id catalog.PrimitiveID, attrs Attributes, content Content) (Node, error)
}

// Func adapts an ordinary function to the Renderer interface.
type Func func(ctx context.Context, id catalog.PrimitiveID, attrs Attributes, content Content) (Node, error)

// Render calls f.
func (f Func) Render(ctx context.Context, id catalog.PrimitiveID, attrs Attributes, content Content) (Node, error) {
	return f(ctx, id, attrs, content)
}

// Content is the children payload of a construction: plain text, nested
// nodes produced by other renders, or both.
type Content struct {
	Text     string
	Children []Node
}

// Text builds text-only content.
func Text(s string) Content {
	return Content{Text: s}
}

// Clone returns a copy of c that shares no slice with it.
func (c Content) Clone() Content {
	return Content{Text: c.Text, Children: slices.Clone(c.Children)}
}

// IsEmpty reports whether the content carries nothing.
func (c Content) IsEmpty() bool {
	return c.Text == "" && len(c.Children) == 0
}

// Attributes is an immutable, validated attribute bag.
type Attributes struct {
	m    map[string]any
	keys []string
}

// NewAttributes deep-copies m into an immutable Attributes value.
func NewAttributes(m map[string]any) Attributes {
	cp := make(map[string]any, len(m))
	for k, v := range m {
		cp[k] = schema.CloneValue(v)
	}
	keys := make([]string, 0, len(cp))
	for k := range cp {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Attributes{m: cp, keys: keys}
}

// Get returns a copy of the value stored under name.
func (a Attributes) Get(name string) (any, bool) {
	v, ok := a.m[name]
	return schema.CloneValue(v), ok
}

// String returns the value under name formatted as text, or "" when absent.
func (a Attributes) String(name string) string {
	v, ok := a.m[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Bool returns the boolean stored under name, false when absent or not a bool.
func (a Attributes) Bool(name string) bool {
	b, _ := a.m[name].(bool)
	return b
}

// Keys returns the attribute names in sorted order.
func (a Attributes) Keys() []string {
	return slices.Clone(a.keys)
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a.keys)
}

// Map returns a deep copy of the attributes as a plain map.
func (a Attributes) Map() map[string]any {
	out := make(map[string]any, len(a.m))
	for k, v := range a.m {
		out[k] = schema.CloneValue(v)
	}
	return out
}
