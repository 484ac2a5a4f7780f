// Package resolver computes the effective attribute schema of a component
// for one variant.
//
// The effective schema is the component's own options plus the native
// attributes of the selected primitive, minus every native attribute whose
// name an own option redefines:
//
//	effective(variant) = own ∪ (native(variant) − keys(own))
//
// Names match exactly and case-sensitively. Each attribute keeps the
// required flag of the schema that contributed it.
package resolver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/internal/schema"
)

// Origin records which schema contributed an attribute.
type Origin int

const (
	OriginNative Origin = iota
	OriginOwn
)

// String returns the string representation of the origin.
func (o Origin) String() string {
	if o == OriginOwn {
		return "own"
	}
	return "native"
}

// Effective is the merged schema legal for one variant.
type Effective struct {
	Variant catalog.PrimitiveID
	Schema  schema.Schema
	// Shadowed lists native attribute names replaced by own options, sorted.
	Shadowed []string

	own schema.Schema
}

// Origin reports which schema contributed name. The boolean is false when
// name is not part of the effective schema.
func (e Effective) Origin(name string) (Origin, bool) {
	if !e.Schema.Has(name) {
		return OriginNative, false
	}
	if e.own.Has(name) {
		return OriginOwn, true
	}
	return OriginNative, true
}

// Equal reports whether two effective schemas are structurally identical.
func (e Effective) Equal(other Effective) bool {
	return e.Variant == other.Variant &&
		e.Schema.Equal(other.Schema) &&
		slices.Equal(e.Shadowed, other.Shadowed)
}

// Resolve computes the effective schema of variant for a component whose own
// options are described by own. It fails with an UnknownPrimitiveError when
// variant is not in cat, before any schema work is done.
func Resolve(cat *catalog.Catalog, variant catalog.PrimitiveID, own schema.Schema) (Effective, error) {
	native, err := cat.Lookup(variant)
	if err != nil {
		return Effective{}, err
	}

	merged, shadowed := schema.Merge(own, native)
	return Effective{
		Variant:  variant,
		Schema:   merged,
		Shadowed: shadowed,
		own:      own,
	}, nil
}

// Describe renders the effective schema one attribute per line, sorted by
// name, e.g. "href: string required (native)".
func (e Effective) Describe() string {
	var b strings.Builder
	for _, attr := range e.Schema.Attributes() {
		fmt.Fprintf(&b, "%s: %s", attr.Name, attr.Descriptor)
		if attr.Required {
			b.WriteString(" required")
		}
		if attr.HasDefault() {
			fmt.Fprintf(&b, " = %v", attr.Default)
		}
		origin, _ := e.Origin(attr.Name)
		fmt.Fprintf(&b, " (%s)\n", origin)
	}
	return b.String()
}
