package schema

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sort"
)

// Attribute is a single named entry of a Schema.
type Attribute struct {
	Name       string `validate:"required,attr_name"`
	Descriptor Descriptor
	Required   bool
	// Default is applied when an optional attribute is absent. Required
	// attributes never carry a default.
	Default any
}

// Equal reports whether two attributes are structurally identical.
func (a Attribute) Equal(other Attribute) bool {
	return a.Name == other.Name &&
		a.Required == other.Required &&
		a.Descriptor.Equal(other.Descriptor) &&
		reflect.DeepEqual(a.Default, other.Default)
}

// HasDefault reports whether a default value is declared.
func (a Attribute) HasDefault() bool {
	return a.Default != nil
}

// Schema is an immutable mapping from attribute name to Attribute. The zero
// value is an empty schema.
type Schema struct {
	attrs map[string]Attribute
	keys  []string
}

// Empty returns a schema with no attributes.
func Empty() Schema {
	return Schema{}
}

// New validates attrs and publishes them as an immutable Schema.
func New(attrs ...Attribute) (Schema, error) {
	v := validatorInstance()

	m := make(map[string]Attribute, len(attrs))
	for _, attr := range attrs {
		if err := v.Struct(attr); err != nil {
			return Schema{}, convertValidationError(attr.Name, err)
		}
		if attr.Descriptor.Kind != KindEnum && len(attr.Descriptor.Values) > 0 {
			return Schema{}, fmt.Errorf("attribute %q: values are only allowed for enum attributes", attr.Name)
		}
		if _, exists := m[attr.Name]; exists {
			return Schema{}, fmt.Errorf("attribute %q: declared more than once", attr.Name)
		}
		if attr.HasDefault() {
			if attr.Required {
				return Schema{}, fmt.Errorf("attribute %q: required attributes cannot declare a default", attr.Name)
			}
			if err := attr.Descriptor.Check(attr.Default); err != nil {
				return Schema{}, fmt.Errorf("attribute %q: default: %w", attr.Name, err)
			}
		}
		attr.Descriptor.Values = slices.Clone(attr.Descriptor.Values)
		attr.Default = CloneValue(attr.Default)
		m[attr.Name] = attr
	}

	return fromMap(m), nil
}

// MustNew is like New but panics on error. Intended for static tables.
func MustNew(attrs ...Attribute) Schema {
	s, err := New(attrs...)
	if err != nil {
		panic(err)
	}
	return s
}

// fromMap takes ownership of m.
func fromMap(m map[string]Attribute) Schema {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Schema{attrs: m, keys: keys}
}

// Lookup returns a copy of the attribute registered under name.
func (s Schema) Lookup(name string) (Attribute, bool) {
	attr, ok := s.attrs[name]
	if ok {
		attr.Descriptor.Values = slices.Clone(attr.Descriptor.Values)
		attr.Default = CloneValue(attr.Default)
	}
	return attr, ok
}

// Has reports whether name is part of the schema.
func (s Schema) Has(name string) bool {
	_, ok := s.attrs[name]
	return ok
}

// Keys returns the attribute names in sorted order.
func (s Schema) Keys() []string {
	return slices.Clone(s.keys)
}

// Len returns the number of attributes.
func (s Schema) Len() int {
	return len(s.keys)
}

// Attributes returns every attribute ordered by name.
func (s Schema) Attributes() []Attribute {
	out := make([]Attribute, 0, len(s.keys))
	for _, k := range s.keys {
		attr, _ := s.Lookup(k)
		out = append(out, attr)
	}
	return out
}

// Required returns the names of required attributes in sorted order.
func (s Schema) Required() []string {
	var out []string
	for _, k := range s.keys {
		if s.attrs[k].Required {
			out = append(out, k)
		}
	}
	return out
}

// Equal reports whether both schemas contain structurally identical attributes.
func (s Schema) Equal(other Schema) bool {
	return maps.EqualFunc(s.attrs, other.attrs, Attribute.Equal)
}

// Merge returns a new schema holding every attribute of primary plus the
// attributes of secondary whose names primary does not define. It also
// returns the sorted names of the secondary attributes that were dropped.
func Merge(primary, secondary Schema) (Schema, []string) {
	m := make(map[string]Attribute, primary.Len()+secondary.Len())
	var shadowed []string

	for _, k := range secondary.keys {
		if primary.Has(k) {
			shadowed = append(shadowed, k)
			continue
		}
		m[k] = secondary.attrs[k]
	}
	for _, k := range primary.keys {
		m[k] = primary.attrs[k]
	}

	return fromMap(m), shadowed
}
