package config

import (
	"sort"

	"github.com/alexisbeaulieu97/polymorph/internal/schema"
)

// Document is the YAML document describing a primitive catalog and the
// components built on top of it.
type Document struct {
	Version    string                  `yaml:"version" validate:"required,semver"`
	Primitives map[string]AttributeMap `yaml:"primitives" validate:"omitempty,dive,keys,primitive_id,endkeys,dive,keys,attr_name,endkeys"`
	Components []Component             `yaml:"components,omitempty" validate:"omitempty,dive"`
	// IncludeBuiltin merges the builtin primitives under the declared ones.
	IncludeBuiltin bool `yaml:"include_builtin,omitempty"`
}

// AttributeMap maps attribute names to their declarations.
type AttributeMap map[string]Attribute

// Attribute declares a single attribute or option.
type Attribute struct {
	Type     string   `yaml:"type" validate:"required,value_kind"`
	Values   []string `yaml:"values,omitempty" validate:"required_if=Type enum,unique,dive,required"`
	Required bool     `yaml:"required,omitempty"`
	Default  any      `yaml:"default,omitempty"`
}

// Component declares a component shell.
type Component struct {
	Name        string       `yaml:"name" validate:"required,primitive_id"`
	Description string       `yaml:"description,omitempty"`
	Default     string       `yaml:"default" validate:"required"`
	Options     AttributeMap `yaml:"options,omitempty" validate:"omitempty,dive,keys,attr_name,endkeys"`
	// Nested registers the component as a primitive under its own name so
	// later components can use it as a variant.
	Nested bool `yaml:"nested,omitempty"`
}

// Schema converts the declarations into an immutable schema.
func (m AttributeMap) Schema() (schema.Schema, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]schema.Attribute, 0, len(m))
	for _, name := range names {
		decl := m[name]
		attrs = append(attrs, schema.Attribute{
			Name:       name,
			Descriptor: schema.Descriptor{Kind: schema.Kind(decl.Type), Values: decl.Values},
			Required:   decl.Required,
			Default:    normalizeDefault(decl.Default),
		})
	}
	return schema.New(attrs...)
}

// normalizeDefault widens YAML integers so numeric defaults compare the
// same way regardless of how they were written.
func normalizeDefault(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	}
	return v
}
