package component

import (
	"sort"

	"github.com/alexisbeaulieu97/polymorph/internal/resolver"
	"github.com/alexisbeaulieu97/polymorph/internal/schema"
	polyerrors "github.com/alexisbeaulieu97/polymorph/pkg/errors"
)

// validate checks a request against the effective schema and reports the
// first violation. Keys are visited in sorted order so the reported
// violation is deterministic: residual attributes first, then own option
// values, then missing required attributes.
func validate(eff resolver.Effective, own schema.Schema, options, attrs map[string]any) error {
	variant := string(eff.Variant)

	for _, key := range sortedKeys(attrs) {
		attr, ok := eff.Schema.Lookup(key)
		if !ok {
			return polyerrors.NewSchemaViolationError(variant, key, "", schema.TypeOf(attrs[key]),
				"attribute is not defined for this variant")
		}
		if err := attr.Descriptor.Check(attrs[key]); err != nil {
			return polyerrors.NewSchemaViolationError(variant, key, attr.Descriptor.String(), schema.TypeOf(attrs[key]), err.Error())
		}
	}

	for _, key := range sortedKeys(options) {
		attr, ok := own.Lookup(key)
		if !ok {
			return polyerrors.NewSchemaViolationError(variant, key, "", schema.TypeOf(options[key]),
				"not an option of this component")
		}
		if _, dup := attrs[key]; dup {
			return polyerrors.NewSchemaViolationError(variant, key, attr.Descriptor.String(), schema.TypeOf(options[key]),
				"supplied both as option and as attribute")
		}
		if err := attr.Descriptor.Check(options[key]); err != nil {
			return polyerrors.NewSchemaViolationError(variant, key, attr.Descriptor.String(), schema.TypeOf(options[key]), err.Error())
		}
	}

	for _, key := range eff.Schema.Required() {
		_, inAttrs := attrs[key]
		_, inOptions := options[key]
		if !inAttrs && !inOptions {
			attr, _ := eff.Schema.Lookup(key)
			return polyerrors.NewSchemaViolationError(variant, key, attr.Descriptor.String(), "missing",
				"required attribute is missing")
		}
	}

	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
