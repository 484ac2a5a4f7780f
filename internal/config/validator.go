package config

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/internal/schema"
	polyerrors "github.com/alexisbeaulieu97/polymorph/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern      = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	primitiveIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("primitive_id", func(fl validator.FieldLevel) bool {
			return primitiveIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("attr_name", func(fl validator.FieldLevel) bool {
			return schema.ValidName(fl.Field().String())
		})

		_ = v.RegisterValidation("value_kind", func(fl validator.FieldLevel) bool {
			return schema.ValidKind(schema.Kind(fl.Field().String()))
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation on the
// document. base is the catalog the document extends, if any.
func ValidateDocument(doc *Document, base *catalog.Catalog) error {
	if doc == nil {
		return polyerrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	known := make(map[string]bool, len(doc.Primitives)+base.Len())
	for _, id := range base.IDs() {
		known[string(id)] = true
	}

	for _, id := range sortedPrimitiveIDs(doc.Primitives) {
		if base.IsMember(catalog.PrimitiveID(id)) {
			return shadowsBuiltinError(id)
		}
		if _, err := doc.Primitives[id].Schema(); err != nil {
			return polyerrors.NewValidationError(fmt.Sprintf("primitives.%s", id), err.Error(), err)
		}
		known[id] = true
	}

	if len(known) == 0 {
		return polyerrors.NewValidationError("primitives", "at least one primitive is required", nil)
	}

	names := make(map[string]int, len(doc.Components))
	for i, comp := range doc.Components {
		if prev, exists := names[comp.Name]; exists {
			return polyerrors.NewValidationError(fieldForComponent(i, "name"),
				fmt.Sprintf("duplicate component name %q (also components[%d])", comp.Name, prev), nil)
		}
		names[comp.Name] = i

		if !known[comp.Default] {
			return polyerrors.NewValidationError(fieldForComponent(i, "default"),
				fmt.Sprintf("references unknown primitive %q", comp.Default),
				polyerrors.NewUnknownPrimitiveError(comp.Default))
		}
		if _, err := comp.Options.Schema(); err != nil {
			return polyerrors.NewValidationError(fieldForComponent(i, "options"), err.Error(), err)
		}

		if comp.Nested {
			if known[comp.Name] {
				return polyerrors.NewValidationError(fieldForComponent(i, "name"),
					fmt.Sprintf("nested component %q collides with an existing primitive", comp.Name), nil)
			}
			known[comp.Name] = true
		}
	}

	return nil
}

func shadowsBuiltinError(id string) error {
	return polyerrors.NewValidationError(fmt.Sprintf("primitives.%s", id),
		fmt.Sprintf("primitive %q shadows a builtin primitive", id), nil)
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return polyerrors.NewValidationError(field, msg, err)
	}

	return polyerrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		// Drop the root type name.
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForComponent(index int, field string) string {
	return fmt.Sprintf("components[%d].%s", index, field)
}

func sortedPrimitiveIDs(m map[string]AttributeMap) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
