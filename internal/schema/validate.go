package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	attrNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_:.-]*$`)
	valueKinds      = map[Kind]struct{}{KindString: {}, KindNumber: {}, KindBool: {}, KindEnum: {}, KindAny: {}}
)

// validatorInstance configures and returns the validator shared by schema
// construction and document validation.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("attr_name", func(fl validator.FieldLevel) bool {
			return ValidName(fl.Field().String())
		})

		_ = v.RegisterValidation("value_kind", func(fl validator.FieldLevel) bool {
			return ValidKind(Kind(fl.Field().String()))
		})

		validateInst = v
	})

	return validateInst
}

// Validator exposes the shared validator, with the attr_name and value_kind
// rules registered, for packages that decode schemas from documents.
func Validator() *validator.Validate {
	return validatorInstance()
}

// ValidName reports whether name is a legal attribute name.
func ValidName(name string) bool {
	return attrNamePattern.MatchString(name)
}

// ValidKind reports whether k is a supported value kind.
func ValidKind(k Kind) bool {
	_, ok := valueKinds[k]
	return ok
}

func convertValidationError(name string, err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("attribute %q: %w", name, err)
	}

	fe := validationErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Errorf("attribute %q: %s is required", name, field)
	case "attr_name":
		return fmt.Errorf("attribute %q: invalid name", name)
	case "value_kind":
		return fmt.Errorf("attribute %q: unsupported kind %q", name, fe.Value())
	case "unique":
		return fmt.Errorf("attribute %q: enum values must be unique", name)
	default:
		return fmt.Errorf("attribute %q: %s failed %s validation", name, field, fe.Tag())
	}
}
