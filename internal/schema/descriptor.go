package schema

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind enumerates the value types an attribute may carry.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindEnum   Kind = "enum"
	KindAny    Kind = "any"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Descriptor describes the legal values of a single attribute.
type Descriptor struct {
	Kind   Kind     `validate:"required,value_kind"`
	Values []string `validate:"required_if=Kind enum,unique,dive,required"`
}

// String is a convenience constructor for a string descriptor.
func String() Descriptor { return Descriptor{Kind: KindString} }

// Number is a convenience constructor for a numeric descriptor.
func Number() Descriptor { return Descriptor{Kind: KindNumber} }

// Bool is a convenience constructor for a boolean descriptor.
func Bool() Descriptor { return Descriptor{Kind: KindBool} }

// Any accepts every value, including nil.
func Any() Descriptor { return Descriptor{Kind: KindAny} }

// Enum builds a descriptor restricted to the given string values.
func Enum(values ...string) Descriptor {
	return Descriptor{Kind: KindEnum, Values: slices.Clone(values)}
}

// String renders the descriptor, e.g. "enum(primary|danger)".
func (d Descriptor) String() string {
	if d.Kind == KindEnum {
		return fmt.Sprintf("enum(%s)", strings.Join(d.Values, "|"))
	}
	return d.Kind.String()
}

// Equal reports whether two descriptors accept exactly the same values.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.Kind == other.Kind && slices.Equal(d.Values, other.Values)
}

// Check reports whether value satisfies the descriptor.
func (d Descriptor) Check(value any) error {
	switch d.Kind {
	case KindAny:
		return nil
	case KindString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %s", TypeOf(value))
		}
	case KindNumber:
		if !isNumber(value) {
			return fmt.Errorf("expected number, got %s", TypeOf(value))
		}
	case KindBool:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected bool, got %s", TypeOf(value))
		}
	case KindEnum:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected one of %s, got %s", strings.Join(d.Values, ", "), TypeOf(value))
		}
		if !slices.Contains(d.Values, s) {
			return fmt.Errorf("value %q is not one of %s", s, strings.Join(d.Values, ", "))
		}
	default:
		return fmt.Errorf("unsupported kind %q", d.Kind)
	}
	return nil
}

// Parse converts a textual value into the Go value the descriptor expects.
// It is used where attributes arrive as plain strings, such as CLI flags.
func (d Descriptor) Parse(raw string) (any, error) {
	var value any
	switch d.Kind {
	case KindNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", raw, err)
		}
		value = n
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("parse bool %q: %w", raw, err)
		}
		value = b
	default:
		value = raw
	}

	if err := d.Check(value); err != nil {
		return nil, err
	}
	return value, nil
}

// TypeOf names the dynamic type of value for diagnostics.
func TypeOf(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}

func isNumber(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
