package errors

import (
	stdErrors "errors"
	"fmt"
)

var (
	// ErrUnknownPrimitive matches any UnknownPrimitiveError via errors.Is.
	ErrUnknownPrimitive = stdErrors.New("unknown primitive")
	// ErrSchemaViolation matches any SchemaViolationError via errors.Is.
	ErrSchemaViolation = stdErrors.New("schema violation")
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownPrimitiveError reports a variant that is not registered in the catalog.
type UnknownPrimitiveError struct {
	Primitive string
}

// NewUnknownPrimitiveError constructs an UnknownPrimitiveError.
func NewUnknownPrimitiveError(primitive string) error {
	return &UnknownPrimitiveError{Primitive: primitive}
}

func (e *UnknownPrimitiveError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown primitive %q", e.Primitive)
}

// Is reports whether target is ErrUnknownPrimitive.
func (e *UnknownPrimitiveError) Is(target error) bool {
	return target == ErrUnknownPrimitive
}

// SchemaViolationError describes the first attribute that failed validation
// against an effective schema.
type SchemaViolationError struct {
	Primitive string
	Key       string
	// Expected is the descriptor the key resolved to, empty when the key is not
	// part of the schema at all.
	Expected string
	// Actual describes what the caller supplied ("missing" for absent required keys).
	Actual string
	Reason string
}

// NewSchemaViolationError constructs a SchemaViolationError.
func NewSchemaViolationError(primitive, key, expected, actual, reason string) error {
	return &SchemaViolationError{
		Primitive: primitive,
		Key:       key,
		Expected:  expected,
		Actual:    actual,
		Reason:    reason,
	}
}

func (e *SchemaViolationError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("schema violation on %q for primitive %q: %s", e.Key, e.Primitive, e.Reason)
	if e.Expected != "" {
		msg += fmt.Sprintf(" (expected %s, got %s)", e.Expected, e.Actual)
	}
	return msg
}

// Is reports whether target is ErrSchemaViolation.
func (e *SchemaViolationError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// RenderError wraps a failure returned by a renderer.
type RenderError struct {
	Primitive string
	Err       error
}

// NewRenderError constructs a RenderError for the given primitive.
func NewRenderError(primitive string, err error) error {
	return &RenderError{Primitive: primitive, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Primitive != "" {
		return fmt.Sprintf("render error [%s]: %v", e.Primitive, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
