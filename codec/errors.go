package codec

import (
	"errors"
	"fmt"
)

// error kinds, match with errors.Is
var (
	ErrMissingField       = errors.New("missing field")
	ErrRange              = errors.New("value out of range")
	ErrLengthExceeded     = errors.New("length exceeded")
	ErrConfiguration      = errors.New("invalid field configuration")
	ErrUnknownType        = errors.New("unknown field type")
	ErrInvariantViolation = errors.New("codec invariant violated")
	ErrInvalidValue       = errors.New("invalid field value")
	ErrTruncated          = errors.New("truncated input")
	ErrMalformed          = errors.New("malformed input")
)

// MissingFieldError is returned when a declared field has no value at encode time.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %s is not set", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// RangeError is returned for an integer outside its type's inclusive range.
type RangeError struct {
	Type  string
	Value string
	Min   string
	Max   string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("integer %s is out of range for %s (%s-%s)", e.Value, e.Type, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// LengthExceededError is returned when a string, array or encoded slot
// is longer than allowed.
type LengthExceededError struct {
	What   string
	Length int
	Max    int
}

func (e *LengthExceededError) Error() string {
	return fmt.Sprintf("%s length %d exceeds max length of %d", e.What, e.Length, e.Max)
}

func (e *LengthExceededError) Unwrap() error { return ErrLengthExceeded }

// ConfigurationError is returned when field metadata is missing or unusable.
type ConfigurationError struct {
	Field     string
	Attribute string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s %s", e.Attribute, e.Reason)
	}
	return fmt.Sprintf("field %s: %s %s", e.Field, e.Attribute, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// UnknownTypeError is returned for a field type outside the dispatch table.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type: %s", e.Type)
}

func (e *UnknownTypeError) Unwrap() error { return ErrUnknownType }

// InvariantViolationError signals a dispatch bug, such as a structural
// type reaching the scalar path.
type InvariantViolationError struct {
	Type   FieldType
	Reason string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Reason)
}

func (e *InvariantViolationError) Unwrap() error { return ErrInvariantViolation }

// DecodeError is returned when the input ends early or holds non hex digits.
type DecodeError struct {
	Offset int
	Need   int
	Have   int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err == ErrTruncated {
		return fmt.Sprintf("%v at offset %d: need %d hex digits, have %d", e.Err, e.Offset, e.Need, e.Have)
	}
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FieldError locates a failure at a dotted field path such as "offer.items[2].amount".
type FieldError struct {
	Path string
	Type FieldType
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Path, e.Type, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func wrapField(path string, typ FieldType, err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return err
	}
	return &FieldError{Path: path, Type: typ, Err: err}
}

func invalidValue(typ FieldType, v interface{}) error {
	return fmt.Errorf("%w: %T cannot be encoded as %s", ErrInvalidValue, v, typ)
}
