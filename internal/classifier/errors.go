package classifier

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidType is returned when a measurement is not a real number.
	// NaN and infinite floats fall in this group
	ErrInvalidType = errors.New("all inputs must be numeric")
	// ErrInvalidValue is returned when a measurement is zero or negative
	ErrInvalidValue = errors.New("dimensions and mass must be positive")
)

// InputError describes the first measurement that failed validation
type InputError struct {
	Kind  error // ErrInvalidType or ErrInvalidValue
	Field Field
	Type  string // runtime type of Input, e.g. "string" or "<nil>"
	Input any
}

func newTypeError(f Field, v any) *InputError {
	return &InputError{Kind: ErrInvalidType, Field: f, Type: fmt.Sprintf("%T", v), Input: v}
}

func newValueError(f Field, v any) *InputError {
	return &InputError{Kind: ErrInvalidValue, Field: f, Type: fmt.Sprintf("%T", v), Input: v}
}

// Error implements the error interface
func (e *InputError) Error() string {
	if errors.Is(e.Kind, ErrInvalidType) {
		return fmt.Sprintf("%s: %v, received type %s", e.Field, e.Kind, e.Type)
	}
	return fmt.Sprintf("%s: %v, received %v", e.Field, e.Kind, e.Input)
}

// Unwrap returns the error kind so callers can use errors.Is
func (e *InputError) Unwrap() error {
	return e.Kind
}
