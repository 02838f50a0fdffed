package strictvec

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hupe1980/strictvec/typestate"
)

var (
	// ErrTypeMismatch is returned when an index is not an integer or a value
	// is rejected by the vector's strategy.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrDomain is returned when a value of the right type fails a secondary
	// range check.
	ErrDomain = errors.New("domain error")

	// ErrIndexOutOfRange is returned when a write, insert or remove targets
	// an index outside the permitted range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnderflow is returned by Pop and Shift on an empty vector.
	ErrUnderflow = errors.New("vector is empty")
)

// TypeMismatchError describes a value or index rejected for its type.
//
// errors.Is(err, ErrTypeMismatch) reports true for every TypeMismatchError.
type TypeMismatchError struct {
	Strategy string
	Want     typestate.State
	Got      typestate.Kind
	Type     reflect.Type
	Reason   string
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("invalid value type for %s: want %s, got %s", e.Strategy, e.Want, e.Got)
	if e.Type != nil {
		msg += fmt.Sprintf(" (%s)", e.Type)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// DomainError describes a value rejected by a DomainCheck.
//
// It matches both ErrDomain and the check's own error with errors.Is.
type DomainError struct {
	Strategy string
	Value    any
	cause    error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid value %v for %s: %v", e.Value, e.Strategy, e.cause)
}

func (e *DomainError) Unwrap() []error { return []error{ErrDomain, e.cause} }

// IndexOutOfRangeError indicates a write or removal at a missing index.
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d does not exist (size %d)", e.Index, e.Size)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }

func indexTypeError(offset any) error {
	return &TypeMismatchError{
		Strategy: "index",
		Want:     typestate.Bound(typestate.KindInt),
		Got:      typestate.Of(offset),
		Type:     reflect.TypeOf(offset),
		Reason:   "indexes must be integers",
	}
}

func sourceTypeError(src any) error {
	return &TypeMismatchError{
		Strategy: "source",
		Want:     typestate.Bound(typestate.KindSequence),
		Got:      typestate.Of(src),
		Type:     reflect.TypeOf(src),
		Reason:   "not an enumerable source",
	}
}
