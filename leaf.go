package strictvec

import (
	"reflect"

	"github.com/hupe1980/strictvec/typestate"
)

// Ready-made vector types.

// NewVec creates a vector bound to the type of its first value.
func NewVec(values ...any) (*Vector, error) {
	return New(DynamicStrict().Named("Vec"), values...)
}

// NewLenientVec creates a vector whose objects must keep sharing an embedded
// type or a registered interface.
func NewLenientVec(values ...any) (*Vector, error) {
	return New(DynamicLenient().Named("LenientVec"), values...)
}

// NewOptionalVec creates a vector that admits nil and binds to the type of
// its first non-nil value.
func NewOptionalVec(values ...any) (*Vector, error) {
	return New(OptionalDynamicStrict().Named("OptionalVec"), values...)
}

// NewLenientOptionalVec is NewLenientVec that also admits nil.
func NewLenientOptionalVec(values ...any) (*Vector, error) {
	return New(OptionalDynamicLenient().Named("LenientOptionalVec"), values...)
}

// NewBoolVec creates a vector of bools.
func NewBoolVec(values ...any) (*Vector, error) {
	return New(StrictScalar(typestate.KindBool).Named("BoolVec"), values...)
}

// NewIntVec creates a vector of integers.
func NewIntVec(values ...any) (*Vector, error) {
	return New(StrictScalar(typestate.KindInt).Named("IntVec"), values...)
}

// NewUIntVec creates a vector of non-negative integers.
func NewUIntVec(values ...any) (*Vector, error) {
	return New(StrictNonNegative(typestate.KindInt).Named("UIntVec"), values...)
}

// NewFloatVec creates a vector of floats.
func NewFloatVec(values ...any) (*Vector, error) {
	return New(StrictScalar(typestate.KindFloat).Named("FloatVec"), values...)
}

// NewStringVec creates a vector of strings.
func NewStringVec(values ...any) (*Vector, error) {
	return New(StrictScalar(typestate.KindString).Named("StringVec"), values...)
}

// NewOptionalBoolVec creates a vector of bools and nils.
func NewOptionalBoolVec(values ...any) (*Vector, error) {
	return New(OptionalScalar(typestate.KindBool).Named("OptionalBoolVec"), values...)
}

// NewOptionalIntVec creates a vector of integers and nils.
func NewOptionalIntVec(values ...any) (*Vector, error) {
	return New(OptionalScalar(typestate.KindInt).Named("OptionalIntVec"), values...)
}

// NewOptionalUIntVec creates a vector of non-negative integers and nils.
func NewOptionalUIntVec(values ...any) (*Vector, error) {
	return New(OptionalNonNegative(typestate.KindInt).Named("OptionalUIntVec"), values...)
}

// NewOptionalFloatVec creates a vector of floats and nils.
func NewOptionalFloatVec(values ...any) (*Vector, error) {
	return New(OptionalScalar(typestate.KindFloat).Named("OptionalFloatVec"), values...)
}

// NewOptionalStringVec creates a vector of strings and nils.
func NewOptionalStringVec(values ...any) (*Vector, error) {
	return New(OptionalScalar(typestate.KindString).Named("OptionalStringVec"), values...)
}

// NewObjectVec creates a vector holding values of exactly type t.
func NewObjectVec(t reflect.Type, values ...any) (*Vector, error) {
	return New(StrictObject(t), values...)
}
