package model

import (
	"strconv"
	"strings"
)

// Optional records whether a field was supplied in the source document.
// The zero value is absent. A present value may still be empty.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether the field was supplied.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the value when present and def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if !o.present {
		return def
	}

	return o.value
}

// Set marks the field present with v.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.present = true
}

// Clear marks the field absent and drops the stored value.
func (o *Optional[T]) Clear() {
	var zero T

	o.value = zero
	o.present = false
}

// Number is a numeric literal kept exactly as written in the source so that
// re-serialization never changes its format.
type Number string

// Int parses the literal as a base-10 integer.
func (n Number) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(n)))
}

// Float64 parses the literal as a floating point number.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
}

// String returns the source literal.
func (n Number) String() string {
	return string(n)
}
