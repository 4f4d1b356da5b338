// Package pointer provides utilities for working with pointers.
//
// Optional request parameters and optional model fields are pointers, so these helpers are the
// usual way of filling them in from literals.
package pointer

// From will create a pointer to the provided value.
func From[T any](t T) *T {
	return &t
}

// FromNonZero will create a pointer to the provided value, or return nil if it is the zero value.
// Use it to leave an optional parameter unset when no value was configured.
func FromNonZero[T comparable](t T) *T {
	var zero T
	if t == zero {
		return nil
	}

	return &t
}

// ValueOrZero will return the value of the pointer or the zero value if the pointer is nil.
func ValueOrZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}

	return *v
}
