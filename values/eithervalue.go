package values

import (
	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
	"github.com/theepicsaxguy/Mastowatch-sub001/json"
)

// EitherValue represents a union type that can hold either a Left or Right value.
// It provides multiple access patterns for different use cases:
//
// Direct field access (Left, Right) - for setting values
// Pointer access (GetLeft, GetRight) - for nil-safe pointer retrieval
// Value access (LeftValue, RightValue) - for nil-safe value retrieval with zero value fallback
//
// When decoding, Left is tried first and Right only if Left fails.
type EitherValue[L any, R any] struct {
	// Left holds the left-side value. Use directly when setting values in the EitherValue.
	Left *L
	// Right holds the right-side value. Use directly when setting values in the EitherValue.
	Right *R
}

// NewEitherValueFromLeft creates an EitherValue holding the left value.
func NewEitherValueFromLeft[L any, R any](left L) *EitherValue[L, R] {
	return &EitherValue[L, R]{Left: &left}
}

// NewEitherValueFromRight creates an EitherValue holding the right value.
func NewEitherValueFromRight[L any, R any](right R) *EitherValue[L, R] {
	return &EitherValue[L, R]{Right: &right}
}

// IsLeft returns true if the EitherValue contains a left value.
func (e *EitherValue[L, R]) IsLeft() bool {
	if e == nil {
		return false
	}

	return e.Left != nil
}

// GetLeft returns a pointer to the left value in a nil-safe way.
// Returns nil if the EitherValue is nil or if no left value is set.
func (e *EitherValue[L, R]) GetLeft() *L {
	if e == nil {
		return nil
	}

	return e.Left
}

// LeftValue returns the left value directly, with zero value fallback for safety.
// Should typically be used in conjunction with IsLeft() to verify the value is valid.
func (e *EitherValue[L, R]) LeftValue() L {
	if e == nil || e.Left == nil {
		var zero L
		return zero
	}

	return *e.Left
}

// IsRight returns true if the EitherValue contains a right value.
func (e *EitherValue[L, R]) IsRight() bool {
	if e == nil {
		return false
	}

	return e.Left == nil && e.Right != nil
}

// GetRight returns a pointer to the right value in a nil-safe way.
// Returns nil if the EitherValue is nil or if no right value is set.
func (e *EitherValue[L, R]) GetRight() *R {
	if e == nil {
		return nil
	}

	return e.Right
}

// RightValue returns the right value directly, with zero value fallback for safety.
// Should typically be used in conjunction with IsRight() to verify the value is valid.
func (e *EitherValue[L, R]) RightValue() R {
	if e == nil || e.Right == nil {
		var zero R
		return zero
	}

	return *e.Right
}

// IsZero reports whether neither side is set.
func (e EitherValue[L, R]) IsZero() bool {
	return e.Left == nil && e.Right == nil
}

func (e EitherValue[L, R]) MarshalJSON() ([]byte, error) {
	switch {
	case e.Left != nil:
		return json.Marshal(e.Left)
	case e.Right != nil:
		return json.Marshal(e.Right)
	default:
		return nil, errors.ErrNoVariantMatched.Wrap(errors.New("neither side of the union is set"))
	}
}

func (e *EitherValue[L, R]) UnmarshalJSON(data []byte) error {
	var left L
	leftErr := json.Unmarshal(data, &left)
	if leftErr == nil {
		e.Left, e.Right = &left, nil
		return nil
	}

	var right R
	rightErr := json.Unmarshal(data, &right)
	if rightErr == nil {
		e.Left, e.Right = nil, &right
		return nil
	}

	return errors.ErrNoVariantMatched.Wrap(errors.Join(leftErr, rightErr))
}
