package values

import (
	"github.com/theepicsaxguy/Mastowatch-sub001/json"
)

// Nullable represents a field that distinguishes between being absent, being explicitly null and
// holding a value. The zero value is absent.
//
// Combined with the omitzero json option an absent Nullable is left out of the encoded object,
// a null one is written as null and a set one is written as its value. Decoding a JSON null
// produces a null Nullable, so nulls received from a server survive a round trip.
type Nullable[T any] struct {
	value   *T
	present bool
}

// Null returns a Nullable that is present and explicitly null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{present: true}
}

// From returns a Nullable holding v.
func From[T any](v T) Nullable[T] {
	return Nullable[T]{value: &v, present: true}
}

// FromPtr returns a Nullable holding *p, or a null Nullable if p is nil.
func FromPtr[T any](p *T) Nullable[T] {
	if p == nil {
		return Null[T]()
	}

	return From(*p)
}

// IsZero reports whether the field is absent.
func (n Nullable[T]) IsZero() bool {
	return !n.present
}

// IsNull reports whether the field is present and explicitly null.
func (n Nullable[T]) IsNull() bool {
	return n.present && n.value == nil
}

// IsSet reports whether the field holds a value.
func (n Nullable[T]) IsSet() bool {
	return n.value != nil
}

// Get returns the held value and whether there was one.
func (n Nullable[T]) Get() (T, bool) {
	if n.value == nil {
		var zero T
		return zero, false
	}

	return *n.value, true
}

// GetOrZero returns the held value, or the zero value of T when the field is absent or null.
func (n Nullable[T]) GetOrZero() T {
	v, _ := n.Get()
	return v
}

// Ptr returns a pointer to the held value, or nil when the field is absent or null.
func (n Nullable[T]) Ptr() *T {
	return n.value
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.value == nil {
		return []byte("null"), nil
	}

	return json.Marshal(*n.value)
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if json.IsNull(data) {
		*n = Null[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*n = From(v)
	return nil
}
