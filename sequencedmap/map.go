// Package sequencedmap provides a map that remembers the order its keys were first set in. It
// holds the members of a JSON object that no struct field claims, so that re-encoding keeps the
// server's order.
package sequencedmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// Map is an insertion-ordered map. The zero value is ready to use and a nil *Map reads as empty.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// New returns an empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{values: map[K]V{}}
}

// Len returns the number of keys. nil safe.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Set stores value under key. A key that is already present keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	if m.values == nil {
		m.values = map[K]V{}
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}

	v, ok := m.values[key]
	return v, ok
}

func (m *Map[K, V]) GetOrZero(key K) V {
	v, _ := m.Get(key)
	return v
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key. Setting it again appends it at the end.
func (m *Map[K, V]) Delete(key K) {
	if !m.Has(key) {
		return
	}

	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k K) bool { return k == key })
}

// All yields the entries in order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.ordered() {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Keys yields the keys in order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return slices.Values(m.ordered())
}

// Values yields the values in key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, k := range m.ordered() {
			if !yield(m.values[k]) {
				return
			}
		}
	}
}

func (m *Map[K, V]) ordered() []K {
	if m == nil {
		return nil
	}
	return m.keys
}

// MarshalJSON encodes the map as an object with members in key order. Strings are not HTML
// escaped, so server content is written back as it was received.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := encodeCompact(enc, &buf, fmt.Sprint(k)); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeCompact(enc, &buf, m.values[k]); err != nil {
			return nil, fmt.Errorf("encoding member %v: %w", k, err)
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// encodeCompact writes v through enc without the newline json.Encoder appends.
func encodeCompact(enc *json.Encoder, buf *bytes.Buffer, v any) error {
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}
