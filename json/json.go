// Package json provides utilities for working with JSON.
//
// It wraps encoding/json with the two behaviours the models rely on: values are marshalled
// without HTML escaping, and objects can be scanned or decoded with their key order intact
// so unknown keys are re-emitted in the order the server sent them.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
	"github.com/theepicsaxguy/Mastowatch-sub001/sequencedmap"
	"github.com/tidwall/gjson"
)

// RawMessage is a raw encoded JSON value.
type RawMessage = json.RawMessage

// Number is a JSON number literal kept in its original textual form.
type Number = json.Number

// Marshal returns the JSON encoding of v without HTML escaping and without a trailing newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	e := json.NewEncoder(&buf)
	e.SetEscapeHTML(false)

	if err := e.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal parses the JSON-encoded data and stores the result in the value pointed to by v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// IsNull reports whether data is the JSON literal null, ignoring surrounding whitespace.
func IsNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}

// RawFields returns the members of the JSON object in data in document order.
// A key that appears more than once keeps its first position and its last value.
func RawFields(data []byte) (*sequencedmap.Map[string, RawMessage], error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.ErrInvalidJSON
	}

	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return nil, errors.ErrNotJSONObject
	}

	fields := sequencedmap.New[string, RawMessage]()
	result.ForEach(func(key, value gjson.Result) bool {
		fields.Set(key.String(), RawMessage(value.Raw))
		return true
	})

	return fields, nil
}

// Decode decodes data into plain Go values: objects become *sequencedmap.Map[string, any] with
// their key order preserved, arrays become []any and numbers keep their literal form as Number.
func Decode(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.ErrInvalidJSON
	}

	return handleResult(gjson.ParseBytes(data)), nil
}

func handleResult(r gjson.Result) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return Number(r.Raw)
	case gjson.String:
		return r.String()
	}

	if r.IsArray() {
		return handleArray(r)
	}

	return handleObject(r)
}

func handleObject(r gjson.Result) any {
	v := sequencedmap.New[string, any]()

	r.ForEach(func(key, value gjson.Result) bool {
		v.Set(key.String(), handleResult(value))
		return true
	})

	return v
}

func handleArray(r gjson.Result) any {
	v := []any{}

	r.ForEach(func(_, value gjson.Result) bool {
		v = append(v, handleResult(value))
		return true
	})

	return v
}
