package client

import (
	"fmt"
	"net/url"

	"github.com/theepicsaxguy/Mastowatch-sub001/internal/sliceutil"
	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

// AddParam sets key to the formatted value of *v, or leaves it out when v is nil.
func AddParam[T any](q url.Values, key string, v *T) error {
	if v == nil {
		return nil
	}

	s, err := marshaller.FormatValue(*v)
	if err != nil {
		return fmt.Errorf("encoding parameter %s: %w", key, err)
	}

	q.Set(key, s)
	return nil
}

// AddListParam adds key once per element of vs, in order.
func AddListParam[T any](q url.Values, key string, vs []T) error {
	formatted, idx, err := sliceutil.TryMap(vs, func(v T) (string, error) { return marshaller.FormatValue(v) })
	if err != nil {
		return fmt.Errorf("encoding parameter %s[%d]: %w", key, idx, err)
	}

	for _, s := range formatted {
		q.Add(key, s)
	}
	return nil
}

// AddNullableParam sets key to the held value of v. Absent and null values are left out.
func AddNullableParam[T any](q url.Values, key string, v values.Nullable[T]) error {
	return AddParam(q, key, v.Ptr())
}
