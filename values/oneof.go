package values

import (
	"fmt"
	"reflect"

	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
	"github.com/theepicsaxguy/Mastowatch-sub001/json"
)

// DecodeOneOf decodes data into the first of targets whose type accepts it and returns that
// target's index. Each target must be a pointer to a pointer (**V); the winning target is set
// to a newly decoded value and the others are left untouched. Variants are tried in the order
// given, so the first that succeeds wins even if a later one would also have matched.
func DecodeOneOf(data []byte, targets ...any) (int, error) {
	errs := make([]error, 0, len(targets))

	for i, target := range targets {
		tv := reflect.ValueOf(target)
		if tv.Kind() != reflect.Pointer || tv.Elem().Kind() != reflect.Pointer {
			return -1, fmt.Errorf("oneOf target %d must be a pointer to a pointer, got %T", i, target)
		}

		candidate := reflect.New(tv.Elem().Type().Elem())
		if err := json.Unmarshal(data, candidate.Interface()); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", candidate.Elem().Type().Name(), err))
			continue
		}

		tv.Elem().Set(candidate)
		return i, nil
	}

	return -1, errors.ErrNoVariantMatched.Wrap(errors.Join(errs...))
}

// EncodeOneOf encodes the first non-nil variant.
func EncodeOneOf(variants ...any) ([]byte, error) {
	for _, variant := range variants {
		if isNil(variant) {
			continue
		}

		return json.Marshal(variant)
	}

	return nil, errors.ErrNoVariantMatched.Wrap(errors.New("no variant is set"))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
