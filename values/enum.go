package values

import (
	"fmt"
	"slices"

	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
	"github.com/theepicsaxguy/Mastowatch-sub001/json"
)

// UnmarshalEnum decodes a JSON string into target, rejecting anything that is not one of allowed.
func UnmarshalEnum[E ~string](data []byte, target *E, allowed ...E) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.ErrInvalidEnumValue.Wrap(err)
	}

	v, err := ParseEnum(s, allowed...)
	if err != nil {
		return err
	}

	*target = v
	return nil
}

// ParseEnum converts s into an enum member, rejecting anything that is not one of allowed.
func ParseEnum[E ~string](s string, allowed ...E) (E, error) {
	if !slices.Contains(allowed, E(s)) {
		return "", errors.ErrInvalidEnumValue.Wrap(fmt.Errorf("%q is not one of %v", s, allowed))
	}

	return E(s), nil
}
