package validation

import (
	"errors"
	"slices"
	"strings"
)

// SortValidationErrors sorts validation errors by location, then rule, then message. Other errors
// keep their relative order after them.
func SortValidationErrors(allErrors []error) {
	slices.SortStableFunc(allErrors, func(a, b error) int {
		var aErr, bErr *Error
		aOK, bOK := errors.As(a, &aErr), errors.As(b, &bErr)

		switch {
		case aOK && !bOK:
			return -1
		case !aOK && bOK:
			return 1
		case !aOK && !bOK:
			return 0
		}

		if c := strings.Compare(aErr.Location, bErr.Location); c != 0 {
			return c
		}
		if c := strings.Compare(aErr.Rule, bErr.Rule); c != 0 {
			return c
		}
		return strings.Compare(aErr.UnderlyingError.Error(), bErr.UnderlyingError.Error())
	})
}
