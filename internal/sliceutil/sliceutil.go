package sliceutil

func Map[T any, U any](slice []T, fn func(T) U) []U {
	mapped := make([]U, len(slice))
	for i, elem := range slice {
		mapped[i] = fn(elem)
	}
	return mapped
}

// TryMap is Map for a fallible fn. It stops at the first error and returns it with the index of
// the element that failed.
func TryMap[T any, U any](slice []T, fn func(T) (U, error)) ([]U, int, error) {
	mapped := make([]U, len(slice))
	for i, elem := range slice {
		u, err := fn(elem)
		if err != nil {
			return nil, i, err
		}
		mapped[i] = u
	}
	return mapped, -1, nil
}
