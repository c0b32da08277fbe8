package common

// There's no standard library package to deal with slices [grumble grumble]

// Contains returns whether `v` is in `slice`.
func Contains[T comparable](slice []T, v T) bool {
	for i := range slice {
		if slice[i] == v {
			return true
		}
	}
	return false
}

// Map returns fn applied to every element of slice, skipping results that are the zero value.
func Map[T any, U comparable](slice []T, fn func(T) U) []U {
	var zero U
	out := make([]U, 0, len(slice))
	for _, v := range slice {
		if u := fn(v); u != zero {
			out = append(out, u)
		}
	}
	return out
}
