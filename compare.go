package vector

// Equal reports whether a and b hold the same number of elements and each
// pair compares equal in index order.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// EqualFunc is like Equal but compares elements with eq. Comparison stops at
// the first mismatch; a panic raised by eq propagates to the caller.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}
