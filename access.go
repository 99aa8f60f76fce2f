package vector

import "iter"

// Ref returns a pointer to slot i without a length check.
// The caller must guarantee 0 <= i < Len(); indexing raw slots in
// [Len(), Cap()) is a contract violation that is not detected.
func (v *Vector[T]) Ref(i int) *T {
	return &v.data[i]
}

// Get returns the element at i without a length check. See Ref.
func (v *Vector[T]) Get(i int) T {
	return v.data[i]
}

// Set overwrites the element at i without a length check. See Ref.
func (v *Vector[T]) Set(i int, value T) {
	v.data[i] = value
}

// At returns a pointer to the element at i, or an *IndexError wrapping
// ErrOutOfRange if i is not in [0, Len()). v is never modified.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.length {
		return nil, &IndexError{Index: i, Len: v.length}
	}
	return &v.data[i], nil
}

// Front returns a pointer to the first element. Panics if v is empty.
func (v *Vector[T]) Front() *T {
	if v.length == 0 {
		panic("vector: Front on empty vector")
	}
	return &v.data[0]
}

// Back returns a pointer to the last element. Panics if v is empty.
func (v *Vector[T]) Back() *T {
	if v.length == 0 {
		panic("vector: Back on empty vector")
	}
	return &v.data[v.length-1]
}

// Slice returns the live elements as a slice sharing v's storage.
// The slice is bounded by [0, Len()) and is invalidated by any operation
// that reallocates.
func (v *Vector[T]) Slice() []T {
	return v.data[:v.length:v.length]
}

// All returns an iterator over index/value pairs of the live elements.
// The iterator reads v on every step and can be ranged over repeatedly.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.length - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}
