// Package vector implements a contiguous, growable sequence container with
// explicit control over storage, element lifetime and failure atomicity.
package vector

import "iter"

// Vector is a growable array. Slots [0, Len()) hold live elements; slots
// [Len(), Cap()) are raw storage and are never read or destroyed.
// Not goroutine-safe.
//
// The zero Vector is empty, unallocated and ready to use. New differs from it
// only in allocating one slot up front.
type Vector[T any] struct {
	data   []T // storage block, len(data) is the capacity
	length int
}

// New creates an empty Vector with storage for exactly one element.
// Allocation is eager even though no element is constructed.
func New[T any]() *Vector[T] {
	return &Vector[T]{data: allocBlock[T](1)}
}

// NewFilled creates a Vector holding n copies of value, with capacity n.
// If copying value fails the copies already made are destroyed and the error
// is returned; no partially built Vector is observable.
func NewFilled[T any](n int, value T) (*Vector[T], error) {
	if n < 0 {
		panic("vector: NewFilled with negative length")
	}
	v := &Vector[T]{}
	if n == 0 {
		return v, nil
	}
	if err := v.construct("NewFilled", n, func(int) T { return value }); err != nil {
		return nil, err
	}
	return v, nil
}

// Of creates a Vector holding copies of elems in order, with capacity len(elems).
// Rollback on failure is the same as NewFilled.
func Of[T any](elems ...T) (*Vector[T], error) {
	v := &Vector[T]{}
	if len(elems) == 0 {
		return v, nil
	}
	if err := v.construct("Of", len(elems), func(i int) T { return elems[i] }); err != nil {
		return nil, err
	}
	return v, nil
}

// Collect creates a Vector from the values of seq. The length of seq is not
// known up front, so capacity follows the append growth policy.
// On failure every element built so far is destroyed.
func Collect[T any](seq iter.Seq[T]) (*Vector[T], error) {
	v := &Vector[T]{}
	done := false
	defer func() {
		if !done {
			v.Release()
		}
	}()
	for e := range seq {
		if err := v.PushBack(e); err != nil {
			return nil, err
		}
	}
	done = true
	return v, nil
}

// Clone returns a deep copy of v with the same capacity. An empty v yields
// an empty, unallocated copy. v itself is never modified.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{}
	if v.length == 0 {
		return c, nil
	}
	if err := c.constructCap("Clone", len(v.data), v.length, func(i int) T { return v.data[i] }); err != nil {
		return nil, err
	}
	return c, nil
}

// Move transfers v's storage to a new Vector in constant time without
// touching any element. v is left empty and unallocated and stays usable.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{data: v.data, length: v.length}
	v.data, v.length = nil, 0
	return m
}

// construct fills an unallocated v with n copies produced by src.
func (v *Vector[T]) construct(op string, n int, src func(int) T) error {
	return v.constructCap(op, n, n, src)
}

// constructCap allocates capacity slots and copy-constructs n elements from
// src into them. v is only touched once every copy succeeded.
func (v *Vector[T]) constructCap(op string, capacity, n int, src func(int) T) error {
	block := allocBlock[T](capacity)
	built := 0
	ok := false
	defer func() {
		if !ok {
			destroyRange(block, 0, built)
		}
	}()
	for i := 0; i < n; i++ {
		e, err := copyOf(src(i))
		if err != nil {
			return elementErr(op, i, err)
		}
		block[i] = e
		built++
	}
	ok = true
	v.data, v.length = block, n
	return nil
}

// Release destroys every live element in index order and drops the storage
// block. The Vector is left empty and unallocated; it may be reused.
func (v *Vector[T]) Release() {
	if v.data == nil {
		return
	}
	destroyRange(v.data, 0, v.length)
	v.data, v.length = nil, 0
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the number of slots in the storage block.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// Empty reports whether v holds no live elements.
func (v *Vector[T]) Empty() bool {
	return v.length == 0
}

// PushBack appends a copy of value.
//
// When the block is full a new one of twice the capacity (1 if unallocated)
// is allocated, the copy is built into it first and the existing elements
// are relocated ahead of it. If any step fails v is left exactly as it was.
func (v *Vector[T]) PushBack(value T) error {
	if v.length < len(v.data) {
		e, err := copyOf(value)
		if err != nil {
			return elementErr("PushBack", v.length, err)
		}
		v.data[v.length] = e
		v.length++
		return nil
	}
	return v.reallocate("PushBack", nextCap(len(v.data)), v.length+1, func(slot *T) error {
		e, err := copyOf(value)
		if err != nil {
			return err
		}
		*slot = e
		return nil
	})
}

// EmplaceBack constructs a new last element in place by calling ctor on a
// raw (zero) slot and returns a pointer to it. Growth follows PushBack.
// If ctor fails, Len() is unchanged and the slot is left raw.
func (v *Vector[T]) EmplaceBack(ctor func(*T) error) (*T, error) {
	if v.length < len(v.data) {
		slot := &v.data[v.length]
		ok := false
		defer func() {
			if !ok {
				var zero T
				*slot = zero
			}
		}()
		if err := ctor(slot); err != nil {
			return nil, elementErr("EmplaceBack", v.length, err)
		}
		ok = true
		v.length++
		return slot, nil
	}
	if err := v.reallocate("EmplaceBack", nextCap(len(v.data)), v.length+1, ctor); err != nil {
		return nil, err
	}
	return v.Back(), nil
}

// PopBack destroys the last element. Capacity is unchanged.
// Panics if v is empty.
func (v *Vector[T]) PopBack() {
	if v.length == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.length--
	destroyAt(&v.data[v.length])
}

// Reserve grows the storage block to hold at least n elements.
// It is a no-op if n <= Cap(). On failure v is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.data) {
		return nil
	}
	return v.reallocate("Reserve", n, v.length, nil)
}

// Resize changes the number of live elements to n. Shrinking destroys the
// trailing elements and never fails. Growing reserves exactly n slots if
// needed and default-constructs the new elements; if that fails, length,
// elements and capacity are all left as they were.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vector: Resize with negative length")
	}
	switch {
	case n == v.length:
		return nil
	case n < v.length:
		destroyRange(v.data, n, v.length)
		v.length = n
		return nil
	case n > len(v.data):
		return v.reallocate("Resize", n, n, initAt[T])
	}

	built := v.length
	defer func() {
		if built < n {
			// Roll back in construction order, including the slot that failed.
			destroyRange(v.data, v.length, built)
			var zero T
			v.data[built] = zero
		}
	}()
	for built < n {
		if err := initAt(&v.data[built]); err != nil {
			return elementErr("Resize", built, err)
		}
		built++
	}
	v.length = n
	return nil
}

// Clear destroys every live element. Capacity is preserved.
func (v *Vector[T]) Clear() {
	destroyRange(v.data, 0, v.length)
	v.length = 0
}

// ShrinkToFit reduces capacity to Len(). An empty v releases its storage
// entirely. On failure v is unchanged.
func (v *Vector[T]) ShrinkToFit() error {
	if v.length == len(v.data) {
		return nil
	}
	if v.length == 0 {
		v.data = nil
		return nil
	}
	return v.reallocate("ShrinkToFit", v.length, v.length, nil)
}

// Swap exchanges the contents of v and other in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
	v.length, other.length = other.length, v.length
}

// Assign replaces v's contents with a deep copy of other. The copy is built
// before v is touched, so a failure leaves v unchanged and self-assignment
// is safe.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	tmp, err := other.Clone()
	if err != nil {
		return err
	}
	v.Swap(tmp)
	tmp.Release()
	return nil
}

// MoveAssign destroys v's elements, releases its storage and takes over
// other's storage. other is left empty and unallocated. Self-move is a no-op.
func (v *Vector[T]) MoveAssign(other *Vector[T]) {
	if v == other {
		return
	}
	v.Release()
	v.data, v.length = other.data, other.length
	other.data, other.length = nil, 0
}

// reallocate replaces the storage block with one of newCap slots holding
// newLen live elements. Slots [Len(), newLen) are built with fill first,
// then the existing elements are relocated ahead of them. Nothing in v
// changes until every step has succeeded; on failure the elements built in
// the new block are destroyed in construction order and the block dropped.
//
// Relocation moves elements unless the element type reports that its move
// may fail, in which case elements are copied with Clone and the originals
// are destroyed only after the new block is complete.
func (v *Vector[T]) reallocate(op string, newCap, newLen int, fill func(*T) error) error {
	block := allocBlock[T](newCap)
	copying := moveMayFail(v.data[:v.length])
	tailBuilt, headBuilt := 0, 0
	committed := false
	defer func() {
		if committed {
			return
		}
		destroyRange(block, v.length, v.length+tailBuilt)
		// Moved slots share ownership with the originals and are dropped
		// with the block.
		if copying {
			destroyRange(block, 0, headBuilt)
		}
	}()

	for i := v.length; i < newLen; i++ {
		if err := fill(&block[i]); err != nil {
			return elementErr(op, i, err)
		}
		tailBuilt++
	}
	for i := 0; i < v.length; i++ {
		if !copying {
			block[i] = v.data[i]
			continue
		}
		e, err := copyOf(v.data[i])
		if err != nil {
			return elementErr(op, i, err)
		}
		block[i] = e
		headBuilt++
	}
	committed = true

	if copying {
		destroyRange(v.data, 0, v.length)
	} else {
		clear(v.data[:v.length])
	}
	v.data, v.length = block, newLen
	return nil
}
