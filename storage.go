package vector

import (
	"math"
	"reflect"
	"unsafe"
)

// allocBlock returns a storage block of n slots of T. No slot in the
// returned block holds a live element; every slot is the zero value until
// something is constructed into it.
// Returns nil if n <= 0.
func allocBlock[T any](n int) []T {
	if n <= 0 {
		return nil
	}
	return make([]T, n)
}

// nextCap returns the capacity an append switches to when the block is full.
func nextCap(c int) int {
	if c == 0 {
		return 1
	}
	if c > math.MaxInt/2 {
		panic("vector: capacity overflow")
	}
	return c * 2
}

// elemSize returns the size in bytes of one slot of T.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// copyOf copy-constructs a new element from v.
func copyOf[T any](v T) (T, error) {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v, nil
}

// initAt default-constructs the element in slot.
func initAt[T any](slot *T) error {
	var zero T
	*slot = zero
	if in, ok := any(slot).(Initializer); ok {
		return in.Init()
	}
	return nil
}

// destroyAt ends the lifetime of the element in slot and leaves the slot raw.
func destroyAt[T any](slot *T) {
	if d, ok := any(slot).(Destroyer); ok {
		d.Destroy()
	} else if d, ok := any(*slot).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*slot = zero
}

// destroyRange destroys slots [from, to) in index order.
func destroyRange[T any](block []T, from, to int) {
	for i := from; i < to; i++ {
		destroyAt(&block[i])
	}
}

// moveMayFail selects the transfer policy for relocating elems: true means
// copy with Clone, false means move. Pointers always move. Only interface
// element types are decided per element, and nil or pointer values among
// them are skipped.
func moveMayFail[T any](elems []T) bool {
	var zero T
	if m, ok := any(&zero).(FallibleMover); ok {
		return m.MoveMayFail()
	}
	if reflect.TypeFor[T]().Kind() != reflect.Interface {
		return false
	}
	for i := range elems {
		e := any(elems[i])
		if e == nil || reflect.TypeOf(e).Kind() == reflect.Pointer {
			continue
		}
		if m, ok := e.(FallibleMover); ok && m.MoveMayFail() {
			return true
		}
	}
	return false
}
