// Package vector implements a generic, contiguous, growable array with
// explicit control over storage, element lifetime and failure atomicity.
//
// # Overview
//
// A Vector owns a single storage block sized in units of T. The first Len()
// slots hold live elements; the remaining Cap()-Len() slots are raw storage
// that is never read or destroyed. This makes it suitable for:
//
//   - Systems code that needs predictable amortized growth
//   - Element types that own resources and need deterministic destruction
//   - Code that must not observe half-finished reallocations
//
// # Basic Usage
//
//	v := vector.New[int]() // capacity 1, length 0
//	defer v.Release()      // destroy elements and drop storage
//
//	v.PushBack(10)
//	v.PushBack(20)
//	v.PushBack(30)
//
//	x := v.Get(1)          // unchecked access
//	p, err := v.At(5)      // checked access, err wraps ErrOutOfRange
//
//	for i, e := range v.All() {
//		fmt.Println(i, e)
//	}
//
// # Growth
//
// Appending to a full block allocates a new one of twice the capacity (1 for
// an unallocated vector). Reserve, Resize and ShrinkToFit are the other
// operations that replace the block. Capacity never shrinks except through
// ShrinkToFit.
//
// # Element Lifetime
//
// Elements are plain values by default. An element type can opt into
// lifetime hooks:
//
//   - Cloner: copy construction that may fail
//   - Initializer: default construction that may fail (used by Resize)
//   - Destroyer: called once when an element's lifetime ends
//   - FallibleMover: forces copy instead of move when relocating
//
// # Failure Atomicity
//
// Every operation that replaces the storage block (PushBack and EmplaceBack
// on a full block, Reserve, growing Resize, ShrinkToFit, Clone, Assign)
// builds the new block completely before retiring the old one. If an element
// method returns an error or panics, the partially built block is torn down
// and the vector is left exactly as it was. Errors are returned wrapped in
// *ElementError; panics keep unwinding after the rollback.
//
// # Thread Safety
//
// Vector is not goroutine-safe. It has single-owner value semantics;
// concurrent use requires external synchronization.
//
// # Metrics and Monitoring
//
// The vector provides a metrics snapshot for monitoring storage usage:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Bytes in use: %d\n", m.SizeInUse)
//	fmt.Printf("Block size: %d bytes\n", m.Capacity)
package vector
