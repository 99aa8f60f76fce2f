package vector

// Element behaviours
//
// A Vector treats its elements as plain Go values unless the element type
// opts into one of the interfaces below. Each one maps a step of the
// element lifetime (copy, default construction, destruction, relocation)
// onto a method the vector calls at exactly the points where that step
// happens.

// Cloner is implemented by element types whose copy is more than a value
// assignment, such as types that own a handle or a nested buffer.
// The vector calls Clone whenever it copy-constructs an element: PushBack,
// NewFilled, Of, Clone, Assign, and relocation under the copy policy.
// Clone must be declared on the value receiver (or T must be a pointer type).
type Cloner[T any] interface {
	Clone() (T, error)
}

// Initializer is implemented by *T when the zero value is not a valid
// default-constructed element. Resize calls Init on every slot it adds.
type Initializer interface {
	Init() error
}

// Destroyer is implemented by element types that must release something
// when their lifetime ends. Destroy is called exactly once per live element,
// by PopBack, Resize, Clear, Release, MoveAssign and after a copy-policy
// relocation has committed. Moved elements are not destroyed; ownership
// travels with the value.
type Destroyer interface {
	Destroy()
}

// FallibleMover is implemented by element types that cannot be relocated by
// moving them. When MoveMayFail reports true the vector copies elements with
// Clone during reallocation and leaves the old block intact until the new
// block is fully populated. The trait is read from a zero T; pointer element
// types always move.
type FallibleMover interface {
	MoveMayFail() bool
}
