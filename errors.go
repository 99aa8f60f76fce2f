package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by checked access when the index is not in [0, Len()).
var ErrOutOfRange = errors.New("vector: index out of range")

// IndexError reports a checked access outside the live prefix.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0:%d]", e.Index, e.Len)
}

// Unwrap returns ErrOutOfRange so callers can test with errors.Is.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// ElementError wraps a failure raised by an element method (Clone, Init, or
// an EmplaceBack constructor) together with the operation and slot index
// that triggered it. The vector never swallows element failures; it only
// guarantees which state is observable when one occurs.
type ElementError struct {
	Op    string
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("vector: %s: element %d: %v", e.Op, e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// IsElementError reports whether err (or any error in its chain) is an [*ElementError].
func IsElementError(err error) bool {
	if err == nil {
		return false
	}
	var ee *ElementError
	return errors.As(err, &ee)
}

func elementErr(op string, index int, err error) error {
	return &ElementError{Op: op, Index: index, Err: err}
}
