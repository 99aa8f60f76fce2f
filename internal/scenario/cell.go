package scenario

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInjected is the failure raised by a Cell when a step's fault plan fires.
var ErrInjected = errors.New("injected element failure")

// lab is the bookkeeping shared by every Cell during one Run. Cells reach it
// through a package variable because the vector default-constructs cells in
// raw slots that carry no back-reference.
type lab struct {
	live           int
	built          int
	failAt         int
	panics         bool
	copyOnRelocate bool
}

var (
	runMu  sync.Mutex
	active *lab
)

// construct counts one element construction and reports the injected
// failure if this is the one the current step targets.
func (l *lab) construct() error {
	l.built++
	if l.failAt == 0 || l.built != l.failAt {
		return nil
	}
	if l.panics {
		panic(ErrInjected)
	}
	return ErrInjected
}

// Cell is an int element that implements every lifetime hook so a run can
// count live elements and inject failures. Outside Run the hooks do no
// bookkeeping: a Cell copies, initializes and relocates like a plain int.
type Cell struct {
	V int
}

func (c Cell) Clone() (Cell, error) {
	if active == nil {
		return c, nil
	}
	if err := active.construct(); err != nil {
		return Cell{}, err
	}
	active.live++
	return Cell{V: c.V}, nil
}

func (c *Cell) Init() error {
	c.V = 0
	if active == nil {
		return nil
	}
	if err := active.construct(); err != nil {
		return err
	}
	active.live++
	return nil
}

func (c *Cell) Destroy() {
	if active != nil {
		active.live--
	}
}

func (c *Cell) MoveMayFail() bool {
	return active != nil && active.copyOnRelocate
}

// PanicError wraps a panic recovered from an element method during a step.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
