package scenario

import (
	"errors"
	"fmt"
	"slices"
)

// ops after which the primary capacity may legitimately be smaller.
var capMayShrink = []string{"shrink", "release", "move", "swap", "assign"}

// Check verifies the container invariants over every recorded step and
// returns all violations joined, or nil.
func (t *Trace) Check() error {
	var errs []error
	fail := func(s Snapshot, format string, args ...any) {
		errs = append(errs, fmt.Errorf("step %d (%s): %s", s.Step, s.Op, fmt.Sprintf(format, args...)))
	}

	for i, s := range t.Steps {
		if s.Len < 0 || s.Len > s.Cap {
			fail(s, "len %d outside [0, cap %d]", s.Len, s.Cap)
		}
		if len(s.Values) != s.Len {
			fail(s, "%d values for len %d", len(s.Values), s.Len)
		}
		if s.Live != s.Len+s.SpareLen {
			fail(s, "%d live elements, want %d", s.Live, s.Len+s.SpareLen)
		}
		if i == 0 {
			continue
		}
		prev := t.Steps[i-1]

		if s.Failed {
			if s.Len != prev.Len || s.Cap != prev.Cap || !slices.Equal(s.Values, prev.Values) ||
				s.SpareLen != prev.SpareLen || s.SpareCap != prev.SpareCap {
				fail(s, "failed step changed state")
			}
			continue
		}
		if s.Cap < prev.Cap && !slices.Contains(capMayShrink, s.Op) {
			fail(s, "capacity decreased %d -> %d", prev.Cap, s.Cap)
		}
		if (s.Op == "push" || s.Op == "emplace") && s.Err == "" && prev.Len == prev.Cap {
			if want := max(1, 2*prev.Cap); s.Cap != want {
				fail(s, "grew to capacity %d, want %d", s.Cap, want)
			}
		}
	}

	if t.FinalLive != 0 {
		errs = append(errs, fmt.Errorf("%d elements still live after release", t.FinalLive))
	}
	return errors.Join(errs...)
}

// Failures returns the steps that were interrupted by an element failure.
func (t *Trace) Failures() []Snapshot {
	var out []Snapshot
	for _, s := range t.Steps {
		if s.Failed {
			out = append(out, s)
		}
	}
	return out
}
