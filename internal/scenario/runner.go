package scenario

import (
	"errors"
	"fmt"

	"github.com/pavanmanishd/vector"
)

// Snapshot is the observable state after one step.
type Snapshot struct {
	Step     int    `yaml:"step"`
	Op       string `yaml:"op"`
	Len      int    `yaml:"len"`
	Cap      int    `yaml:"cap"`
	Values   []int  `yaml:"values,flow"`
	SpareLen int    `yaml:"spare_len"`
	SpareCap int    `yaml:"spare_cap"`
	Live     int    `yaml:"live"`
	Result   string `yaml:"result,omitempty"`
	Err      string `yaml:"err,omitempty"`
	// Failed is set when an element failure (error or panic) interrupted the op.
	Failed bool `yaml:"failed,omitempty"`
}

// Trace is the recorded run of a scenario. Steps[0] is the initial state.
type Trace struct {
	Name      string     `yaml:"name"`
	Steps     []Snapshot `yaml:"steps"`
	FinalLive int        `yaml:"final_live"`
}

// Caps returns the capacity after every step, for charting.
func (t *Trace) Caps() []float64 {
	out := make([]float64, len(t.Steps))
	for i, s := range t.Steps {
		out[i] = float64(s.Cap)
	}
	return out
}

// runner holds the two vectors a scenario operates on: the primary and a
// spare used as the other side of clone, assign, move and swap.
type runner struct {
	lab     *lab
	primary *vector.Vector[Cell]
	spare   *vector.Vector[Cell]
}

// Run executes s and returns its trace. Element failures are recorded in the
// trace; only malformed scenarios return an error.
func Run(s *Scenario) (*Trace, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	runMu.Lock()
	defer runMu.Unlock()
	l := &lab{copyOnRelocate: s.CopyOnRelocate}
	active = l
	defer func() { active = nil }()

	r := &runner{lab: l, primary: vector.New[Cell](), spare: &vector.Vector[Cell]{}}
	tr := &Trace{Name: s.Name}
	tr.Steps = append(tr.Steps, r.snapshot(0, "new"))

	for i, st := range s.Steps {
		snap := r.step(i+1, st)
		tr.Steps = append(tr.Steps, snap)
	}

	r.primary.Release()
	r.spare.Release()
	tr.FinalLive = l.live
	return tr, nil
}

func (r *runner) step(n int, st Step) Snapshot {
	r.lab.failAt = 0
	r.lab.panics = st.Panic
	if st.FailAt > 0 {
		r.lab.failAt = r.lab.built + st.FailAt
	}

	result, err := r.guarded(st)
	snap := r.snapshot(n, st.Op)
	snap.Result = result
	if err != nil {
		var pe *PanicError
		snap.Err = err.Error()
		snap.Failed = vector.IsElementError(err) || errors.As(err, &pe)
	}
	return snap
}

// guarded runs one op and converts a panic raised by an element into a
// *PanicError. The vector has already rolled back by the time it arrives.
func (r *runner) guarded(st Step) (result string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &PanicError{Value: rec}
		}
	}()
	return r.apply(st)
}

func (r *runner) apply(st Step) (string, error) {
	v := r.primary
	switch st.Op {
	case "push":
		return "", v.PushBack(Cell{V: st.Value})
	case "emplace":
		_, err := v.EmplaceBack(func(c *Cell) error {
			if err := r.lab.construct(); err != nil {
				return err
			}
			r.lab.live++
			c.V = st.Value
			return nil
		})
		return "", err
	case "pop":
		if v.Empty() {
			return "", errors.New("pop on empty vector")
		}
		v.PopBack()
	case "reserve":
		return "", v.Reserve(st.N)
	case "resize":
		return "", v.Resize(st.N)
	case "clear":
		v.Clear()
	case "shrink":
		return "", v.ShrinkToFit()
	case "at":
		p, err := v.At(st.Index)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(p.V), nil
	case "clone":
		c, err := v.Clone()
		if err != nil {
			return "", err
		}
		r.spare.MoveAssign(c)
	case "assign":
		return "", v.Assign(r.spare)
	case "move":
		r.spare.MoveAssign(v)
	case "swap":
		v.Swap(r.spare)
	case "release":
		v.Release()
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
	}
	return "", nil
}

func (r *runner) snapshot(n int, op string) Snapshot {
	values := make([]int, 0, r.primary.Len())
	for c := range r.primary.Values() {
		values = append(values, c.V)
	}
	return Snapshot{
		Step:     n,
		Op:       op,
		Len:      r.primary.Len(),
		Cap:      r.primary.Cap(),
		Values:   values,
		SpareLen: r.spare.Len(),
		SpareCap: r.spare.Cap(),
		Live:     r.lab.live,
	}
}
