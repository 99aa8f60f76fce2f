package scenario_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/internal/scenario"
)

func run(s *scenario.Scenario) *scenario.Trace {
	GinkgoHelper()
	tr, err := scenario.Run(s)
	Expect(err).NotTo(HaveOccurred())
	Expect(tr.Check()).To(Succeed())
	return tr
}

func last(tr *scenario.Trace) scenario.Snapshot {
	return tr.Steps[len(tr.Steps)-1]
}

var _ = Describe("Parse", func() {
	It("decodes steps", func() {
		s, err := scenario.Parse([]byte("name: x\nsteps:\n  - {op: push, value: 3}\n  - {op: reserve, n: 4}\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Steps).To(HaveLen(2))
		Expect(s.Steps[0]).To(Equal(scenario.Step{Op: "push", Value: 3}))
		Expect(s.Steps[1].N).To(Equal(4))
	})

	It("rejects unknown ops", func() {
		_, err := scenario.Parse([]byte("steps:\n  - {op: insert}\n"))
		Expect(err).To(MatchError(scenario.ErrUnknownOp))
	})

	It("rejects malformed yaml", func() {
		_, err := scenario.Parse([]byte("steps: [\n"))
		Expect(err).To(HaveOccurred())
	})

	It("keeps the name declared in the file", func() {
		s, err := scenario.LoadFile("testdata/growth.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Name).To(Equal("growth"))
	})
})

var _ = Describe("Run", func() {
	It("starts from a single allocated slot", func() {
		tr := run(&scenario.Scenario{})
		Expect(tr.Steps).To(HaveLen(1))
		Expect(tr.Steps[0].Len).To(Equal(0))
		Expect(tr.Steps[0].Cap).To(Equal(1))
	})

	It("replays the growth scenario", func() {
		s, err := scenario.LoadFile("testdata/growth.yaml")
		Expect(err).NotTo(HaveOccurred())
		tr := run(s)

		caps := make([]int, len(tr.Steps))
		for i, st := range tr.Steps {
			caps[i] = st.Cap
		}
		Expect(caps).To(Equal([]int{1, 1, 2, 4, 4, 4, 12, 12, 12, 12, 0}))

		Expect(tr.Steps[3].Values).To(Equal([]int{10, 20, 30}))
		Expect(tr.Steps[4].Result).To(Equal("20"))
		Expect(tr.Steps[5].Err).To(ContainSubstring("out of range"))
		Expect(tr.Steps[5].Failed).To(BeFalse())
		Expect(tr.Steps[7].Values).To(Equal([]int{10, 20, 30, 0, 0}))
		Expect(tr.Steps[8].Values).To(Equal([]int{10, 20}))
		Expect(last(tr).Len).To(Equal(0))
		Expect(tr.FinalLive).To(BeZero())
	})

	It("leaves the vector untouched when an element fails", func() {
		s, err := scenario.LoadFile("testdata/rollback.yaml")
		Expect(err).NotTo(HaveOccurred())
		tr := run(s)

		failed := tr.Failures()
		Expect(failed).To(HaveLen(5))
		for _, f := range failed {
			Expect(f.Err).To(ContainSubstring(scenario.ErrInjected.Error()))
		}

		push := tr.Steps[5]
		Expect(push.Failed).To(BeTrue())
		Expect(push.Err).To(ContainSubstring("PushBack: element 1"))
		Expect(push.Values).To(Equal([]int{1, 2, 3, 4}))
		Expect(push.Cap).To(Equal(4))

		Expect(tr.Steps[6].Err).To(HavePrefix("panic:"))
		Expect(tr.Steps[8].Err).To(ContainSubstring("Resize: element 4"))

		swapped := last(tr)
		Expect(swapped.Values).To(Equal([]int{1, 2, 3, 4}))
		Expect(swapped.Cap).To(Equal(4))
		Expect(swapped.SpareLen).To(Equal(5))
	})

	DescribeTable("capacity after a single op on a full block of four",
		func(step scenario.Step, wantLen, wantCap int) {
			s := &scenario.Scenario{Steps: []scenario.Step{
				{Op: "reserve", N: 4},
				{Op: "push", Value: 1}, {Op: "push", Value: 2},
				{Op: "push", Value: 3}, {Op: "push", Value: 4},
				step,
			}}
			got := last(run(s))
			Expect(got.Len).To(Equal(wantLen))
			Expect(got.Cap).To(Equal(wantCap))
		},
		Entry("push doubles", scenario.Step{Op: "push", Value: 5}, 5, 8),
		Entry("emplace doubles", scenario.Step{Op: "emplace", Value: 5}, 5, 8),
		Entry("pop keeps capacity", scenario.Step{Op: "pop"}, 3, 4),
		Entry("clear keeps capacity", scenario.Step{Op: "clear"}, 0, 4),
		Entry("smaller reserve is a no-op", scenario.Step{Op: "reserve", N: 2}, 4, 4),
		Entry("shrink on full block is a no-op", scenario.Step{Op: "shrink"}, 4, 4),
		Entry("resize grows to exact size", scenario.Step{Op: "resize", N: 7}, 7, 7),
		Entry("move empties the primary", scenario.Step{Op: "move"}, 0, 0),
		Entry("release empties the primary", scenario.Step{Op: "release"}, 0, 0),
	)

	It("records pop on an empty vector without failing the run", func() {
		tr := run(&scenario.Scenario{Steps: []scenario.Step{{Op: "pop"}}})
		Expect(last(tr).Err).To(Equal("pop on empty vector"))
		Expect(last(tr).Failed).To(BeFalse())
	})

	It("keeps clones isolated from the source", func() {
		tr := run(&scenario.Scenario{Steps: []scenario.Step{
			{Op: "push", Value: 1},
			{Op: "clone"},
			{Op: "push", Value: 2},
			{Op: "swap"},
		}})
		Expect(last(tr).Values).To(Equal([]int{1}))
		Expect(last(tr).SpareLen).To(Equal(2))
	})
})

var _ = Describe("Check", func() {
	It("reports a failed step that changed state", func() {
		tr := &scenario.Trace{Steps: []scenario.Snapshot{
			{Step: 0, Op: "new", Cap: 1, Values: []int{}},
			{Step: 1, Op: "push", Len: 1, Cap: 1, Values: []int{1}, Live: 1, Failed: true},
		}}
		Expect(tr.Check()).To(MatchError(ContainSubstring("failed step changed state")))
	})

	It("reports leaked elements", func() {
		tr := &scenario.Trace{FinalLive: 2}
		Expect(tr.Check()).To(MatchError(ContainSubstring("still live")))
	})

	It("reports capacity that did not double", func() {
		tr := &scenario.Trace{Steps: []scenario.Snapshot{
			{Step: 0, Op: "new", Len: 2, Cap: 2, Values: []int{1, 2}, Live: 2},
			{Step: 1, Op: "push", Len: 3, Cap: 3, Values: []int{1, 2, 3}, Live: 3},
		}}
		Expect(tr.Check()).To(MatchError(ContainSubstring("want 4")))
	})
})

var _ = Describe("Cell", func() {
	It("behaves like a plain int outside a run", func() {
		c := scenario.Cell{V: 7}
		cp, err := c.Clone()
		Expect(err).NotTo(HaveOccurred())
		Expect(cp.V).To(Equal(7))

		Expect(cp.Init()).To(Succeed())
		Expect(cp.V).To(Equal(0))
		Expect(cp.MoveMayFail()).To(BeFalse())
		Expect(cp.Destroy).NotTo(Panic())
	})

	It("can be stored in a vector outside a run", func() {
		v := &vector.Vector[scenario.Cell]{}
		for i := range 5 {
			Expect(v.PushBack(scenario.Cell{V: i})).To(Succeed())
		}
		Expect(v.Resize(7)).To(Succeed())
		Expect(v.Len()).To(Equal(7))
		Expect(v.Get(4).V).To(Equal(4))
		Expect(v.Release).NotTo(Panic())
	})
})
