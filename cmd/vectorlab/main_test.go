package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/internal/config"
	"github.com/pavanmanishd/vector/internal/scenario"
)

// execute runs the CLI with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { cfg, configFile, noChart = nil, "", false })
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFill(t *testing.T) {
	type growth struct{ push, oldCap, newCap int }
	var got []growth
	v, caps, err := fill(9, func(push, oldCap, newCap int) {
		got = append(got, growth{push, oldCap, newCap})
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []growth{{2, 1, 2}, {3, 2, 4}, {5, 4, 8}, {9, 8, 16}}
	if len(got) != len(want) {
		t.Fatalf("reallocations = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reallocation %d = %v, want %v", i, got[i], want[i])
		}
	}
	if len(caps) != 10 || caps[0] != 1 || caps[9] != 16 {
		t.Errorf("caps = %v", caps)
	}
	if v.Len() != 9 {
		t.Errorf("Len = %d, want 9", v.Len())
	}
}

func TestCountArg(t *testing.T) {
	cfg = config.DefaultConfig()
	defer func() { cfg = nil }()

	if n, err := countArg(nil); err != nil || n != config.DefaultGrowCount {
		t.Errorf("countArg(nil) = %d, %v", n, err)
	}
	if n, err := countArg([]string{"12"}); err != nil || n != 12 {
		t.Errorf("countArg(12) = %d, %v", n, err)
	}
	for _, bad := range []string{"-1", "x"} {
		if _, err := countArg([]string{bad}); err == nil {
			t.Errorf("countArg(%q) expected error", bad)
		}
	}
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "--no-chart", "../../examples/rollback.yaml")
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	if !strings.Contains(out, "all invariants held") {
		t.Errorf("output missing success line:\n%s", out)
	}
	if !strings.Contains(out, "rolled back") {
		t.Errorf("output missing rollback summary:\n%s", out)
	}
}

func TestRunCommandMissingFile(t *testing.T) {
	if _, err := execute(t, "run", "does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing scenario")
	}
}

func TestReportBrokenTrace(t *testing.T) {
	cfg = config.DefaultConfig()
	cfg.Theme = "plain"
	noChart = true
	t.Cleanup(func() { cfg, noChart = nil, false })

	tr := &scenario.Trace{
		Name: "broken",
		Steps: []scenario.Snapshot{
			{Op: "new", Cap: 1},
			{Step: 1, Op: "push", Len: 2, Cap: 1, Values: []int{1, 2}, Live: 2},
		},
		FinalLive: 1,
	}
	var out bytes.Buffer
	err := report(&out, tr)
	if err == nil {
		t.Fatal("expected invariant check failure")
	}
	if !strings.Contains(err.Error(), "invariant check failed") {
		t.Errorf("err = %v", err)
	}
	if strings.Contains(out.String(), "all invariants held") {
		t.Errorf("success line printed for broken trace:\n%s", out.String())
	}
}

func TestMetricsCommand(t *testing.T) {
	out, err := execute(t, "metrics", "9")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	var m vector.VectorMetrics
	if err := yaml.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if m.Len != 9 || m.Cap != 16 {
		t.Errorf("len/cap = %d/%d, want 9/16", m.Len, m.Cap)
	}
	if m.Capacity != m.Cap*m.ElemSize || m.SizeInUse != m.Len*m.ElemSize {
		t.Errorf("byte sizes inconsistent: %+v", m)
	}
	if m.Utilization != 9.0/16.0 {
		t.Errorf("Utilization = %v, want %v", m.Utilization, 9.0/16.0)
	}
}

func TestMetricsCommandInvalidCount(t *testing.T) {
	if _, err := execute(t, "metrics", "-x"); err == nil {
		t.Error("expected error for invalid count")
	}
}
