// Package scenario runs scripted operation sequences against a vector of
// instrumented elements and records the observable state after every step.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Step is a single scripted operation.
type Step struct {
	Op    string `yaml:"op"`
	Value int    `yaml:"value,omitempty"`
	N     int    `yaml:"n,omitempty"`
	Index int    `yaml:"index,omitempty"`
	// FailAt makes the k-th element construction (copy or init) performed by
	// this step fail. Zero disables injection.
	FailAt int `yaml:"fail_at,omitempty"`
	// Panic raises the injected failure as a panic instead of an error.
	Panic bool `yaml:"panic,omitempty"`
}

// Scenario is a named list of steps.
type Scenario struct {
	Name string `yaml:"name"`
	// CopyOnRelocate makes elements report that their move may fail, so the
	// vector copies them when it reallocates.
	CopyOnRelocate bool   `yaml:"copy_on_relocate"`
	Steps          []Step `yaml:"steps"`
}

// Ops lists the operations a scenario may use.
var Ops = []string{
	"push", "emplace", "pop", "reserve", "resize", "clear", "shrink",
	"at", "clone", "assign", "move", "swap", "release",
}

var ErrUnknownOp = errors.New("unknown op")

// Parse decodes a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses the scenario at path.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Validate checks every step names a known op with sane arguments.
func (s *Scenario) Validate() error {
	for i, st := range s.Steps {
		if !slices.Contains(Ops, st.Op) {
			return fmt.Errorf("step %d: %w %q", i+1, ErrUnknownOp, st.Op)
		}
		if st.N < 0 || st.FailAt < 0 {
			return fmt.Errorf("step %d: negative argument", i+1)
		}
	}
	return nil
}
