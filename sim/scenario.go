package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pagesim/pagesim/sim/trace"
)

// Scenario is a simulation run described in a YAML file.
// Exactly one of References or Preset names the reference string; presets are
// resolved by the caller against defaults.yaml.
type Scenario struct {
	Name       string   `yaml:"name"`
	Frames     int      `yaml:"frames"`
	References []Page   `yaml:"references"`
	Preset     string   `yaml:"preset"`
	Policies   []string `yaml:"policies"`
	TraceLevel string   `yaml:"trace_level"`
}

// LoadScenario reads and strictly parses a scenario file; unknown keys are errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks frame count, reference source, policy names and trace level.
func (s *Scenario) Validate() error {
	if err := validateCapacity(s.Frames); err != nil {
		return fmt.Errorf("frames: %w", err)
	}
	hasRefs, hasPreset := s.References != nil, s.Preset != ""
	if hasRefs == hasPreset {
		return fmt.Errorf("scenario must set exactly one of references or preset")
	}
	for _, name := range s.Policies {
		if !IsValidPolicy(name) {
			return fmt.Errorf("%w %q", ErrUnknownPolicy, name)
		}
	}
	if !trace.IsValidTraceLevel(s.TraceLevel) {
		return fmt.Errorf("unknown trace level %q", s.TraceLevel)
	}
	return nil
}

// PolicyList returns the scenario's policies, or all of them when none are listed.
func (s *Scenario) PolicyList() []Policy {
	if len(s.Policies) == 0 {
		return AllPolicies()
	}
	out := make([]Policy, len(s.Policies))
	for i, name := range s.Policies {
		out[i] = Policy(name)
	}
	return out
}
