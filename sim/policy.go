package sim

import (
	"fmt"
	"strings"

	"github.com/pagesim/pagesim/sim/trace"
)

// Policy names a page-replacement policy.
type Policy string

const (
	PolicyFIFO    Policy = "fifo"
	PolicyLRU     Policy = "lru"
	PolicyOptimal Policy = "optimal"
)

// ValidPolicies is the set of recognized policy names.
var ValidPolicies = map[Policy]bool{PolicyFIFO: true, PolicyLRU: true, PolicyOptimal: true}

// IsValidPolicy returns true if name is a recognized policy. Case-sensitive.
func IsValidPolicy(name string) bool {
	return ValidPolicies[Policy(name)]
}

// AllPolicies returns every policy in report order.
func AllPolicies() []Policy {
	return []Policy{PolicyFIFO, PolicyLRU, PolicyOptimal}
}

// ParsePolicy resolves a user-supplied policy name, ignoring case.
func ParsePolicy(name string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(name)))
	if !ValidPolicies[p] {
		return "", fmt.Errorf("%w %q; valid policies: [fifo, lru, optimal]", ErrUnknownPolicy, name)
	}
	return p, nil
}

// DisplayName is the label used in tables and charts.
func (p Policy) DisplayName() string {
	switch p {
	case PolicyFIFO:
		return "FIFO"
	case PolicyLRU:
		return "LRU"
	case PolicyOptimal:
		return "Optimal"
	default:
		return string(p)
	}
}

type simulateFunc func(refs []Page, capacity int, st *trace.SimulationTrace) (*Result, error)

var simulators = map[Policy]simulateFunc{
	PolicyFIFO:    simulateFIFO,
	PolicyLRU:     simulateLRU,
	PolicyOptimal: simulateOptimal,
}

// Simulate runs one policy over refs with the given number of frames.
func Simulate(policy Policy, refs []Page, capacity int) (*Result, error) {
	return SimulateTraced(policy, refs, capacity, nil)
}

// SimulateTraced is Simulate with eviction decisions recorded into st.
// A nil or disabled trace records nothing.
func SimulateTraced(policy Policy, refs []Page, capacity int, st *trace.SimulationTrace) (*Result, error) {
	run, ok := simulators[policy]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, policy)
	}
	return run(refs, capacity, st)
}

// SimulateAll runs each policy independently on the same input, in order.
// It stops at the first error and returns no partial results.
func SimulateAll(policies []Policy, refs []Page, capacity int, st *trace.SimulationTrace) ([]*Result, error) {
	results := make([]*Result, 0, len(policies))
	for _, p := range policies {
		res, err := SimulateTraced(p, refs, capacity, st)
		if err != nil {
			return nil, fmt.Errorf("simulating %s: %w", p.DisplayName(), err)
		}
		results = append(results, res)
	}
	return results, nil
}

// validateCapacity is the single capacity check shared by every policy.
func validateCapacity(capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("%w: %d (need at least 1 frame)", ErrInvalidCapacity, capacity)
	}
	return nil
}

// candidateScores lists the residents in slot order with the score the policy ranks them by.
func candidateScores(resident []Page, score func(Page) int) []trace.CandidateScore {
	out := make([]trace.CandidateScore, len(resident))
	for i, p := range resident {
		out[i] = trace.CandidateScore{Page: int(p), Score: score(p)}
	}
	return out
}
