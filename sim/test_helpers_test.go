package sim

import (
	"math"
	"testing"
)

// pages builds a reference string from ints.
func pages(ns ...int) []Page {
	out := make([]Page, len(ns))
	for i, n := range ns {
		out[i] = Page(n)
	}
	return out
}

// textbookRefs is the 13-reference sample string of the original menu.
var textbookRefs = pages(7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2)

// beladyRefs shows FIFO's anomaly between 3 and 4 frames.
var beladyRefs = pages(1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5)

func mustSimulate(t *testing.T, policy Policy, refs []Page, capacity int) *Result {
	t.Helper()
	res, err := Simulate(policy, refs, capacity)
	if err != nil {
		t.Fatalf("Simulate(%s, capacity=%d): %v", policy, capacity, err)
	}
	return res
}

// randomRefs returns a reproducible uniform reference string.
func randomRefs(t *testing.T, seed int64, length, distinct int) []Page {
	t.Helper()
	refs, err := GenerateReferences(NewSimulationKey(seed), GeneratorConfig{Length: length, DistinctPages: distinct})
	if err != nil {
		t.Fatal(err)
	}
	return refs
}

// bruteForceMinFaults tries every eviction choice and returns the fewest faults
// any replacement policy can achieve. Exponential; keep inputs small.
func bruteForceMinFaults(refs []Page, capacity int) int {
	var solve func(i int, resident []Page) int
	solve = func(i int, resident []Page) int {
		if i == len(refs) {
			return 0
		}
		p := refs[i]
		for _, r := range resident {
			if r == p {
				return solve(i+1, resident)
			}
		}
		if len(resident) < capacity {
			next := append(append([]Page{}, resident...), p)
			return 1 + solve(i+1, next)
		}
		best := math.MaxInt
		for j := range resident {
			next := append([]Page{}, resident...)
			next[j] = p
			best = min(best, solve(i+1, next))
		}
		return 1 + best
	}
	return solve(0, nil)
}
