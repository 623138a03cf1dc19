package stackinclusion

import (
	"fmt"
	"testing"

	"github.com/pagesim/pagesim/sim"
)

// =============================================================================
// H1: LRU and Optimal Are Stack Algorithms, FIFO Is Not
//
// Hypothesis: at every step, the pages LRU holds with c frames are a subset of
// the pages it holds with c+1 frames. Optimal satisfies the same inclusion for
// every resident page that is referenced again; pages never referenced again
// may differ because the victim among them is chosen by slot position.
// Inclusion implies faults never rise with more frames, so neither policy can
// show Belady's anomaly.
//
// Refuted if: any (seed, capacity, step) breaks inclusion for LRU or for the
// live pages of Optimal, or the FIFO anomaly string shows no violation.
// =============================================================================

func residentSet(frames []sim.Page) map[sim.Page]bool {
	set := make(map[sim.Page]bool, len(frames))
	for _, p := range frames {
		set[p] = true
	}
	return set
}

// referencedAfter returns the pages that appear in refs after index i.
func referencedAfter(refs []sim.Page, i int) map[sim.Page]bool {
	return residentSet(refs[i+1:])
}

// inclusionViolations counts steps where a page resident with small frames is
// missing with large frames. When liveOnly is set, pages never referenced
// again are ignored.
func inclusionViolations(refs []sim.Page, small, large *sim.Result, liveOnly bool) int {
	violations := 0
	for i := range refs {
		bigger := residentSet(large.Steps[i].Frames)
		var live map[sim.Page]bool
		if liveOnly {
			live = referencedAfter(refs, i)
		}
		for _, p := range small.Steps[i].Frames {
			if liveOnly && !live[p] {
				continue
			}
			if !bigger[p] {
				violations++
				break
			}
		}
	}
	return violations
}

func TestH1_StackInclusion(t *testing.T) {
	const (
		seeds    = 50
		length   = 60
		distinct = 8
	)

	fmt.Println("H1_STACK_INCLUSION_START")
	fmt.Printf("%-8s | %8s | %10s\n", "policy", "pairs", "violations")
	for _, tc := range []struct {
		policy   sim.Policy
		liveOnly bool
	}{
		{sim.PolicyLRU, false},
		{sim.PolicyOptimal, true},
	} {
		pairs, violations := 0, 0
		for seed := int64(1); seed <= seeds; seed++ {
			refs, err := sim.GenerateReferences(sim.NewSimulationKey(seed), sim.GeneratorConfig{
				Length: length, DistinctPages: distinct, Locality: 0.6, WorkingSet: 3,
			})
			if err != nil {
				t.Fatal(err)
			}
			for c := 1; c < distinct; c++ {
				small, err := sim.Simulate(tc.policy, refs, c)
				if err != nil {
					t.Fatal(err)
				}
				large, err := sim.Simulate(tc.policy, refs, c+1)
				if err != nil {
					t.Fatal(err)
				}
				pairs++
				if n := inclusionViolations(refs, small, large, tc.liveOnly); n > 0 {
					violations += n
					t.Errorf("%s seed=%d: %d steps break inclusion between %d and %d frames",
						tc.policy.DisplayName(), seed, n, c, c+1)
				}
				if large.Faults > small.Faults {
					t.Errorf("%s seed=%d: faults rose from %d to %d going from %d to %d frames",
						tc.policy.DisplayName(), seed, small.Faults, large.Faults, c, c+1)
				}
			}
		}
		fmt.Printf("%-8s | %8d | %10d\n", tc.policy.DisplayName(), pairs, violations)
	}
	fmt.Println("H1_STACK_INCLUSION_END")
}

func TestH1_FIFOBreaksInclusion(t *testing.T) {
	refs := []sim.Page{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}
	small, err := sim.SimulateFIFO(refs, 3)
	if err != nil {
		t.Fatal(err)
	}
	large, err := sim.SimulateFIFO(refs, 4)
	if err != nil {
		t.Fatal(err)
	}
	if n := inclusionViolations(refs, small, large, false); n == 0 {
		t.Error("expected FIFO with 3 frames to hold a page that 4 frames had already evicted")
	}
}
