package sim

import "github.com/pagesim/pagesim/sim/trace"

// SimulateOptimal evicts the resident page whose next reference is furthest in
// the future (Belady's MIN), giving the fewest faults any policy can achieve.
//
// Ties happen only between pages that are never referenced again; the one in
// the lowest frame slot is evicted.
func SimulateOptimal(refs []Page, capacity int) (*Result, error) {
	return simulateOptimal(refs, capacity, nil)
}

func simulateOptimal(refs []Page, capacity int, st *trace.SimulationTrace) (*Result, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}

	never := len(refs)
	nextUse := nextOccurrences(refs)
	res := newResult(PolicyOptimal, capacity, len(refs))
	frames := newFrameSet(capacity, len(refs))
	// residentNext[p] is the index of p's next reference after the current position.
	residentNext := make(map[Page]int, residentHint(capacity, len(refs)))

	for i, page := range refs {
		step := i + 1
		if frames.contains(page) {
			residentNext[page] = nextUse[i]
			res.recordHit(page, frames)
			continue
		}
		if !frames.full() {
			frames.admit(page)
			residentNext[page] = nextUse[i]
			res.recordFault(page, frames, nil)
			continue
		}

		victim := farthestResident(frames.resident(), residentNext)
		if st.Enabled() {
			st.RecordEviction(trace.EvictionRecord{
				Policy: string(PolicyOptimal),
				Step:   step,
				Page:   int(page),
				Victim: int(victim),
				Reason: optimalReason(residentNext[victim], never),
				Candidates: candidateScores(frames.resident(), func(p Page) int {
					if residentNext[p] == never {
						return trace.NeverUsedAgain
					}
					return residentNext[p] + 1
				}),
			})
		}
		delete(residentNext, victim)
		residentNext[page] = nextUse[i]
		frames.replace(victim, page)
		res.recordFault(page, frames, &victim)
	}
	return res, nil
}

// nextOccurrences returns, for every position i, the index of the next
// reference to refs[i] after i, or len(refs) if there is none.
func nextOccurrences(refs []Page) []int {
	next := make([]int, len(refs))
	seen := make(map[Page]int)
	for i := len(refs) - 1; i >= 0; i-- {
		if j, ok := seen[refs[i]]; ok {
			next[i] = j
		} else {
			next[i] = len(refs)
		}
		seen[refs[i]] = i
	}
	return next
}

// farthestResident picks the resident with the largest next-use index,
// keeping the earliest slot on ties.
func farthestResident(resident []Page, next map[Page]int) Page {
	victim := resident[0]
	farthest := next[victim]
	for _, p := range resident[1:] {
		if next[p] > farthest {
			victim, farthest = p, next[p]
		}
	}
	return victim
}

func optimalReason(next, never int) string {
	if next == never {
		return "never referenced again"
	}
	return "next reference furthest in the future"
}
