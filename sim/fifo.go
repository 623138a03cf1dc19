package sim

import "github.com/pagesim/pagesim/sim/trace"

// SimulateFIFO evicts the page that has been resident the longest.
// Hits do not change the eviction order, so more frames can mean more faults.
func SimulateFIFO(refs []Page, capacity int) (*Result, error) {
	return simulateFIFO(refs, capacity, nil)
}

func simulateFIFO(refs []Page, capacity int, st *trace.SimulationTrace) (*Result, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}

	res := newResult(PolicyFIFO, capacity, len(refs))
	frames := newFrameSet(capacity, len(refs))
	queue := make([]Page, 0, residentHint(capacity, len(refs))) // oldest at head
	loadedAt := make(map[Page]int, residentHint(capacity, len(refs)))

	for i, page := range refs {
		step := i + 1
		if frames.contains(page) {
			res.recordHit(page, frames)
			continue
		}
		if !frames.full() {
			frames.admit(page)
			queue = append(queue, page)
			loadedAt[page] = step
			res.recordFault(page, frames, nil)
			continue
		}

		victim := queue[0]
		if st.Enabled() {
			st.RecordEviction(trace.EvictionRecord{
				Policy:     string(PolicyFIFO),
				Step:       step,
				Page:       int(page),
				Victim:     int(victim),
				Reason:     "oldest resident page",
				Candidates: candidateScores(frames.resident(), func(p Page) int { return loadedAt[p] }),
			})
		}
		queue = append(queue[1:], page)
		delete(loadedAt, victim)
		loadedAt[page] = step
		frames.replace(victim, page)
		res.recordFault(page, frames, &victim)
	}
	return res, nil
}
