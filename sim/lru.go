package sim

import (
	"fmt"

	"github.com/hashicorp/golang-lru/simplelru"

	"github.com/pagesim/pagesim/sim/trace"
)

// SimulateLRU evicts the page whose last use lies furthest in the past.
//
// Recency lives in a doubly-linked list (simplelru) holding every resident page;
// each access moves the page to the most-recent end and stamps it with the step
// number, a strictly increasing logical clock, so no two residents share a stamp.
func SimulateLRU(refs []Page, capacity int) (*Result, error) {
	return simulateLRU(refs, capacity, nil)
}

func simulateLRU(refs []Page, capacity int, st *trace.SimulationTrace) (*Result, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}

	var (
		victim  Page
		evicted bool
	)
	recency, err := simplelru.NewLRU(capacity, func(key, _ interface{}) {
		victim = key.(Page)
		evicted = true
	})
	if err != nil {
		return nil, fmt.Errorf("building recency list: %w", err)
	}

	res := newResult(PolicyLRU, capacity, len(refs))
	frames := newFrameSet(capacity, len(refs))

	for i, page := range refs {
		step := i + 1
		if frames.contains(page) {
			recency.Add(page, step)
			res.recordHit(page, frames)
			continue
		}
		if !frames.full() {
			frames.admit(page)
			recency.Add(page, step)
			res.recordFault(page, frames, nil)
			continue
		}

		if st.Enabled() {
			oldest, _, _ := recency.GetOldest()
			st.RecordEviction(trace.EvictionRecord{
				Policy: string(PolicyLRU),
				Step:   step,
				Page:   int(page),
				Victim: int(oldest.(Page)),
				Reason: "least recently used page",
				Candidates: candidateScores(frames.resident(), func(p Page) int {
					lastUsed, _ := recency.Peek(p)
					return lastUsed.(int)
				}),
			})
		}
		evicted = false
		recency.Add(page, step)
		if !evicted {
			panic(fmt.Sprintf("lru: full recency list admitted page %d without evicting", page))
		}
		out := victim
		frames.replace(out, page)
		res.recordFault(page, frames, &out)
	}
	return res, nil
}
