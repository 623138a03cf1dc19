// Package trace provides eviction-decision recording for replacement policy analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// NeverUsedAgain is the Optimal candidate score of a page with no future reference.
const NeverUsedAgain = -1

// CandidateScore captures one resident page considered for eviction and the
// value the policy ranked it by.
type CandidateScore struct {
	Page  int
	Score int // FIFO: load step; LRU: last-use step; Optimal: next-use step or NeverUsedAgain
}

// EvictionRecord captures a single replacement decision.
type EvictionRecord struct {
	Policy     string
	Step       int // 1-based reference position that caused the fault
	Page       int // page brought in
	Victim     int // page evicted
	Reason     string
	Candidates []CandidateScore // residents in frame-slot order at decision time
}
