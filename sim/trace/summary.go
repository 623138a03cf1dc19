package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvictions     int
	EvictionsByPolicy  map[string]int
	VictimDistribution map[int]int // page → number of times it was evicted
	UniqueVictims      int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		EvictionsByPolicy:  make(map[string]int),
		VictimDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalEvictions = len(st.Evictions)
	for _, e := range st.Evictions {
		summary.EvictionsByPolicy[e.Policy]++
		summary.VictimDistribution[e.Victim]++
	}
	summary.UniqueVictims = len(summary.VictimDistribution)

	return summary
}
