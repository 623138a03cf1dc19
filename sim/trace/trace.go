package trace

// TraceLevel controls the verbosity of eviction tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvictions captures every replacement decision with the candidates compared.
	TraceLevelEvictions TraceLevel = "evictions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelEvictions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects eviction records across one or more policy runs.
type SimulationTrace struct {
	Config    TraceConfig
	Evictions []EvictionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:    config,
		Evictions: make([]EvictionRecord, 0),
	}
}

// Enabled reports whether eviction records should be built at all.
// Safe on a nil trace.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelEvictions
}

// RecordEviction appends an eviction decision record.
func (st *SimulationTrace) RecordEviction(record EvictionRecord) {
	st.Evictions = append(st.Evictions, record)
}

// ForPolicy returns the records of one policy, in recording order.
func (st *SimulationTrace) ForPolicy(policy string) []EvictionRecord {
	if st == nil {
		return nil
	}
	var out []EvictionRecord
	for _, r := range st.Evictions {
		if r.Policy == policy {
			out = append(out, r)
		}
	}
	return out
}
