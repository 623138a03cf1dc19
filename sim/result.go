package sim

// StepRecord is the outcome of processing one reference.
type StepRecord struct {
	Step    int    // 1-based position in the reference string
	Page    Page   // requested page
	Frames  []Page // frame contents after this reference, in slot order
	Hit     bool
	Evicted *Page // victim of a replacement; nil on hits and on faults that filled an empty slot
}

// Result is the full trace and fault count of one policy run.
type Result struct {
	Policy   Policy
	Capacity int
	Steps    []StepRecord
	Faults   int
}

func newResult(policy Policy, capacity, length int) *Result {
	return &Result{
		Policy:   policy,
		Capacity: capacity,
		Steps:    make([]StepRecord, 0, length),
	}
}

// recordHit appends a hit step.
func (r *Result) recordHit(page Page, frames *frameSet) {
	r.Steps = append(r.Steps, StepRecord{
		Step:   len(r.Steps) + 1,
		Page:   page,
		Frames: frames.snapshot(),
		Hit:    true,
	})
}

// recordFault appends a fault step. evicted is nil when an empty slot was used.
func (r *Result) recordFault(page Page, frames *frameSet, evicted *Page) {
	r.Faults++
	r.Steps = append(r.Steps, StepRecord{
		Step:    len(r.Steps) + 1,
		Page:    page,
		Frames:  frames.snapshot(),
		Evicted: evicted,
	})
}

// Accesses is the length of the simulated reference string.
func (r *Result) Accesses() int {
	return len(r.Steps)
}

// Hits is Accesses minus Faults.
func (r *Result) Hits() int {
	return r.Accesses() - r.Faults
}

// HitRatio is Hits / Accesses, defined as 0 for an empty reference string.
func (r *Result) HitRatio() float64 {
	if r.Accesses() == 0 {
		return 0
	}
	return float64(r.Hits()) / float64(r.Accesses())
}

// MissRatio is 1 - HitRatio.
func (r *Result) MissRatio() float64 {
	return 1 - r.HitRatio()
}

// HitPattern renders the run as one character per step: 'H' for a hit, 'F' for a fault.
func (r *Result) HitPattern() string {
	b := make([]byte, len(r.Steps))
	for i, s := range r.Steps {
		if s.Hit {
			b[i] = 'H'
		} else {
			b[i] = 'F'
		}
	}
	return string(b)
}
