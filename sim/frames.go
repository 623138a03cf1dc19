package sim

// frameSet is the physical memory shared by every policy: a fixed number of
// positional slots plus a page -> slot index for O(1) residency checks.
// Slots fill left to right; once full, a replacement overwrites the victim's
// slot so the set never shrinks.
type frameSet struct {
	capacity int
	slots    []Page
	index    map[Page]int
}

// newFrameSet sizes its storage for at most min(capacity, refLen) residents;
// a run over refLen references can never occupy more slots than that.
func newFrameSet(capacity, refLen int) *frameSet {
	hint := residentHint(capacity, refLen)
	return &frameSet{
		capacity: capacity,
		slots:    make([]Page, 0, hint),
		index:    make(map[Page]int, hint),
	}
}

// residentHint bounds allocations by the reference length, not the capacity.
func residentHint(capacity, refLen int) int {
	return min(capacity, refLen)
}

func (f *frameSet) contains(p Page) bool {
	_, ok := f.index[p]
	return ok
}

func (f *frameSet) full() bool {
	return len(f.slots) >= f.capacity
}

func (f *frameSet) len() int {
	return len(f.slots)
}

// admit places p in the next empty slot. Callers check full() first.
func (f *frameSet) admit(p Page) {
	f.index[p] = len(f.slots)
	f.slots = append(f.slots, p)
}

// replace puts p into the slot held by victim.
func (f *frameSet) replace(victim, p Page) {
	slot := f.index[victim]
	delete(f.index, victim)
	f.slots[slot] = p
	f.index[p] = slot
}

// resident returns the pages in slot order. The slice aliases internal state.
func (f *frameSet) resident() []Page {
	return f.slots
}

// snapshot returns a copy of the slots for a StepRecord.
func (f *frameSet) snapshot() []Page {
	out := make([]Page, len(f.slots))
	copy(out, f.slots)
	return out
}
