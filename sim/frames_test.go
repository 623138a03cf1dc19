package sim

import "testing"

func TestFrameSet_AdmitReplaceKeepsSlots(t *testing.T) {
	f := newFrameSet(2, 5)
	f.admit(1)
	f.admit(2)
	if !f.full() || f.len() != 2 {
		t.Fatalf("expected full set of 2, got len %d", f.len())
	}

	snap := f.snapshot()
	f.replace(1, 3)

	if f.contains(1) || !f.contains(3) || !f.contains(2) {
		t.Errorf("unexpected membership after replace: %v", f.resident())
	}
	if f.resident()[0] != 3 {
		t.Errorf("replacement should reuse the victim's slot, got %v", f.resident())
	}
	if snap[0] != 1 {
		t.Error("snapshot must not alias the live slots")
	}
}
