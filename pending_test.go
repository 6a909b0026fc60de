package tin

import "testing"

func TestPending_AddAndRemove(t *testing.T) {
	m := &Mesh{}
	m.pendingAdd(5)
	m.pendingAdd(7)

	if !m.pendingRemove(5) {
		t.Fatal("pendingRemove(5) = false, want true")
	}
	if len(m.pending) != 1 || m.pending[0] != 7 {
		t.Errorf("pending = %v, want [7]", m.pending)
	}
}

func TestPending_RemoveMissingReturnsFalse(t *testing.T) {
	m := &Mesh{}
	m.pendingAdd(1)

	if m.pendingRemove(99) {
		t.Fatal("pendingRemove(99) = true, want false for absent triangle")
	}
}
