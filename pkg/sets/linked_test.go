package sets

import "testing"

func TestLinkedSetPreservesInsertionOrder(t *testing.T) {
	s := NewLinkedSet[string]()
	order := []string{"p2", "~p0", "p0&p1", "p2"}
	for _, x := range order {
		s.Add(x)
	}
	want := []string{"p2", "~p0", "p0&p1"}
	got := s.ToSlice()
	if len(got) != len(want) {
		t.Fatalf("ToSlice() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinkedSetRemoveRelinks(t *testing.T) {
	s := NewLinkedSet[int]()
	s.AddAll(1, 2, 3, 4)
	s.Remove(2)
	want := []int{1, 3, 4}
	got := s.ToSlice()
	if len(got) != len(want) {
		t.Fatalf("ToSlice() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLinkedSetReAddMovesToEnd(t *testing.T) {
	s := NewLinkedSet[int]()
	s.AddAll(1, 2, 3)
	s.Remove(1)
	s.Add(1)
	want := []int{2, 3, 1}
	got := s.ToSlice()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLinkedSetClone(t *testing.T) {
	s := NewLinkedSet[int]()
	s.AddAll(1, 2, 3)
	clone := s.Clone()
	clone.Remove(2)
	if !s.Contains(2) {
		t.Fatal("mutating the clone must not affect the original")
	}
	if clone.ToSlice()[1] != 3 {
		t.Fatal("clone must preserve insertion order after removal")
	}
}
