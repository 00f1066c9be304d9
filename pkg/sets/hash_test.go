package sets

import "testing"

func TestHashSetAddContains(t *testing.T) {
	s := NewHashSet[string]()
	if !s.Add("G[0,3](p0)") {
		t.Fatal("Add() on new element should return true")
	}
	if s.Add("G[0,3](p0)") {
		t.Fatal("Add() on duplicate element should return false")
	}
	if !s.Contains("G[0,3](p0)") {
		t.Fatal("Contains() should find the added element")
	}
	if s.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", s.Size())
	}
}

func TestHashSetRemove(t *testing.T) {
	s := NewHashSet[int](0)
	s.AddAll(1, 2, 3)
	if !s.Remove(2) {
		t.Fatal("Remove() of present element should return true")
	}
	if s.Remove(2) {
		t.Fatal("Remove() of absent element should return false")
	}
	if s.ContainsAny(2) {
		t.Fatal("set should no longer contain 2")
	}
	if !s.ContainsAll(1, 3) {
		t.Fatal("set should still contain 1 and 3")
	}
}

func TestHashSetClone(t *testing.T) {
	s := NewHashSet[int]()
	s.AddAll(1, 2)
	clone := s.Clone()
	clone.Add(3)
	if s.Contains(3) {
		t.Fatal("mutating the clone must not affect the original")
	}
	if clone.Size() != 3 {
		t.Fatalf("clone.Size() = %d, want 3", clone.Size())
	}
}
