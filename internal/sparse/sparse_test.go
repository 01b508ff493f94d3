package sparse

import (
	"testing"
)

func TestSet_Basic(t *testing.T) {
	s := New(100)

	if s.Len() != 0 {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	if !s.Insert(5) {
		t.Error("first insert should return true")
	}
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	if s.Insert(5) {
		t.Error("duplicate insert should return false")
	}

	s.Insert(10)
	s.Insert(3)
	s.Insert(0)
	if s.Len() != 4 {
		t.Errorf("len should be 4, got %d", s.Len())
	}

	s.Clear()
	if s.Len() != 0 {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) || s.Contains(0) {
		t.Error("cleared set should not contain old values")
	}
}

func TestSet_InsertionOrder(t *testing.T) {
	s := New(10)
	for _, v := range []int{5, 2, 8, 2, 1, 5} {
		s.Insert(v)
	}

	expected := []int{5, 2, 8, 1}
	if s.Len() != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), s.Len())
	}
	for i, want := range expected {
		if got := s.At(i); got != want {
			t.Errorf("at index %d: expected %d, got %d", i, want, got)
		}
	}
}

func TestSet_OutOfRange(t *testing.T) {
	s := New(4)
	if s.Contains(-1) || s.Contains(4) || s.Contains(1000) {
		t.Error("out-of-range values must not be reported as present")
	}
	if s.Cap() != 4 {
		t.Errorf("Cap() = %d, want 4", s.Cap())
	}

	defer func() {
		if recover() == nil {
			t.Error("Insert(-1) should panic")
		}
	}()
	s.Insert(-1)
}

func TestSet_Grow(t *testing.T) {
	s := New(0)
	for _, v := range []int{1000, 3, 1 << 20, 3, 0} {
		s.Insert(v)
	}
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	for _, v := range []int{1000, 3, 1 << 20, 0} {
		if !s.Contains(v) {
			t.Errorf("Contains(%d) = false after growing", v)
		}
	}
	if s.Contains(999) || s.Contains(1<<20+1) {
		t.Error("values never inserted reported as present")
	}
	if s.Cap() <= 1<<20 {
		t.Errorf("Cap() = %d, want > %d", s.Cap(), 1<<20)
	}
}

func TestSet_ZeroCapacity(t *testing.T) {
	s := New(0)
	if s.Contains(0) {
		t.Error("zero-capacity set contains 0")
	}
	if !s.Insert(0) || !s.Contains(0) {
		t.Error("zero-capacity set cannot take 0")
	}
}

func TestSet_ReuseAfterClear(t *testing.T) {
	s := New(8)
	s.Insert(3)
	s.Insert(4)
	s.Clear()
	// stale sparse entries must not leak through
	s.Insert(7)
	if s.Contains(3) || s.Contains(4) {
		t.Error("stale values visible after clear")
	}
	if !s.Contains(7) || s.At(0) != 7 {
		t.Error("value inserted after clear not found")
	}
}
