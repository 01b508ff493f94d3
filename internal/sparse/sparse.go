// Package sparse provides a sparse set of non-negative integers.
//
// The backtracker uses it to remember the distinct lengths a group has
// already produced: Clear is O(1) and the dense slice keeps insertion order.
// The sparse index grows on demand, so a set costs memory only for the
// values actually inserted into it.
package sparse

// Set holds non-negative integers.
type Set struct {
	sparse []int // value -> index in dense
	dense  []int // values in insertion order
}

// New creates a set with room for values in [0, capacity) before the sparse
// index has to grow.
func New(capacity int) *Set {
	if capacity < 0 {
		panic("sparse: negative capacity")
	}
	return &Set{
		sparse: make([]int, capacity),
		dense:  make([]int, 0, 8),
	}
}

// Cap returns the current size of the sparse index. Values at or above it
// are still accepted by Insert.
func (s *Set) Cap() int {
	return len(s.sparse)
}

// Insert adds v and reports whether it was absent.
// Panics if v is negative.
func (s *Set) Insert(v int) bool {
	if v < 0 {
		panic("sparse: negative value")
	}
	if s.Contains(v) {
		return false
	}
	if v >= len(s.sparse) {
		s.grow(v + 1)
	}
	s.sparse[v] = len(s.dense)
	s.dense = append(s.dense, v)
	return true
}

func (s *Set) grow(n int) {
	size := 2 * len(s.sparse)
	if size < n {
		size = n
	}
	grown := make([]int, size)
	copy(grown, s.sparse)
	s.sparse = grown
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v int) bool {
	if v < 0 || v >= len(s.sparse) {
		return false
	}
	idx := s.sparse[v]
	return idx < len(s.dense) && s.dense[idx] == v
}

// Clear removes all values in constant time.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// At returns the i-th inserted value.
func (s *Set) At(i int) int {
	return s.dense[i]
}
