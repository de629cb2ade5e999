package visited

import "github.com/hupe1980/bitgraph/internal/bitset"

// VisitedSet tracks visited vertices using a bitset and a dirty list for fast reset.
type VisitedSet struct {
	bits  bitset.Set
	dirty []int
}

// New creates a new visited set.
func New(capacity int) *VisitedSet {
	return &VisitedSet{
		bits:  bitset.New(capacity),
		dirty: make([]int, 0, 128), // Initial capacity for dirty list
	}
}

// TestAndVisit marks a vertex as visited and returns true if it was ALREADY visited.
func (v *VisitedSet) TestAndVisit(id int) bool {
	v.ensure(id)
	if v.bits.TestAndAdd(id) {
		return true
	}
	v.dirty = append(v.dirty, id)
	return false
}

// Visited returns true if the vertex has been visited.
func (v *VisitedSet) Visited(id int) bool {
	if id < 0 || id>>6 >= len(v.bits) {
		return false
	}
	return v.bits.Contains(id)
}

// Count returns the number of vertices visited since the last reset.
func (v *VisitedSet) Count() int {
	return len(v.dirty)
}

// Reset clears the visited status for all vertices visited in the current session.
func (v *VisitedSet) Reset() {
	for _, id := range v.dirty {
		v.bits.Remove(id)
	}
	v.dirty = v.dirty[:0]
}

// EnsureCapacity ensures the visited set can hold at least the given number of vertices.
func (v *VisitedSet) EnsureCapacity(capacity int) {
	words := bitset.Words(capacity)
	if words > len(v.bits) {
		v.grow(words)
	}
}

func (v *VisitedSet) ensure(id int) {
	if wordIdx := id >> 6; wordIdx >= len(v.bits) {
		v.grow(wordIdx + 1)
	}
}

func (v *VisitedSet) grow(newLen int) {
	newCap := len(v.bits) * 2
	if newCap < newLen {
		newCap = newLen
	}

	newBits := make(bitset.Set, newCap)
	copy(newBits, v.bits)
	v.bits = newBits
}
