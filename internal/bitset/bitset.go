package bitset

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

const (
	// WordBits is the number of bits per storage word.
	WordBits = 64

	wordShift = 6
	wordMask  = WordBits - 1
)

// Words returns the number of uint64 words needed to hold n bits.
func Words(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + wordMask) >> wordShift
}

// Set is a fixed-size, non-thread-safe bitset over a plain word slice.
// Callers own bounds checking; indices past the last word panic like any
// slice access.
type Set []uint64

// New creates a zeroed Set able to hold n bits.
func New(n int) Set {
	return make(Set, Words(n))
}

// Add sets bit i.
func (s Set) Add(i int) {
	s[i>>wordShift] |= 1 << (uint(i) & wordMask)
}

// Remove clears bit i.
func (s Set) Remove(i int) {
	s[i>>wordShift] &^= 1 << (uint(i) & wordMask)
}

// Contains reports whether bit i is set.
func (s Set) Contains(i int) bool {
	return s[i>>wordShift]&(1<<(uint(i)&wordMask)) != 0
}

// TestAndAdd sets bit i and returns true if it was ALREADY set.
func (s Set) TestAndAdd(i int) bool {
	w := &s[i>>wordShift]
	mask := uint64(1) << (uint(i) & wordMask)
	if *w&mask != 0 {
		return true
	}
	*w |= mask
	return false
}

// Count returns the number of set bits.
func (s Set) Count() int {
	count := 0
	for _, w := range s {
		if w != 0 {
			count += bits.OnesCount64(w)
		}
	}
	return count
}

// Reset clears all bits.
func (s Set) Reset() {
	clear(s)
}

// ForEach calls fn for every set bit below limit in ascending order.
//
// Each word is consumed by repeatedly taking its lowest set bit
// (TrailingZeros64) and clearing it (w &= w-1), so empty words cost one
// comparison and each set bit costs O(1). Iteration stops early when fn
// returns false; ForEach then returns false.
func (s Set) ForEach(limit int, fn func(i int) bool) bool {
	for wi, w := range s {
		base := wi << wordShift
		for w != 0 {
			i := base + bits.TrailingZeros64(w)
			if i >= limit {
				// Every later bit is also past the limit.
				return true
			}
			if !fn(i) {
				return false
			}
			w &= w - 1
		}
	}
	return true
}

// NextSet returns the index of the first set bit at or after i and below
// limit.
func (s Set) NextSet(i, limit int) (int, bool) {
	if i < 0 {
		i = 0
	}
	if i >= limit {
		return 0, false
	}
	wi := i >> wordShift
	if wi >= len(s) {
		return 0, false
	}

	// Mask out bits before i in the first word.
	w := s[wi] &^ ((uint64(1) << (uint(i) & wordMask)) - 1)
	for {
		if w != 0 {
			n := wi<<wordShift + bits.TrailingZeros64(w)
			if n >= limit {
				return 0, false
			}
			return n, true
		}
		wi++
		if wi >= len(s) {
			return 0, false
		}
		w = s[wi]
	}
}

// HasBitsFrom reports whether any bit at position >= limit is set.
// Used to detect corrupted padding in the last word of a row.
func (s Set) HasBitsFrom(limit int) bool {
	if limit < 0 {
		limit = 0
	}
	wi := limit >> wordShift
	if wi >= len(s) {
		return false
	}
	if s[wi]&^((uint64(1)<<(uint(limit)&wordMask))-1) != 0 {
		return true
	}
	for _, w := range s[wi+1:] {
		if w != 0 {
			return true
		}
	}
	return false
}

// AppendWords appends words to dst in little-endian byte order.
func AppendWords(dst []byte, words []uint64) []byte {
	for _, w := range words {
		dst = binary.LittleEndian.AppendUint64(dst, w)
	}
	return dst
}

// DecodeWords fills dst from little-endian src. src must hold exactly
// 8*len(dst) bytes.
func DecodeWords(dst []uint64, src []byte) error {
	if len(src) != len(dst)*8 {
		return fmt.Errorf("bitset: expected %d bytes, got %d", len(dst)*8, len(src))
	}
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(src[i*8:])
	}
	return nil
}
