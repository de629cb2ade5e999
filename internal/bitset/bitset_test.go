package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	assert.Equal(t, 0, Words(0))
	assert.Equal(t, 1, Words(1))
	assert.Equal(t, 1, Words(64))
	assert.Equal(t, 2, Words(65))
	assert.Equal(t, 79, Words(5000))
}

func TestSet(t *testing.T) {
	s := New(100)

	if len(s) != 2 {
		t.Fatalf("expected 2 words, got %d", len(s))
	}

	s.Add(10)
	if !s.Contains(10) {
		t.Errorf("expected bit 10 to be set")
	}

	if s.Count() != 1 {
		t.Errorf("expected count 1, got %d", s.Count())
	}

	s.Remove(10)
	if s.Contains(10) {
		t.Errorf("expected bit 10 to be unset")
	}

	s.Add(10)
	s.Add(64)
	s.Add(99)

	if s.Count() != 3 {
		t.Errorf("expected count 3, got %d", s.Count())
	}

	s.Reset()
	if s.Count() != 0 {
		t.Errorf("expected count 0 after reset, got %d", s.Count())
	}
}

func TestSet_TestAndAdd(t *testing.T) {
	s := New(100)
	if s.TestAndAdd(10) {
		t.Errorf("expected TestAndAdd(10) to return false (was unset)")
	}
	if !s.Contains(10) {
		t.Errorf("expected bit 10 to be set")
	}
	if !s.TestAndAdd(10) {
		t.Errorf("expected TestAndAdd(10) to return true (was set)")
	}
}

func TestSet_ForEach(t *testing.T) {
	s := New(200)
	for _, i := range []int{0, 3, 63, 64, 65, 127, 150, 199} {
		s.Add(i)
	}

	var got []int
	done := s.ForEach(200, func(i int) bool {
		got = append(got, i)
		return true
	})
	assert.True(t, done)
	assert.Equal(t, []int{0, 3, 63, 64, 65, 127, 150, 199}, got)

	// Limit cuts the scan even when later bits are set.
	got = got[:0]
	s.ForEach(128, func(i int) bool {
		got = append(got, i)
		return true
	})
	assert.Equal(t, []int{0, 3, 63, 64, 65, 127}, got)

	// Early stop.
	got = got[:0]
	done = s.ForEach(200, func(i int) bool {
		got = append(got, i)
		return len(got) < 2
	})
	assert.False(t, done)
	assert.Equal(t, []int{0, 3}, got)
}

func TestSet_ForEachEmpty(t *testing.T) {
	s := New(1000)
	called := false
	s.ForEach(1000, func(int) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestSet_NextSet(t *testing.T) {
	s := New(1000)
	s.Add(10)
	s.Add(20)
	s.Add(100)

	tests := []struct {
		start    int
		expected int
		found    bool
	}{
		{0, 10, true},
		{10, 10, true},
		{11, 20, true},
		{20, 20, true},
		{21, 100, true},
		{100, 100, true},
		{101, 0, false},
		{-4, 10, true},
	}

	for _, tt := range tests {
		got, found := s.NextSet(tt.start, 1000)
		if found != tt.found {
			t.Errorf("NextSet(%d) found = %v, expected %v", tt.start, found, tt.found)
		}
		if found && got != tt.expected {
			t.Errorf("NextSet(%d) = %d, expected %d", tt.start, got, tt.expected)
		}
	}

	_, found := s.NextSet(21, 100)
	assert.False(t, found, "bit 100 is at the limit and must not be reported")
}

func TestSet_HasBitsFrom(t *testing.T) {
	s := New(128)
	s.Add(5)
	assert.False(t, s.HasBitsFrom(6))
	assert.True(t, s.HasBitsFrom(5))

	s.Add(100)
	assert.True(t, s.HasBitsFrom(70))
	assert.False(t, s.HasBitsFrom(101))
	assert.False(t, s.HasBitsFrom(500))
}

func TestWordsEncoding(t *testing.T) {
	words := []uint64{0, 1, 0xdeadbeefcafebabe, ^uint64(0)}
	buf := AppendWords(nil, words)
	require.Len(t, buf, 32)
	assert.Equal(t, byte(1), buf[8])

	out := make([]uint64, len(words))
	require.NoError(t, DecodeWords(out, buf))
	assert.Equal(t, words, out)

	assert.Error(t, DecodeWords(out, buf[:31]))
}
