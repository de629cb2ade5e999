package packed

import (
	"testing"

	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Geometry(t *testing.T) {
	tests := []struct {
		n         int
		bitWidth  int
		perWord   int
		wordCount int
	}{
		{1, 1, 64, 1},
		{2, 1, 64, 1},
		{5, 3, 21, 1},
		{10, 4, 16, 1},
		{64, 6, 10, 7},
		{65, 7, 9, 8},
		{1000, 10, 6, 167},
	}
	for _, tt := range tests {
		a, err := New(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.n, a.Len())
		assert.Equal(t, tt.bitWidth, a.BitWidth(), "n=%d", tt.n)
		assert.Equal(t, tt.perWord, a.PerWord(), "n=%d", tt.n)
		assert.Equal(t, tt.wordCount, a.WordCount(), "n=%d", tt.n)
		assert.Equal(t, uint64(1)<<tt.bitWidth-1, a.MaxValue())
	}
}

func TestNew_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := New(n)
		assert.ErrorIs(t, err, bitgraph.ErrInvalidArgument)
	}
}

func TestSetGet_Masking(t *testing.T) {
	a, err := New(10)
	require.NoError(t, err)

	require.NoError(t, a.Set(3, 15))
	v, err := a.Get(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), v)

	require.NoError(t, a.Set(3, 20))
	v, err = a.Get(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), v)

	// Neighbours are untouched.
	for _, i := range []int{2, 4} {
		v, err := a.Get(i)
		require.NoError(t, err)
		assert.Zero(t, v)
	}
}

func TestSetGet_OutOfRange(t *testing.T) {
	a, err := New(4)
	require.NoError(t, err)

	for _, i := range []int{-1, 4, 100} {
		assert.ErrorIs(t, a.Set(i, 1), bitgraph.ErrOutOfRange)
		_, err := a.Get(i)
		assert.ErrorIs(t, err, bitgraph.ErrOutOfRange)
	}
}

func TestSetGet_RoundTripRandom(t *testing.T) {
	rng := testutil.NewRNG(11)
	for _, n := range []int{1, 3, 63, 64, 100, 4097} {
		a, err := New(n)
		require.NoError(t, err)

		want := make([]uint64, n)
		for i := range want {
			v := uint64(rng.Intn(1 << 20))
			require.NoError(t, a.Set(i, v))
			want[i] = v & a.MaxValue()
		}
		for i, w := range want {
			got, err := a.Get(i)
			require.NoError(t, err)
			require.Equal(t, w, got, "n=%d i=%d", n, i)
		}

		// Unused high bits of every word stay zero.
		used := uint(a.PerWord() * a.BitWidth())
		if used < 64 {
			for _, w := range a.Words() {
				require.Zero(t, w>>used, "n=%d", n)
			}
		}
	}
}

func TestStrict(t *testing.T) {
	a, err := New(10, WithStrict())
	require.NoError(t, err)
	assert.True(t, a.Strict())

	require.NoError(t, a.Set(3, 15))
	err = a.Set(3, 16)
	assert.ErrorIs(t, err, bitgraph.ErrValueOutOfRange)

	v, err := a.Get(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), v)
}

func TestLoad(t *testing.T) {
	a, err := New(5)
	require.NoError(t, err)

	require.NoError(t, a.Load([]int{0, 1, 2, 7, 9}))
	assert.Equal(t, []int{0, 1, 2, 7, 1}, a.Ints())

	// -1 keeps its low three bits.
	require.NoError(t, a.Load([]int{-1, 0, 0, 0, 0}))
	v, err := a.Get(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v)

	err = a.Load([]int{1, 2})
	require.ErrorIs(t, err, bitgraph.ErrSizeMismatch)
	var se *bitgraph.SizeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 5, se.Want)
	assert.Equal(t, 2, se.Got)
}

func TestLoad_StrictIsAtomic(t *testing.T) {
	a, err := New(5, WithStrict())
	require.NoError(t, err)
	require.NoError(t, a.Load([]int{1, 2, 3, 4, 0}))

	assert.ErrorIs(t, a.Load([]int{0, 0, 0, 0, 8}), bitgraph.ErrValueOutOfRange)
	assert.ErrorIs(t, a.Load([]int{0, -1, 0, 0, 0}), bitgraph.ErrValueOutOfRange)
	assert.Equal(t, []int{1, 2, 3, 4, 0}, a.Ints())
}

func TestCopyFrom(t *testing.T) {
	src, err := New(10)
	require.NoError(t, err)
	require.NoError(t, src.Load([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}))

	// Same word count, different length.
	dst, err := New(12)
	require.NoError(t, err)
	require.Equal(t, src.WordCount(), dst.WordCount())
	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, src.Words(), dst.Words())

	big, err := New(100)
	require.NoError(t, err)
	assert.ErrorIs(t, big.CopyFrom(src), bitgraph.ErrSizeMismatch)
	assert.ErrorIs(t, big.CopyFrom(nil), bitgraph.ErrInvalidArgument)
}

func TestAll_EarlyStop(t *testing.T) {
	a, err := New(40)
	require.NoError(t, err)
	for i := 0; i < 40; i++ {
		require.NoError(t, a.Set(i, uint64(i)))
	}

	count := 0
	for i, v := range a.All() {
		assert.Equal(t, uint64(i), v)
		count++
		if i == 20 {
			break
		}
	}
	assert.Equal(t, 21, count)
}

func TestCloneReset(t *testing.T) {
	a, err := New(8)
	require.NoError(t, err)
	require.NoError(t, a.Set(1, 5))

	c := a.Clone()
	a.Reset()

	v, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), v)

	v, err = a.Get(1)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestMarshalBinary(t *testing.T) {
	a, err := New(100)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		require.NoError(t, a.Set(i, uint64(99-i)))
	}

	data, err := a.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, headerSize+a.WordCount()*8)

	var b Array
	require.NoError(t, b.UnmarshalBinary(data))
	assert.Equal(t, a.Ints(), b.Ints())
	assert.Equal(t, a.BitWidth(), b.BitWidth())

	assert.ErrorIs(t, b.UnmarshalBinary(data[:5]), bitgraph.ErrSizeMismatch)
	assert.ErrorIs(t, b.UnmarshalBinary(data[:len(data)-1]), bitgraph.ErrSizeMismatch)

	bad := append([]byte(nil), data...)
	bad[8] = 3
	assert.ErrorIs(t, b.UnmarshalBinary(bad), bitgraph.ErrSizeMismatch)
}

func TestUnmarshalBinary_RejectsPadding(t *testing.T) {
	encode := func(n int, words ...uint64) []byte {
		a, err := New(n)
		require.NoError(t, err)
		copy(a.words, words)
		data, err := a.MarshalBinary()
		require.NoError(t, err)
		return data
	}

	tests := []struct {
		name string
		data []byte
	}{
		// 10 fields of 4 bits use the low 40 bits of a single word.
		{"all ones", encode(10, ^uint64(0))},
		{"slot past n", encode(10, 0xf<<40)},
		// 100 fields of 7 bits: 9 per word, so bit 63 is never used.
		{"high bit", encode(100, 1<<63)},
		{"last word slot", encode(100, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1<<7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(3)
			require.NoError(t, err)
			require.NoError(t, b.Set(1, 2))

			err = b.UnmarshalBinary(tt.data)
			require.ErrorIs(t, err, bitgraph.ErrInvalidArgument)
			assert.Equal(t, 3, b.Len())
			assert.Equal(t, []int{0, 2, 0}, b.Ints())
		})
	}

	// Fully used fields still decode.
	ok := encode(10, 0xffffffffff)
	var b Array
	require.NoError(t, b.UnmarshalBinary(ok))
	v, err := b.Get(9)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), v)
}

func BenchmarkLoad(b *testing.B) {
	const n = 1 << 16
	a, err := New(n)
	require.NoError(b, err)
	src := testutil.NewRNG(1).Ints(n, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Load(src)
	}
}
