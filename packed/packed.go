package packed

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math/bits"

	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/internal/conv"
)

// Array stores n unsigned values of bitWidth bits each, packed perWord to a
// 64-bit word. A value never spans two words; the high 64 % bitWidth bits of
// every word are unused and stay zero.
//
// The width is derived from n so that every index in [0, n) fits:
//
//	bitWidth = max(1, bits.Len(n-1))
//	perWord  = 64 / bitWidth
//
// Arrays are not safe for concurrent mutation.
type Array struct {
	n        int
	bitWidth uint
	perWord  int
	mask     uint64
	strict   bool
	words    []uint64
}

// New allocates a zeroed array of n values.
func New(n int, optFns ...Option) (*Array, error) {
	if err := bitgraph.CheckCount("packed.New", n); err != nil {
		return nil, err
	}

	opts := options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	return newArray(n, opts.strict), nil
}

func newArray(n int, strict bool) *Array {
	width := uint(max(1, bits.Len(uint(n-1))))
	perWord := 64 / int(width)
	return &Array{
		n:        n,
		bitWidth: width,
		perWord:  perWord,
		mask:     (uint64(1) << width) - 1,
		strict:   strict,
		words:    make([]uint64, (n+perWord-1)/perWord),
	}
}

// Len returns the number of elements.
func (a *Array) Len() int { return a.n }

// BitWidth returns the number of bits per element.
func (a *Array) BitWidth() int { return int(a.bitWidth) }

// PerWord returns the number of elements per 64-bit word.
func (a *Array) PerWord() int { return a.perWord }

// WordCount returns the number of backing words.
func (a *Array) WordCount() int { return len(a.words) }

// MaxValue returns the largest storable value, 2^bitWidth - 1.
func (a *Array) MaxValue() uint64 { return a.mask }

// Strict reports whether out-of-range values are rejected.
func (a *Array) Strict() bool { return a.strict }

// Words returns the backing words. The slice aliases internal storage and
// must not be modified.
func (a *Array) Words() []uint64 { return a.words }

func (a *Array) locate(i int) (word int, shift uint) {
	return i / a.perWord, uint(i%a.perWord) * a.bitWidth
}

// Set stores v at index i. Bits of v above the width are discarded unless
// the array is strict, in which case ErrValueOutOfRange is returned.
func (a *Array) Set(i int, v uint64) error {
	if err := bitgraph.CheckIndex("packed.Set", i, a.n); err != nil {
		return err
	}
	if a.strict && v > a.mask {
		return a.valueError("packed.Set", i, v)
	}
	a.set(i, v)
	return nil
}

func (a *Array) set(i int, v uint64) {
	w, shift := a.locate(i)
	a.words[w] = a.words[w]&^(a.mask<<shift) | (v&a.mask)<<shift
}

// Get returns the value at index i.
func (a *Array) Get(i int) (uint64, error) {
	if err := bitgraph.CheckIndex("packed.Get", i, a.n); err != nil {
		return 0, err
	}
	return a.get(i), nil
}

func (a *Array) get(i int) uint64 {
	w, shift := a.locate(i)
	return (a.words[w] >> shift) & a.mask
}

// Load replaces every element with the corresponding value of src in a
// single pass. len(src) must equal Len.
//
// Negative values contribute their two's-complement low bits. A strict
// array validates all of src before writing anything.
func (a *Array) Load(src []int) error {
	if len(src) != a.n {
		return &bitgraph.SizeError{Op: "packed.Load", Want: a.n, Got: len(src)}
	}
	if a.strict {
		for i, v := range src {
			if v < 0 || uint64(v) > a.mask {
				return fmt.Errorf("packed.Load: index %d: value %d exceeds %d-bit width: %w",
					i, v, a.bitWidth, bitgraph.ErrValueOutOfRange)
			}
		}
	}

	// Build each word in a register and store it once.
	i := 0
	for w := range a.words {
		var word uint64
		end := min(i+a.perWord, a.n)
		for shift := uint(0); i < end; i++ {
			word |= (uint64(src[i]) & a.mask) << shift
			shift += a.bitWidth
		}
		a.words[w] = word
	}
	return nil
}

// CopyFrom overwrites a with the words of other. Both arrays must have the
// same word count.
func (a *Array) CopyFrom(other *Array) error {
	if other == nil {
		return fmt.Errorf("packed.CopyFrom: nil source: %w", bitgraph.ErrInvalidArgument)
	}
	if len(other.words) != len(a.words) {
		return &bitgraph.SizeError{Op: "packed.CopyFrom", Want: len(a.words), Got: len(other.words)}
	}
	copy(a.words, other.words)
	return nil
}

// All returns an iterator over (index, value) pairs in index order.
func (a *Array) All() iter.Seq2[int, uint64] {
	return func(yield func(int, uint64) bool) {
		i := 0
		for _, word := range a.words {
			for k := 0; k < a.perWord && i < a.n; k++ {
				if !yield(i, word&a.mask) {
					return
				}
				word >>= a.bitWidth
				i++
			}
		}
	}
}

// Ints returns the values as a plain slice.
func (a *Array) Ints() []int {
	out := make([]int, 0, a.n)
	for _, v := range a.All() {
		out = append(out, int(v))
	}
	return out
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	c := *a
	c.words = make([]uint64, len(a.words))
	copy(c.words, a.words)
	return &c
}

// Reset zeroes every element.
func (a *Array) Reset() {
	clear(a.words)
}

func (a *Array) valueError(op string, i int, v uint64) error {
	return fmt.Errorf("%s: index %d: value %d exceeds %d-bit width: %w",
		op, i, v, a.bitWidth, bitgraph.ErrValueOutOfRange)
}

const headerSize = 9

// MarshalBinary encodes the array as a little-endian uint64 length, a
// uint8 bit width and the backing words.
func (a *Array) MarshalBinary() ([]byte, error) {
	n, err := conv.IntToUint64(a.n)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, headerSize+len(a.words)*8)
	buf = binary.LittleEndian.AppendUint64(buf, n)
	buf = append(buf, byte(a.bitWidth))
	for _, w := range a.words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return buf, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary, replacing the
// contents of a. The strict setting of a is preserved.
func (a *Array) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return &bitgraph.SizeError{Op: "packed.UnmarshalBinary", Want: headerSize, Got: len(data)}
	}
	n, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(data))
	if err != nil {
		return fmt.Errorf("packed.UnmarshalBinary: %w", err)
	}
	if err := bitgraph.CheckCount("packed.UnmarshalBinary", n); err != nil {
		return err
	}

	width := uint(max(1, bits.Len(uint(n-1))))
	if uint(data[8]) != width {
		return &bitgraph.SizeError{Op: "packed.UnmarshalBinary: bit width", Want: int(width), Got: int(data[8])}
	}
	perWord := 64 / int(width)
	wordCount := (n + perWord - 1) / perWord

	bodyLen, err := conv.MulInt(wordCount, 8)
	if err != nil {
		return fmt.Errorf("packed.UnmarshalBinary: %w", err)
	}
	body := data[headerSize:]
	if len(body) != bodyLen {
		return &bitgraph.SizeError{Op: "packed.UnmarshalBinary", Want: headerSize + bodyLen, Got: len(data)}
	}

	decoded := newArray(n, a.strict)
	for i := range decoded.words {
		decoded.words[i] = binary.LittleEndian.Uint64(body[i*8:])
	}
	if err := decoded.checkPadding(); err != nil {
		return err
	}
	*a = *decoded
	return nil
}

// checkPadding verifies that bits outside the n fields are zero: the high
// bits of every word and the unused slots of the last word.
func (a *Array) checkPadding() error {
	last := len(a.words) - 1
	for i, w := range a.words {
		slots := a.perWord
		if i == last {
			slots = a.n - last*a.perWord
		}
		used := uint(slots) * a.bitWidth
		if used < 64 && w>>used != 0 {
			return fmt.Errorf("packed.UnmarshalBinary: word %d has padding bits set: %w", i, bitgraph.ErrInvalidArgument)
		}
	}
	return nil
}
