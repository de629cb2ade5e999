//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/hupe1980/bitgraph"
	"github.com/stretchr/testify/assert"
)

func TestUint64ToInt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := Uint64ToInt(123)
		assert.NoError(t, err)
		assert.Equal(t, 123, got)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := Uint64ToInt(math.MaxUint64)
		assert.ErrorIs(t, err, bitgraph.ErrInvalidArgument)
	})
}

func TestIntToUint64(t *testing.T) {
	got, err := IntToUint64(7)
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), got)

	_, err = IntToUint64(-1)
	assert.ErrorIs(t, err, bitgraph.ErrInvalidArgument)
}

func TestIntToInt32(t *testing.T) {
	got, err := IntToInt32(math.MaxInt32)
	assert.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), got)

	_, err = IntToInt32(math.MaxInt32 + 1)
	assert.Error(t, err)
}

func TestMulInt(t *testing.T) {
	got, err := MulInt(5000, 79)
	assert.NoError(t, err)
	assert.Equal(t, 395000, got)

	got, err = MulInt(0, math.MaxInt)
	assert.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = MulInt(math.MaxInt/2, 3)
	assert.ErrorIs(t, err, bitgraph.ErrInvalidArgument)

	_, err = MulInt(-1, 3)
	assert.Error(t, err)
}
