package conv

import (
	"fmt"
	"math"

	"github.com/hupe1980/bitgraph"
)

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large): %w", v, bitgraph.ErrInvalidArgument)
	}
	return int(v), nil
}

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative): %w", v, bitgraph.ErrInvalidArgument)
	}
	return uint64(v), nil
}

// IntToInt32 converts int to int32 safely. Used for compact vertex ids in
// adjacency lists.
func IntToInt32(v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int32: %w", v, bitgraph.ErrInvalidArgument)
	}
	return int32(v), nil
}

// MulInt returns a*b for non-negative operands, or an error if the product
// overflows int.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: negative operand %d*%d: %w", a, b, bitgraph.ErrInvalidArgument)
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("integer overflow: %d*%d exceeds int: %w", a, b, bitgraph.ErrInvalidArgument)
	}
	return a * b, nil
}
