package bitgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for non-positive vertex or element counts
	// and malformed input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when a vertex or element index is outside the
	// declared bounds.
	ErrOutOfRange = errors.New("index out of range")

	// ErrSizeMismatch is returned when two structures (or a structure and a
	// plain slice) must have the same size and do not.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrValueOutOfRange is returned by strict packed arrays when a value does
	// not fit into the configured bit width.
	ErrValueOutOfRange = errors.New("value out of range")
)

// IndexError reports an index outside [0, Limit).
//
// It unwraps to ErrOutOfRange.
type IndexError struct {
	Op    string
	Index int
	Limit int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Limit)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// SizeError reports two sizes that were required to match.
//
// It unwraps to ErrSizeMismatch.
type SizeError struct {
	Op   string
	Want int
	Got  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: size mismatch: want %d, got %d", e.Op, e.Want, e.Got)
}

func (e *SizeError) Unwrap() error { return ErrSizeMismatch }

// CheckIndex returns an *IndexError if i is outside [0, limit).
func CheckIndex(op string, i, limit int) error {
	if i < 0 || i >= limit {
		return &IndexError{Op: op, Index: i, Limit: limit}
	}
	return nil
}

// CheckCount returns ErrInvalidArgument if n is not positive.
func CheckCount(op string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s: count must be positive, got %d: %w", op, n, ErrInvalidArgument)
	}
	return nil
}
