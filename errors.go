package funwithbits

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize     = errors.New("invalid bitset size")
	ErrInvalidIndex    = errors.New("bit index must not be negative")
	ErrOutOfRange      = errors.New("bit index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrSizeMismatch    = errors.New("bitsets must have the same size")
)

// OutOfRangeError is returned when a non-negative index does not address a bit of the window.
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for bitset of size %d", e.Index, e.Size)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// SizeMismatchError is returned by the binary operations when the operand width differs
// from the receiver width.
type SizeMismatchError struct {
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("size mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *SizeMismatchError) Is(target error) bool { return target == ErrSizeMismatch }
