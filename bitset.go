package funwithbits

import (
	"fmt"
	"log/slog"
	"strings"
)

// Bitset is a fixed width vector of bits stored in a single word. Bit i has the value 2^i,
// bits at or above Len() are always zero.
//
// A Bitset is not safe for concurrent mutation.
type Bitset struct {
	size int
	bits uint64
}

// New creates a bitset of DefaultSize bits with no bit set, unless configured otherwise.
func New(options ...Option) (*Bitset, error) {
	o := fillOpts(options...)
	if o.size < 1 || o.size > MaxSize {
		logger.Debug("bitset: rejected size", slog.Int("size", o.size))
		return nil, fmt.Errorf("%w: %d, must be between 1 and %d", ErrInvalidSize, o.size, MaxSize)
	}

	b := &Bitset{size: o.size, bits: o.value}
	b.truncate()
	return b, nil
}

func NewSized(size int, value uint64) (*Bitset, error) {
	return New(WithSize(size), WithValue(value))
}

func (b *Bitset) mask() uint64 {
	if b.size >= MaxSize {
		return ^uint64(0)
	}
	return uint64(1)<<b.size - 1
}

func (b *Bitset) truncate() {
	b.bits &= b.mask()
}

func (b *Bitset) checkIndex(op string, i int) error {
	if i < 0 {
		logger.Debug("bitset: negative index", slog.String("op", op), slog.Int("index", i))
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	if i >= b.size {
		logger.Debug("bitset: index out of range", slog.String("op", op), slog.Int("index", i), slog.Int("size", b.size))
		return &OutOfRangeError{Index: i, Size: b.size}
	}
	return nil
}

func (b *Bitset) checkOperand(op string, other *Bitset) error {
	if other == nil {
		logger.Debug("bitset: nil operand", slog.String("op", op))
		return fmt.Errorf("%w: %s with nil bitset", ErrInvalidArgument, op)
	}
	if other.size != b.size {
		logger.Debug("bitset: size mismatch", slog.String("op", op), slog.Int("size", b.size), slog.Int("other", other.size))
		return &SizeMismatchError{Expected: b.size, Actual: other.size}
	}
	return nil
}

func checkDistance(op string, distance int) error {
	if distance < 0 {
		logger.Debug("bitset: negative distance", slog.String("op", op), slog.Int("distance", distance))
		return fmt.Errorf("%w: %s distance %d must not be negative", ErrInvalidArgument, op, distance)
	}
	return nil
}

func (b *Bitset) Len() int {
	return b.size
}

// Get reports whether bit i is set. An index past the window is not an error, ok is false instead.
func (b *Bitset) Get(i int) (value bool, ok bool, err error) {
	if i < 0 {
		return false, false, b.checkIndex("get", i)
	}
	if i >= b.size {
		return false, false, nil
	}
	return b.bits&(1<<i) != 0, true, nil
}

// Test is the strict form of Get, an index past the window returns an *OutOfRangeError.
func (b *Bitset) Test(i int) (bool, error) {
	if err := b.checkIndex("test", i); err != nil {
		return false, err
	}
	return b.bits&(1<<i) != 0, nil
}

func (b *Bitset) Set(i int) error {
	if err := b.checkIndex("set", i); err != nil {
		return err
	}
	b.bits |= 1 << i
	return nil
}

func (b *Bitset) SetAll() {
	b.bits = b.mask()
}

func (b *Bitset) Reset(i int) error {
	if err := b.checkIndex("reset", i); err != nil {
		return err
	}
	b.bits &^= 1 << i
	return nil
}

// ResetAll clears the whole word.
func (b *Bitset) ResetAll() {
	b.bits = 0
}

func (b *Bitset) Flip(i int) error {
	if err := b.checkIndex("flip", i); err != nil {
		return err
	}
	b.bits ^= 1 << i
	return nil
}

// FlipAll toggles every bit of the window.
func (b *Bitset) FlipAll() {
	b.bits ^= b.mask()
}

// Count returns the number of set bits. It scans the window bit by bit.
func (b *Bitset) Count() int {
	n := 0
	for i := 0; i < b.size; i++ {
		if b.bits&(1<<i) != 0 {
			n++
		}
	}
	return n
}

func (b *Bitset) All() bool {
	return b.bits == b.mask()
}

func (b *Bitset) Any() bool {
	return b.bits != 0
}

func (b *Bitset) None() bool {
	return !b.Any()
}

// Clone returns an independent copy.
func (b *Bitset) Clone() *Bitset {
	return &Bitset{size: b.size, bits: b.bits}
}

// Complement returns a new bitset with every bit of the window inverted.
func (b *Bitset) Complement() *Bitset {
	c := b.Clone()
	c.FlipAll()
	return c
}

func (b *Bitset) And(other *Bitset) error {
	return b.combine("and", other, func(x, y bool) bool { return x && y })
}

func (b *Bitset) Or(other *Bitset) error {
	return b.combine("or", other, func(x, y bool) bool { return x || y })
}

func (b *Bitset) Xor(other *Bitset) error {
	return b.combine("xor", other, func(x, y bool) bool { return x != y })
}

// combine rebuilds the receiver from the most significant bit down, one position at a time.
func (b *Bitset) combine(op string, other *Bitset, fn func(x, y bool) bool) error {
	if err := b.checkOperand(op, other); err != nil {
		return err
	}

	var result uint64
	for i := b.size - 1; i >= 0; i-- {
		result <<= 1
		if fn(b.bits&(1<<i) != 0, other.bits&(1<<i) != 0) {
			result |= 1
		}
	}
	b.bits = result
	return nil
}

// ShiftLeft moves every bit towards higher indices. Bits pushed past the window are lost.
func (b *Bitset) ShiftLeft(distance int) error {
	if err := checkDistance("shift left", distance); err != nil {
		return err
	}
	b.bits <<= distance
	b.truncate()
	return nil
}

// ShiftedLeft is ShiftLeft on a copy; the receiver is unchanged.
func (b *Bitset) ShiftedLeft(distance int) (*Bitset, error) {
	c := b.Clone()
	if err := c.ShiftLeft(distance); err != nil {
		return nil, err
	}
	return c, nil
}

// ShiftRight moves every bit towards lower indices, the vacated high bits become zero.
func (b *Bitset) ShiftRight(distance int) error {
	if err := checkDistance("shift right", distance); err != nil {
		return err
	}
	b.bits >>= distance
	return nil
}

func (b *Bitset) ShiftedRight(distance int) (*Bitset, error) {
	c := b.Clone()
	if err := c.ShiftRight(distance); err != nil {
		return nil, err
	}
	return c, nil
}

// Uint64 returns the value of the window read as an unsigned binary number.
func (b *Bitset) Uint64() uint64 {
	return b.bits
}

// String renders the window as '0' and '1', most significant bit first.
func (b *Bitset) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for i := b.size - 1; i >= 0; i-- {
		if b.bits&(1<<i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Equal reports whether both bitsets have the same size and the same bits.
func (b *Bitset) Equal(other *Bitset) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.size == other.size && b.bits == other.bits
}
