package funwithbits

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// ToBitSet copies the window into a bits-and-blooms bitset of length Len().
func (b *Bitset) ToBitSet() *bitset.BitSet {
	bs := bitset.New(uint(b.size))
	for i := 0; i < b.size; i++ {
		if b.bits&(1<<i) != 0 {
			bs.Set(uint(i))
		}
	}
	return bs
}

// FromBitSet builds a bitset of the given size from bs, dropping set bits at or above size.
func FromBitSet(size int, bs *bitset.BitSet) (*Bitset, error) {
	if bs == nil {
		return nil, fmt.Errorf("%w: nil bitset.BitSet", ErrInvalidArgument)
	}
	b, err := NewSized(size, 0)
	if err != nil {
		return nil, err
	}
	for i, ok := bs.NextSet(0); ok && i < uint(size); i, ok = bs.NextSet(i + 1) {
		b.bits |= 1 << i
	}
	return b, nil
}

// ToRoaring returns the indices of the set bits as a roaring bitmap.
func (b *Bitset) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for i := 0; i < b.size; i++ {
		if b.bits&(1<<i) != 0 {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// FromRoaring builds a bitset of the given size from the indices in rb, dropping those at or above size.
func FromRoaring(size int, rb *roaring.Bitmap) (*Bitset, error) {
	if rb == nil {
		return nil, fmt.Errorf("%w: nil roaring.Bitmap", ErrInvalidArgument)
	}
	b, err := NewSized(size, 0)
	if err != nil {
		return nil, err
	}
	it := rb.Iterator()
	for it.HasNext() {
		i := it.Next()
		if i >= uint32(size) {
			break
		}
		b.bits |= 1 << i
	}
	return b, nil
}
