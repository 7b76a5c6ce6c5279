package funwithbits

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestToBitSet(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		value uint64
	}{
		{"Empty", 8, 0},
		{"Sparse", 8, 0b10000001},
		{"Dense", 16, 0xFFFF},
		{"Full word", 64, 1<<63 | 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustNew(t, tt.size, tt.value)
			bs := b.ToBitSet()
			assert.Equal(t, uint(tt.size), bs.Len())
			assert.Equal(t, uint(b.Count()), bs.Count(), "Count() mismatch")
			for i := 0; i < tt.size; i++ {
				v, _ := b.Test(i)
				assert.Equal(t, v, bs.Test(uint(i)), "bit %d mismatch", i)
			}

			back, err := FromBitSet(tt.size, bs)
			require.NoError(t, err)
			assert.True(t, back.Equal(b))
		})
	}
}

func TestFromBitSetTruncates(t *testing.T) {
	bs := bitset.New(128)
	bs.Set(1).Set(3).Set(4).Set(100)

	b, err := FromBitSet(4, bs)
	require.NoError(t, err)
	assert.Equal(t, "1010", b.String())
}

func TestFromBitSetErrors(t *testing.T) {
	_, err := FromBitSet(4, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FromBitSet(0, bitset.New(8))
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestToRoaring(t *testing.T) {
	b := mustNew(t, 8, 0b10100101)
	rb := b.ToRoaring()
	assert.Equal(t, uint64(b.Count()), rb.GetCardinality())
	assert.Equal(t, []uint32{0, 2, 5, 7}, rb.ToArray())

	back, err := FromRoaring(8, rb)
	require.NoError(t, err)
	assert.True(t, back.Equal(b))
}

func TestFromRoaringTruncates(t *testing.T) {
	rb := roaring.BitmapOf(0, 2, 3, 9, 1000)

	b, err := FromRoaring(4, rb)
	require.NoError(t, err)
	assert.Equal(t, "1101", b.String())

	_, err = FromRoaring(4, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FromRoaring(65, rb)
	assert.ErrorIs(t, err, ErrInvalidSize)
}
