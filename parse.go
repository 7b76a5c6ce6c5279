package funwithbits

import (
	"fmt"
	"log/slog"
)

// Parse reads the form produced by String: '0' and '1' only, most significant bit first.
// The width of the result is the length of s.
func Parse(s string) (*Bitset, error) {
	if len(s) < 1 || len(s) > MaxSize {
		logger.Debug("bitset: rejected bit string", slog.Int("len", len(s)))
		return nil, fmt.Errorf("%w: bit string of length %d", ErrInvalidSize, len(s))
	}

	var bits uint64
	for i := 0; i < len(s); i++ {
		bits <<= 1
		switch s[i] {
		case '1':
			bits |= 1
		case '0':
		default:
			logger.Debug("bitset: rejected bit string", slog.Int("offset", i))
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidArgument, s[i], i)
		}
	}
	return &Bitset{size: len(s), bits: bits}, nil
}
