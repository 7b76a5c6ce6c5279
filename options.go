package funwithbits

const (
	DefaultSize = 8
	MaxSize     = 64 // one uint64 word
)

type Options struct {
	size  int
	value uint64
}

type Option func(*Options)

// WithSize sets the number of addressable bits, 1..MaxSize.
func WithSize(size int) Option {
	return func(o *Options) {
		o.size = size
	}
}

// WithValue sets the initial bit pattern. Bits outside the window are dropped.
func WithValue(value uint64) Option {
	return func(o *Options) {
		o.value = value
	}
}

func fillOpts(options ...Option) *Options {
	o := &Options{
		size: DefaultSize,
	}
	for _, opt := range options {
		opt(o)
	}
	return o
}
