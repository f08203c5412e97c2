package reverse

import "github.com/pkg/errors"

const DefaultStrategy = Slicing

type Options struct {
	// Strategy used by Reverser.Reverse.
	// Default Slicing.
	Strategy Strategy

	// Deepest recursion, in code units, the Recursion strategy may reach.
	// Longer inputs are reversed in chunks of this many units.
	// Default DefaultMaxRecursionDepth.
	MaxRecursionDepth int
}

func NewOptions() Options {
	return Options{
		Strategy:          DefaultStrategy,
		MaxRecursionDepth: DefaultMaxRecursionDepth,
	}
}

type Option func(*Options)

func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

func WithMaxRecursionDepth(depth int) Option {
	return func(o *Options) {
		o.MaxRecursionDepth = depth
	}
}

// A Reverser applies one configured strategy. It holds no mutable state and
// is safe for concurrent use.
type Reverser struct {
	opts Options
	fn   Func
}

func New(opts ...Option) (*Reverser, error) {
	o := NewOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !o.Strategy.Valid() {
		return nil, errors.Wrapf(ErrUnknownStrategy, "%v", o.Strategy)
	}
	if o.MaxRecursionDepth < 1 {
		return nil, errors.Errorf("max recursion depth must be at least 1, got %d", o.MaxRecursionDepth)
	}

	fn := o.Strategy.Func()
	if o.Strategy == Recursion {
		depth := o.MaxRecursionDepth
		fn = func(text string) string {
			return reverseRecursive(text, depth)
		}
	}

	return &Reverser{opts: o, fn: fn}, nil
}

func (r *Reverser) Strategy() Strategy {
	return r.opts.Strategy
}

func (r *Reverser) Reverse(text string) string {
	return r.fn(text)
}

func (r *Reverser) ReverseValue(v interface{}) (string, error) {
	return ReverseValue(r.fn, v)
}

func (r *Reverser) ReverseJSON(data []byte) ([]byte, error) {
	return ReverseJSON(r.fn, data)
}
