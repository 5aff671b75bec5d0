package mrg

import (
	"time"

	"github.com/tutils/mrgrand/counter"
)

// Options is generator options
type Options struct {
	seedKey    int
	hasSeedKey bool

	mean, stdDev float64
	low, high    float64

	clock func() time.Time
	steps counter.Counter
}

// Option is option setter for generator
type Option func(*Options)

// default generator options
var (
	DefaultMean        = 0.0
	DefaultStdDev      = 1.0
	DefaultUniformLow  = 0.0
	DefaultUniformHigh = 1.0
)

func newOptions(opts ...Option) *Options {
	opt := &Options{
		mean:   DefaultMean,
		stdDev: DefaultStdDev,
		low:    DefaultUniformLow,
		high:   DefaultUniformHigh,
		clock:  time.Now,
	}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

// WithSeedKey sets an explicit seed key in [1, NumSeedKeys]
func WithSeedKey(key int) Option {
	return func(opts *Options) {
		opts.seedKey = key
		opts.hasSeedKey = true
	}
}

// WithNormal sets the mean and standard deviation used by Normal
func WithNormal(mean, stdDev float64) Option {
	return func(opts *Options) {
		opts.mean = mean
		opts.stdDev = stdDev
	}
}

// WithUniform sets the bounds used by Uniform
func WithUniform(low, high float64) Option {
	return func(opts *Options) {
		opts.low = low
		opts.high = high
	}
}

// WithClock sets the clock consulted when no seed key is given
func WithClock(clock func() time.Time) Option {
	return func(opts *Options) {
		if clock != nil {
			opts.clock = clock
		}
	}
}

// WithStepCounter sets a counter incremented once per recurrence step
func WithStepCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.steps = c
	}
}
