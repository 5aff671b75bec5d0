/*
Package mrg implements a multiple recursive generator of order 4 together
with uniform and normal (Box-Muller) transforms over it.

	// Fixed seed key, unit uniform and standard normal
	gen, err := mrg.NewSeeded(5)
	x := gen.Uniform()
	z := gen.Normal()

	// Everything configured
	gen, err = mrg.New(
		mrg.WithSeedKey(5),
		mrg.WithNormal(10, 2),
		mrg.WithUniform(100, 200),
	)

	// Seed key picked from the wall clock
	gen2 := mrg.NewTimeSeed()

A Generator is not safe for concurrent use.
*/
package mrg

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/tutils/mrgrand/counter"
)

const (
	// Modulus is 2^32 + 15.
	Modulus uint64 = 4294967311
	// Order is the number of previous values the recurrence depends on.
	Order = 4
	// NumSeedKeys is the number of rows in the seed table. Valid keys are
	// 1..NumSeedKeys.
	NumSeedKeys = 24
)

// ErrInvalidSeedKey is returned when an explicit seed key is outside
// [1, NumSeedKeys].
var ErrInvalidSeedKey = errors.New("invalid seed key")

var coefficients = [Order]uint64{1664543, 1013904223, 1289, 124897}

// seedTable holds every permutation of 11981, 4001, 1013, 1997. Row k-1 is
// the initial state for key k.
var seedTable = [NumSeedKeys][Order]uint64{
	{11981, 4001, 1013, 1997},
	{11981, 4001, 1997, 1013},
	{11981, 1013, 4001, 1997},
	{11981, 1013, 1997, 4001},
	{11981, 1997, 4001, 1013},
	{11981, 1997, 1013, 4001},
	{4001, 11981, 1013, 1997},
	{4001, 11981, 1997, 1013},
	{4001, 1013, 11981, 1997},
	{4001, 1013, 1997, 11981},
	{4001, 1997, 11981, 1013},
	{4001, 1997, 1013, 11981},
	{1013, 11981, 4001, 1997},
	{1013, 11981, 1997, 4001},
	{1013, 4001, 11981, 1997},
	{1013, 4001, 1997, 11981},
	{1013, 1997, 11981, 4001},
	{1013, 1997, 4001, 11981},
	{1997, 11981, 4001, 1013},
	{1997, 11981, 1013, 4001},
	{1997, 4001, 11981, 1013},
	{1997, 4001, 1013, 11981},
	{1997, 1013, 11981, 4001},
	{1997, 1013, 4001, 11981},
}

// Generator is a random number generator.
type Generator struct {
	state [Order]uint64
	key   int

	mean, stdDev float64
	low, high    float64

	cached    float64
	hasCached bool

	steps counter.Counter
}

// SeedState returns the initial recurrence state for a seed key.
func SeedState(key int) ([Order]uint64, error) {
	if key < 1 || key > NumSeedKeys {
		return [Order]uint64{}, errors.Wrapf(ErrInvalidSeedKey,
			"key %d, must be between 1 and %d", key, NumSeedKeys)
	}
	return seedTable[key-1], nil
}

// TimeSeedKey maps a wall clock time to a seed key in [1, NumSeedKeys].
func TimeSeedKey(t time.Time) int {
	ms := t.UnixMilli() % NumSeedKeys
	if ms < 0 {
		ms += NumSeedKeys
	}
	return int(ms) + 1
}

// New returns a new generator. Without WithSeedKey the key is taken from
// the clock.
func New(opts ...Option) (*Generator, error) {
	opt := newOptions(opts...)

	key := opt.seedKey
	if !opt.hasSeedKey {
		key = TimeSeedKey(opt.clock())
	}
	state, err := SeedState(key)
	if err != nil {
		return nil, err
	}

	return &Generator{
		state:  state,
		key:    key,
		mean:   opt.mean,
		stdDev: opt.stdDev,
		low:    opt.low,
		high:   opt.high,
		steps:  opt.steps,
	}, nil
}

// NewSeeded returns a generator with an explicit seed key, a unit uniform
// range and a standard normal distribution.
func NewSeeded(key int) (*Generator, error) {
	return New(WithSeedKey(key))
}

// NewTimeSeed returns a generator seeded from the current time, with a unit
// uniform range and a standard normal distribution.
func NewTimeSeed() *Generator {
	gen, err := New()
	if err != nil {
		// TimeSeedKey never leaves the table.
		panic(err)
	}
	return gen
}

// SeedKey returns the key the generator was seeded with.
func (gen *Generator) SeedKey() int { return gen.key }

// State returns a copy of the current recurrence window.
func (gen *Generator) State() [Order]uint64 { return gen.state }

// Mean returns the mean of the normal distribution.
func (gen *Generator) Mean() float64 { return gen.mean }

// StdDev returns the standard deviation of the normal distribution.
func (gen *Generator) StdDev() float64 { return gen.stdDev }

// UniformRange returns the bounds used by Uniform.
func (gen *Generator) UniformRange() (low, high float64) { return gen.low, gen.high }

// Reset rewinds the generator to its seeded state and drops any cached
// normal value.
func (gen *Generator) Reset() {
	gen.state = seedTable[gen.key-1]
	gen.cached, gen.hasCached = 0, false
}

func (gen *Generator) step() uint64 {
	// Sum of coefficients times (Modulus-1) is below 2^63.
	var next uint64
	for i, a := range coefficients {
		next += a * gen.state[i]
	}
	next %= Modulus

	copy(gen.state[:], gen.state[1:])
	gen.state[Order-1] = next

	if gen.steps != nil {
		gen.steps.Add(1)
	}
	return next
}

// unit maps a raw value into the open interval (0, 1).
func unit(raw uint64) float64 {
	return (float64(raw) + 1.0) / (float64(Modulus) + 1.0)
}

// Next advances the recurrence once and returns the raw value in
// [0, Modulus).
func (gen *Generator) Next() uint64 {
	return gen.step()
}

// Uniform returns a float uniformly at random within the generator's range.
// Bounds are not validated: an inverted range yields values inside the
// inverted interval and an empty range yields low.
func (gen *Generator) Uniform() float64 {
	return gen.low + unit(gen.step())*(gen.high-gen.low)
}

// Normal returns a normally distributed float. Values are produced in
// pairs: one call consumes two recurrence steps and caches the second value,
// the following call returns the cached value without stepping.
func (gen *Generator) Normal() float64 {
	if gen.hasCached {
		gen.hasCached = false
		return gen.cached
	}

	u1 := unit(gen.step())
	u2 := unit(gen.step())

	r := math.Sqrt(-2.0 * math.Log(u1))
	theta := 2.0 * math.Pi * u2
	z1 := r * math.Cos(theta)
	z2 := r * math.Sin(theta)

	gen.cached, gen.hasCached = z2*gen.stdDev+gen.mean, true
	return z1*gen.stdDev + gen.mean
}

// UniformAt writes uniform values to every element of target.
func (gen *Generator) UniformAt(target []float64) {
	for i := range target {
		target[i] = gen.Uniform()
	}
}

// NormalAt writes normal values to every element of target.
func (gen *Generator) NormalAt(target []float64) {
	for i := range target {
		target[i] = gen.Normal()
	}
}
