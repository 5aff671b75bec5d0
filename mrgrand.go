package mrgrand

import (
	"sync"

	"github.com/tutils/mrgrand/mrg"
)

// Locked is a concurrency safe generator
type Locked struct {
	gen *mrg.Generator
	mu  sync.Mutex
}

// NewLocked wraps gen. gen must not be used directly afterwards.
func NewLocked(gen *mrg.Generator) *Locked {
	return &Locked{gen: gen}
}

// Uniform returns the next uniform value of the wrapped generator
func (l *Locked) Uniform() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Uniform()
}

// Normal returns the next normal value of the wrapped generator
func (l *Locked) Normal() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Normal()
}

// Next advances the wrapped generator and returns the raw value in [0, mrg.Modulus)
func (l *Locked) Next() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Next()
}

// SeedKey returns the key of the wrapped generator
func (l *Locked) SeedKey() int {
	return l.gen.SeedKey()
}
