package mrg

import "math/rand"

var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts a Generator to math/rand.
type Source struct {
	gen *Generator
}

// SourceSeedKey folds an arbitrary int64 seed onto a seed key.
func SourceSeedKey(seed int64) int {
	k := seed % NumSeedKeys
	if k < 0 {
		k += NumSeedKeys
	}
	return int(k) + 1
}

// NewSource returns a rand.Source backed by a Generator keyed from seed.
func NewSource(seed int64) rand.Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed implements rand.Source.
func (s *Source) Seed(seed int64) {
	key := SourceSeedKey(seed)
	s.gen = &Generator{
		state:  seedTable[key-1],
		key:    key,
		stdDev: DefaultStdDev,
		high:   DefaultUniformHigh,
	}
}

// Uint64 implements rand.Source64. Two steps supply the high and low 32 bits.
func (s *Source) Uint64() uint64 {
	hi := s.gen.step() & 0xffffffff
	lo := s.gen.step() & 0xffffffff
	return hi<<32 | lo
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
