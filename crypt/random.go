package crypt

import (
	"math/rand"

	"github.com/tutils/mrgrand/mrg"
)

// RandomSourceNewer builds a seeded keystream source
type RandomSourceNewer func(seed int64) rand.Source

// NewMRGSource returns the MRG generator as a rand.Source. The seed is
// folded onto one of the generator's seed keys, so seeds congruent modulo
// mrg.NumSeedKeys share a keystream.
func NewMRGSource(seed int64) rand.Source {
	return mrg.NewSource(seed)
}
