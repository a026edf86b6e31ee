// Package random provides the seeded random source used for weight
// initialization and dataset shuffling.
//
// All draws come from a single PCG stream, so results are reproducible given
// the seed and the sequence of calls.
package random

import (
	"math/rand/v2"
)

// Random is a seeded pseudo-random number source.
//
// Random is not safe for concurrent use.
type Random struct {
	src *rand.PCG
	rng *rand.Rand
}

// New creates a Random seeded with seed.
func New(seed uint64) *Random {
	src := rand.NewPCG(seed, seed)
	return &Random{
		src: src,
		rng: rand.New(src),
	}
}

// Seed resets the generator to the stream identified by seed.
func (r *Random) Seed(seed uint64) {
	r.src.Seed(seed, seed)
}

// GenerateUniform fills dst with values drawn uniformly from [min, max).
func (r *Random) GenerateUniform(dst []float64, minVal, maxVal float64) {
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rng.Float64()*span
	}
}

// GenerateNormal fills dst with values drawn from N(mean, stdev²).
func (r *Random) GenerateNormal(dst []float64, mean, stdev float64) {
	for i := range dst {
		dst[i] = mean + r.rng.NormFloat64()*stdev
	}
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}
