package utils

import (
	"math/rand"
	"time"
)

// RandSource is a seeded random number generator used to sweep parameter
// space in property tests. It is not safe for concurrent use.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a new random source with the given seed
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a random float64 in [0.0, 1.0)
func (r *RandSource) Float64() float64 {
	return r.rng.Float64()
}

// Intn returns a random int in [0, n)
func (r *RandSource) Intn(n int) int {
	return r.rng.Intn(n)
}

// UniformFloat64 returns a uniformly distributed random number in [min, max)
func (r *RandSource) UniformFloat64(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// StepFloat64 returns a random point of the grid min, min+step, ... <= max,
// the way a slider with those bounds can be positioned.
func (r *RandSource) StepFloat64(min, max, step float64) float64 {
	if step <= 0 || max <= min {
		return min
	}
	n := int((max-min)/step+1e-9) + 1
	return SnapToStep(min+float64(r.rng.Intn(n))*step, min, step)
}
