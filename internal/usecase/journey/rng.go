package journey

import (
	"math/rand/v2"
	"time"
)

// RNG is the injectable random source for every probability roll in the
// scheduler. Seeded implementations make scheduling decisions reproducible.
type RNG interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). Panics when n <= 0.
	IntN(n int) int
}

type pcgRNG struct {
	*rand.Rand
}

// NewRNG returns a seeded RNG backed by math/rand/v2.
func NewRNG(seed uint64) RNG {
	return pcgRNG{rand.New(rand.NewPCG(seed, seed<<32|seed>>32))}
}

// NewClockRNG returns an RNG seeded from the wall clock, for production use.
func NewClockRNG() RNG {
	return NewRNG(uint64(time.Now().UnixNano()))
}
