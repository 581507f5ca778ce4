// Package dice provides the randomness source shared by every game system.
//
// All random decisions (damage rolls, flee attempts, loot drops, event and
// enemy selection) go through a Roller so tests can substitute a seeded or
// scripted source.
package dice

import (
	"math/rand"
	"time"
)

// Roller is the randomness provider for the game.
type Roller interface {
	// Between returns a uniform random int in [min, max], both inclusive.
	Between(min, max int) int
	// Pick returns a uniform random index in [0, n). n must be > 0.
	Pick(n int) int
	// Chance reports true with probability p.
	Chance(p float64) bool
}

// Rand is a Roller backed by math/rand.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a Roller from a seed.
// A seed of 0 means a time-based seed is used.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Between returns a uniform random int in [min, max]. Swapped bounds are
// normalised.
func (r *Rand) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}

// Pick returns a uniform random index in [0, n).
func (r *Rand) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.rng.Float64() < p
}

var _ Roller = (*Rand)(nil)
