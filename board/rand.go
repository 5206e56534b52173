package board

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for mine placement
// *rand.Rand from math/rand/v2 satisfies it
type Rand interface {
	IntN(n int) int
}

// Option configures a Board at construction
type Option func(*Board)

// WithRand injects the random source for mine placement
func WithRand(r Rand) Option {
	return func(b *Board) {
		if r != nil {
			b.rng = r
		}
	}
}

// WithSeed makes mine placement deterministic for the given seed
func WithSeed(seed uint64) Option {
	return func(b *Board) {
		b.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func defaultRand() Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>17))
}
