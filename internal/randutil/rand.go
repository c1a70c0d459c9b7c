// Package randutil builds reproducible random sources and random darts.
package randutil

import (
	rand "math/rand/v2"

	"github.com/lox/dartscore/darts"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from seed. Both PCG
// words are derived from it so nearby seeds give unrelated sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the generator for stream n of seed. Legs use their index
// as the stream so each one replays the same way whichever worker runs it.
func Derive(seed int64, n int) *rand.Rand {
	return New(int64(mix(uint64(seed) ^ mix(uint64(n)*goldenRatio64+1))))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Throw picks a spot on the board with roughly club-player weights: one
// dart in ten misses, doubles and trebles take a quarter between them.
func Throw(rng *rand.Rand) darts.Throw {
	roll := rng.IntN(100)
	switch {
	case roll < 10:
		return darts.NewThrow(darts.Miss, 0)
	case roll < 14:
		return darts.NewThrow(darts.Bull, 25)
	case roll < 16:
		return darts.NewThrow(darts.Bullseye, 50)
	case roll < 28:
		return darts.NewThrow(darts.Double, 1+rng.IntN(20))
	case roll < 40:
		return darts.NewThrow(darts.Triple, 1+rng.IntN(20))
	default:
		return darts.NewThrow(darts.Single, 1+rng.IntN(20))
	}
}
