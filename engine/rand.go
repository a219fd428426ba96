package engine

import "math/rand/v2"

// NewRand returns the seeded PCG source games and replays draw from
// The same seed always yields the same game for the same input stream
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
