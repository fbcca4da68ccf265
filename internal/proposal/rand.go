package proposal

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for phrase, caption and position selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a PCG-backed source. A zero seed is replaced by the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// pick returns a uniformly chosen element of items, or "" when items is empty.
func pick(rng Rand, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[rng.IntN(len(items))]
}
