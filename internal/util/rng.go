package util

import "math/rand"

// NewRNG returns a deterministic rand.Rand for the given seed. A zero seed is
// remapped so callers can treat zero as "unset".
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
