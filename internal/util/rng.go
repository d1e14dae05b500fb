package util

import "math/rand"

// New returns a seeded generator. A zero seed is remapped so that an unset
// flag still yields a reproducible stream.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Derive spreads run indices of a batch over distinct seeds.
func Derive(seed int64, run int) int64 {
	return seed + int64(run)*7919
}
