package combat

// Rand is the only source of randomness the core uses. *math/rand.Rand
// satisfies it; tests plug in scripted streams.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// chance reports whether an event of probability p fires. Certain and
// impossible events do not consume a draw.
func chance(rng Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rng.Float64() < p
}

// between returns a uniform integer in [lo, hi].
func between(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
