package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t without clamping
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// CellIndex returns floor(v/cell) as int, zero for non-positive cell sizes
func CellIndex(v, cell float64) int {
	if cell <= 0 {
		return 0
	}
	return int(math.Floor(v / cell))
}

// --- Randomness ---

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Centered returns a value in [-spread/2, spread/2)
func (r *FastRand) Centered(spread float64) float64 {
	return (r.Float64() - 0.5) * spread
}
