package service

// RandomSource is the injectable pseudo-random source behind every generator.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int

	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}
