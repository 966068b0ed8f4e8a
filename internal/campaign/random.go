package campaign

import "math/rand"

// RandomSource abstracts the randomness used by the metrics synthesizer and
// the status allocator so both are deterministic under test.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
	Perm(n int) []int
}

// NewMathRandSource returns a RandomSource backed by math/rand with the
// given seed. *rand.Rand satisfies the interface directly.
func NewMathRandSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
