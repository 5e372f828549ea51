package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-sum/dtype"
)

// Ramp returns 1, 2, ..., n converted to T. Narrow types wrap.
func Ramp[T dtype.Number](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i + 1)
	}
	return out
}

// DeterministicNoise returns length float64 values in [-amplitude, amplitude)
// drawn from seed. Mixed signs and magnitudes make most additions round, so
// comparing a float sum of this data bit for bit needs a reference that adds
// in the same order.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	noise := make([]float64, length)
	for i := range noise {
		noise[i] = amplitude * (2*rng.Float64() - 1)
	}
	return noise
}

// DeterministicInts generates int64 values spread over the full range with a
// fixed seed, so running totals overflow.
func DeterministicInts(seed int64, length int) []int64 {
	out := make([]int64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = int64(rng.Uint64())
	}
	return out
}
