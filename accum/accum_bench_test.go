package accum

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-sum/array"
	"github.com/cwbudde/algo-sum/internal/testutil"
)

var benchSizes = []int{16, 256, 4096, 65536}

func BenchmarkSumFloat64(b *testing.B) {
	for _, n := range benchSizes {
		v, err := array.FromSlice(testutil.DeterministicNoise(1, 1, n))
		if err != nil {
			b.Fatal(err)
		}
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_, _ = Sum(v)
			}
		})
	}
}

func BenchmarkSumInt64Transposed(b *testing.B) {
	for _, n := range benchSizes {
		v, err := array.FromSlice(testutil.Ramp[int64](n), n/4, 4)
		if err != nil {
			b.Fatal(err)
		}
		tr := v.Transpose()
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_, _ = Sum(tr)
			}
		})
	}
}
