package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sum/dtype"
)

// RequireScalar fails t unless got has the same tag and bit pattern as want.
func RequireScalar(t *testing.T, got, want dtype.Scalar) {
	t.Helper()
	if got.Type() != want.Type() {
		t.Fatalf("type: got %v, want %v", got.Type(), want.Type())
	}
	if !got.Equal(want) {
		t.Fatalf("value: got %v (%#x), want %v (%#x)", got, got.Bits(), want, want.Bits())
	}
}

// RequireNearlyEqual fails t if got and want differ by more than eps.
// NaN matches NaN and infinities must match in sign.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	switch {
	case math.IsNaN(want):
		if !math.IsNaN(got) {
			t.Fatalf("got %v, want NaN", got)
		}
	case math.IsInf(want, 0):
		if got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
	default:
		if diff := math.Abs(got - want); diff > eps {
			t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
		}
	}
}
