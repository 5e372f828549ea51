package testutil

import "testing"

func TestRamp(t *testing.T) {
	r := Ramp[int64](4)
	for i, v := range r {
		if v != int64(i+1) {
			t.Fatalf("r[%d] = %d, want %d", i, v, i+1)
		}
	}

	wrapped := Ramp[uint8](257)
	if wrapped[255] != 0 || wrapped[256] != 1 {
		t.Fatalf("uint8 ramp did not wrap: %d %d", wrapped[255], wrapped[256])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicInts(t *testing.T) {
	a := DeterministicInts(7, 32)
	b := DeterministicInts(7, 32)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("ints not deterministic at index %d", i)
		}
	}
}
