package dtype

import (
	"math"
	"testing"
	"unsafe"
)

type celsius float32

func TestTypeOf(t *testing.T) {
	checks := []struct {
		name string
		got  ElementType
		want ElementType
	}{
		{"int8", TypeOf[int8](), Int8},
		{"int16", TypeOf[int16](), Int16},
		{"int32", TypeOf[int32](), Int32},
		{"int64", TypeOf[int64](), Int64},
		{"uint8", TypeOf[uint8](), Uint8},
		{"uint16", TypeOf[uint16](), Uint16},
		{"uint32", TypeOf[uint32](), Uint32},
		{"uint64", TypeOf[uint64](), Uint64},
		{"float32", TypeOf[float32](), Float32},
		{"float64", TypeOf[float64](), Float64},
		{"named float32", TypeOf[celsius](), Float32},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("TypeOf[%s]() = %v, want %v", c.name, c.got, c.want)
		}
	}

	var i int
	if got := TypeOf[int]().Size(); got != int(unsafe.Sizeof(i)) {
		t.Errorf("TypeOf[int]().Size() = %d, want %d", got, unsafe.Sizeof(i))
	}
}

func TestZeroIsIdentityPattern(t *testing.T) {
	for _, typ := range All() {
		z := Zero(typ)
		if z.Type() != typ {
			t.Fatalf("Zero(%v).Type() = %v", typ, z.Type())
		}
		if z.Bits() != 0 {
			t.Fatalf("Zero(%v).Bits() = %#x, want 0", typ, z.Bits())
		}
		if len(z.Raw()) != typ.Size() {
			t.Fatalf("len(Zero(%v).Raw()) = %d, want %d", typ, len(z.Raw()), typ.Size())
		}
	}
}

func TestScalarAccessors(t *testing.T) {
	if got := ScalarOf(int8(-5)).Int64(); got != -5 {
		t.Fatalf("int8 Int64() = %d, want -5", got)
	}
	if got := ScalarOf(int16(math.MinInt16)).Int64(); got != math.MinInt16 {
		t.Fatalf("int16 Int64() = %d, want %d", got, math.MinInt16)
	}
	if got := ScalarOf(uint8(250)).Uint64(); got != 250 {
		t.Fatalf("uint8 Uint64() = %d, want 250", got)
	}
	if got := ScalarOf(uint64(math.MaxUint64)).Uint64(); got != math.MaxUint64 {
		t.Fatalf("uint64 Uint64() = %d", got)
	}
	if got := ScalarOf(float32(1.5)).Float64(); got != 1.5 {
		t.Fatalf("float32 Float64() = %v, want 1.5", got)
	}
	if got := ScalarOf(int32(-7)).Float64(); got != -7 {
		t.Fatalf("int32 Float64() = %v, want -7", got)
	}
	if got := ScalarOf(3.75).Int64(); got != 3 {
		t.Fatalf("float64 Int64() = %d, want 3", got)
	}
}

func TestScalarString(t *testing.T) {
	cases := []struct {
		s    Scalar
		want string
	}{
		{ScalarOf(int64(10)), "10"},
		{ScalarOf(int8(-128)), "-128"},
		{ScalarOf(uint16(65535)), "65535"},
		{ScalarOf(7.0), "7"},
		{ScalarOf(float32(0.1)), "0.1"},
		{ScalarOf(math.Inf(-1)), "-Inf"},
		{Zero(Invalid), "<invalid>"},
	}
	for _, tc := range cases {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestScalarEqual(t *testing.T) {
	if !ScalarOf(int64(3)).Equal(ScalarOf(int64(3))) {
		t.Fatal("equal int64 scalars compare unequal")
	}
	if ScalarOf(int64(3)).Equal(ScalarOf(uint64(3))) {
		t.Fatal("scalars with different tags compare equal")
	}
	nan := ScalarOf(math.NaN())
	if !nan.Equal(nan) {
		t.Fatal("bitwise equality must hold for identical NaN patterns")
	}
}

func TestRawWritesThrough(t *testing.T) {
	s := Zero(Int16)
	raw := s.Raw()
	raw[0], raw[1] = 0xff, 0xff
	if got := s.Int64(); got != -1 {
		t.Fatalf("Int64() after raw write = %d, want -1", got)
	}
}
