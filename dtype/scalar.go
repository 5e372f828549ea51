package dtype

import (
	"encoding/binary"
	"math"
	"reflect"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is the set of Go types that map onto an ElementType.
// int, uint and uintptr map to the fixed-width type of their size.
type Number interface {
	constraints.Integer | constraints.Float
}

var nativeOrderPrefix = func() byte {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	if b[0] == 1 {
		return '<'
	}
	return '>'
}()

// TypeOf returns the element type whose in-memory layout matches T.
func TypeOf[T Number]() ElementType {
	var zero T
	size := unsafe.Sizeof(zero)

	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		return signedOfSize(size)
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		return unsignedOfSize(size)
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		return Invalid
	}
}

func signedOfSize(size uintptr) ElementType {
	switch size {
	case 1:
		return Int8
	case 2:
		return Int16
	case 4:
		return Int32
	default:
		return Int64
	}
}

func unsignedOfSize(size uintptr) ElementType {
	switch size {
	case 1:
		return Uint8
	case 2:
		return Uint16
	case 4:
		return Uint32
	default:
		return Uint64
	}
}

// Scalar is a zero-dimensional value tagged with its element type. The value
// is held as the native-endian bit pattern of the type's width.
type Scalar struct {
	typ ElementType
	raw [8]byte
}

// Zero returns the additive identity of t: the all-zero bit pattern.
func Zero(t ElementType) Scalar {
	return Scalar{typ: t}
}

// ScalarOf wraps v in a Scalar tagged with TypeOf[T]().
func ScalarOf[T Number](v T) Scalar {
	s := Scalar{typ: TypeOf[T]()}
	copy(s.raw[:], unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)))
	return s
}

// Type returns the element type tag.
func (s Scalar) Type() ElementType {
	return s.typ
}

// Raw returns the width-sized storage of s. Writes through the returned
// slice modify s.
func (s *Scalar) Raw() []byte {
	return s.raw[:s.typ.Size()]
}

// Bits returns the raw bit pattern zero-extended to 64 bits.
func (s Scalar) Bits() uint64 {
	switch s.typ.Size() {
	case 1:
		return uint64(s.raw[0])
	case 2:
		return uint64(binary.NativeEndian.Uint16(s.raw[:]))
	case 4:
		return uint64(binary.NativeEndian.Uint32(s.raw[:]))
	case 8:
		return binary.NativeEndian.Uint64(s.raw[:])
	default:
		return 0
	}
}

// Equal reports whether s and o carry the same tag and bit pattern.
func (s Scalar) Equal(o Scalar) bool {
	return s.typ == o.typ && s.Bits() == o.Bits()
}

// Int64 returns the value converted to int64. Signed types are sign extended;
// other kinds follow Go conversion rules.
func (s Scalar) Int64() int64 {
	switch s.typ.Kind() {
	case KindSigned:
		return s.signed()
	case KindUnsigned:
		return int64(s.Bits())
	case KindFloat:
		return int64(s.Float64())
	default:
		return 0
	}
}

// Uint64 returns the value converted to uint64.
func (s Scalar) Uint64() uint64 {
	switch s.typ.Kind() {
	case KindSigned:
		return uint64(s.signed())
	case KindUnsigned:
		return s.Bits()
	case KindFloat:
		return uint64(s.Float64())
	default:
		return 0
	}
}

// Float64 returns the value converted to float64.
func (s Scalar) Float64() float64 {
	switch s.typ {
	case Float32:
		return float64(math.Float32frombits(uint32(s.Bits())))
	case Float64:
		return math.Float64frombits(s.Bits())
	}
	switch s.typ.Kind() {
	case KindSigned:
		return float64(s.signed())
	case KindUnsigned:
		return float64(s.Bits())
	default:
		return 0
	}
}

func (s Scalar) signed() int64 {
	shift := 64 - 8*s.typ.Size()
	return int64(s.Bits()<<shift) >> shift
}

// String formats the value the way its element type prints.
func (s Scalar) String() string {
	switch s.typ.Kind() {
	case KindSigned:
		return strconv.FormatInt(s.signed(), 10)
	case KindUnsigned:
		return strconv.FormatUint(s.Bits(), 10)
	case KindFloat:
		return strconv.FormatFloat(s.Float64(), 'g', -1, 8*s.typ.Size())
	default:
		return "<invalid>"
	}
}
