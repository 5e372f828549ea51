// Package dtype defines the numeric element types an array may hold and the
// zero-dimensional Scalar value that carries one element of such a type.
package dtype

import (
	"errors"
	"fmt"
	"strings"
)

// ElementType identifies the numeric kind and width of an array element.
type ElementType uint8

const (
	// Invalid is the zero value. It is never a supported element type.
	Invalid ElementType = iota

	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

// NumTypes is one past the largest ElementType value. Tables indexed by
// ElementType use it as their length.
const NumTypes = int(Float64) + 1

// Kind groups element types by their arithmetic.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindSigned
	KindUnsigned
	KindFloat
)

// ErrUnknownType is returned by Parse for names that do not denote an element type.
var ErrUnknownType = errors.New("dtype: unknown element type")

// All returns every valid element type in declaration order.
func All() []ElementType {
	return []ElementType{
		Int8, Int16, Int32, Int64,
		Uint8, Uint16, Uint32, Uint64,
		Float32, Float64,
	}
}

// Valid reports whether t is one of the declared element types.
func (t ElementType) Valid() bool {
	return t >= Int8 && t <= Float64
}

// Size returns the byte width of one element. Invalid has width 0.
func (t ElementType) Size() int {
	switch t {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// Kind returns the arithmetic kind of t.
func (t ElementType) Kind() Kind {
	switch t {
	case Int8, Int16, Int32, Int64:
		return KindSigned
	case Uint8, Uint16, Uint32, Uint64:
		return KindUnsigned
	case Float32, Float64:
		return KindFloat
	default:
		return KindInvalid
	}
}

// String returns the canonical lower-case name, e.g. "int64".
func (t ElementType) String() string {
	switch t {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}

// Parse resolves an element type from its canonical name ("int64") or a
// short type code ("i8", "<f4", "|u1"). Short codes may carry a byte-order
// prefix; only native order ('=', '|' or the host's '<'/'>') is accepted.
//
// Platform dependent C names such as "int" or "long" are rejected.
func Parse(name string) (ElementType, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, t := range All() {
		if s == t.String() {
			return t, nil
		}
	}

	if s != "" {
		switch s[0] {
		case '=', '|':
			s = s[1:]
		case '<', '>':
			if s[0] != nativeOrderPrefix {
				return Invalid, fmt.Errorf("%w: %q is not in native byte order", ErrUnknownType, name)
			}
			s = s[1:]
		}
	}

	switch s {
	case "i1":
		return Int8, nil
	case "i2":
		return Int16, nil
	case "i4":
		return Int32, nil
	case "i8":
		return Int64, nil
	case "u1":
		return Uint8, nil
	case "u2":
		return Uint16, nil
	case "u4":
		return Uint32, nil
	case "u8":
		return Uint64, nil
	case "f4":
		return Float32, nil
	case "f8":
		return Float64, nil
	}

	return Invalid, fmt.Errorf("%w: %q", ErrUnknownType, name)
}
