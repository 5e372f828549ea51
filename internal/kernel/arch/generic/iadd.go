// Package generic provides the pure Go add kernels.
package generic

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// IAdd adds the T stored in elem into the T stored in acc.
//
// Integers wrap on overflow; floats follow IEEE 754 addition at T's width.
// Values are copied through aligned locals, so acc and elem may sit at any
// byte offset.
func IAdd[T constraints.Integer | constraints.Float](acc, elem []byte) {
	var a, b T
	copy(bytesOf(&a), acc)
	copy(bytesOf(&b), elem)
	a += b
	copy(acc, bytesOf(&a))
}

func bytesOf[T constraints.Integer | constraints.Float](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}
