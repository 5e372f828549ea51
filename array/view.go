// Package array describes read-only numeric arrays for reduction.
//
// A View exposes an element type, an element count and an Iterator that
// yields each element's raw bytes in the array's traversal order. Views never
// own or copy the underlying buffer; the caller keeps it alive and unchanged
// for as long as the view is in use.
package array

import (
	"errors"

	"github.com/cwbudde/algo-sum/dtype"
)

var (
	// ErrShape reports an inconsistent shape, stride or buffer length.
	ErrShape = errors.New("array: invalid shape")

	// ErrOutOfBounds reports a view that would address bytes outside its buffer.
	ErrOutOfBounds = errors.New("array: view exceeds buffer")
)

// Iterator yields element bytes in traversal order.
//
// Next returns the raw native-endian bytes of the next element and true, or
// nil and false once the view is exhausted. The returned slice aliases the
// source buffer and is only valid until the following call.
type Iterator interface {
	Next() ([]byte, bool)
}

// View is a non-owning description of a source array.
type View interface {
	// Type returns the element type of every element.
	Type() dtype.ElementType

	// Len returns the number of elements Iter visits.
	Len() int

	// Iter returns a new iterator positioned before the first element.
	Iter() Iterator
}
