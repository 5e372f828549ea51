package array

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/cwbudde/algo-sum/dtype"
)

// Strided is an n-dimensional view over a byte buffer.
//
// Element i0..ik lives at offset + sum(ij*strides[j]) bytes into data.
// Strides are in bytes and may be zero or negative. Iteration visits the
// logical index in C order (last axis fastest) regardless of how the
// elements are laid out in memory.
type Strided struct {
	typ     dtype.ElementType
	data    []byte
	offset  int
	shape   []int
	strides []int
	n       int
}

var _ View = (*Strided)(nil)

// NewStrided builds a view from explicit byte strides. It fails if shape and
// strides disagree in rank, a dimension is negative, or any element would
// fall outside data.
func NewStrided(typ dtype.ElementType, data []byte, offset int, shape, strides []int) (*Strided, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: element type %v", ErrShape, typ)
	}
	if len(shape) != len(strides) {
		return nil, fmt.Errorf("%w: rank mismatch (shape %d, strides %d)", ErrShape, len(shape), len(strides))
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrOutOfBounds, offset)
	}

	n, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}

	if n > 0 {
		lo, hi := offset, offset
		for ax, dim := range shape {
			span, ok := mulInt(strides[ax], dim-1)
			if !ok {
				return nil, fmt.Errorf("%w: stride %d overflows on axis %d", ErrShape, strides[ax], ax)
			}
			if span < 0 {
				if lo < math.MinInt-span {
					return nil, fmt.Errorf("%w: strides overflow on axis %d", ErrShape, ax)
				}
				lo += span
			} else {
				if hi > math.MaxInt-span {
					return nil, fmt.Errorf("%w: strides overflow on axis %d", ErrShape, ax)
				}
				hi += span
			}
		}
		if lo < 0 || hi > len(data)-typ.Size() {
			return nil, fmt.Errorf("%w: bytes [%d, %d] of %d", ErrOutOfBounds, lo, hi, len(data))
		}
	}

	return &Strided{
		typ:     typ,
		data:    data,
		offset:  offset,
		shape:   append([]int(nil), shape...),
		strides: append([]int(nil), strides...),
		n:       n,
	}, nil
}

// NewContiguous builds a C-contiguous view of data. Without a shape the view
// is one-dimensional over the whole buffer.
func NewContiguous(typ dtype.ElementType, data []byte, shape ...int) (*Strided, error) {
	size := typ.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: element type %v", ErrShape, typ)
	}

	if len(shape) == 0 {
		if len(data)%size != 0 {
			return nil, fmt.Errorf("%w: %d bytes is not a multiple of %v width %d", ErrShape, len(data), typ, size)
		}
		shape = []int{len(data) / size}
	}

	n, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}
	if n > math.MaxInt/size {
		return nil, fmt.Errorf("%w: %d elements of width %d overflow", ErrShape, n, size)
	}

	return NewStrided(typ, data, 0, shape, contiguousStrides(shape, size))
}

// FromSlice returns a zero-copy view of xs. The optional shape must cover
// exactly len(xs) elements.
func FromSlice[T dtype.Number](xs []T, shape ...int) (*Strided, error) {
	typ := dtype.TypeOf[T]()

	if len(shape) > 0 {
		n, err := shapeSize(shape)
		if err != nil {
			return nil, err
		}
		if n != len(xs) {
			return nil, fmt.Errorf("%w: shape %v holds %d elements, slice has %d", ErrShape, shape, n, len(xs))
		}
	}

	var data []byte
	if len(xs) > 0 {
		data = unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(xs))), len(xs)*typ.Size())
	}

	if len(shape) == 0 {
		shape = []int{len(xs)}
	}

	return NewStrided(typ, data, 0, shape, contiguousStrides(shape, typ.Size()))
}

// shapeSize returns the element count of shape. It rejects negative
// dimensions and products that overflow int.
func shapeSize(shape []int) (int, error) {
	n := 1
	for ax, dim := range shape {
		if dim < 0 {
			return 0, fmt.Errorf("%w: negative dimension %d on axis %d", ErrShape, dim, ax)
		}
		if dim != 0 && n > math.MaxInt/dim {
			return 0, fmt.Errorf("%w: shape %v overflows the element count", ErrShape, shape)
		}
		n *= dim
	}
	return n, nil
}

// mulInt returns a*b and whether it fits in int. b must be non-negative.
func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	return c, c/b == a
}

func contiguousStrides(shape []int, size int) []int {
	strides := make([]int, len(shape))
	step := size
	for ax := len(shape) - 1; ax >= 0; ax-- {
		strides[ax] = step
		step *= shape[ax]
	}
	return strides
}

// Type returns the element type.
func (s *Strided) Type() dtype.ElementType { return s.typ }

// Len returns the element count.
func (s *Strided) Len() int { return s.n }

// Shape returns a copy of the dimensions.
func (s *Strided) Shape() []int { return append([]int(nil), s.shape...) }

// Strides returns a copy of the byte strides.
func (s *Strided) Strides() []int { return append([]int(nil), s.strides...) }

// Contiguous reports whether the view is laid out in C order without gaps.
// Axes of length one are ignored.
func (s *Strided) Contiguous() bool {
	step := s.typ.Size()
	for ax := len(s.shape) - 1; ax >= 0; ax-- {
		if s.shape[ax] == 1 {
			continue
		}
		if s.strides[ax] != step {
			return false
		}
		step *= s.shape[ax]
	}
	return true
}

// Transpose returns a view with the axis order reversed. No data is copied.
func (s *Strided) Transpose() *Strided {
	rank := len(s.shape)
	t := &Strided{
		typ:     s.typ,
		data:    s.data,
		offset:  s.offset,
		shape:   make([]int, rank),
		strides: make([]int, rank),
		n:       s.n,
	}
	for ax := range rank {
		t.shape[ax] = s.shape[rank-1-ax]
		t.strides[ax] = s.strides[rank-1-ax]
	}
	return t
}

// Iter returns a C-order iterator over the view.
func (s *Strided) Iter() Iterator {
	return &stridedIter{
		s:         s,
		idx:       make([]int, len(s.shape)),
		pos:       s.offset,
		remaining: s.n,
	}
}

type stridedIter struct {
	s         *Strided
	idx       []int
	pos       int
	remaining int
	started   bool
}

func (it *stridedIter) Next() ([]byte, bool) {
	if it.remaining == 0 {
		return nil, false
	}
	if it.started {
		it.advance()
	}
	it.started = true
	it.remaining--

	end := it.pos + it.s.typ.Size()
	return it.s.data[it.pos:end:end], true
}

// advance moves to the next logical index, carrying into outer axes.
func (it *stridedIter) advance() {
	shape, strides := it.s.shape, it.s.strides
	for ax := len(shape) - 1; ax >= 0; ax-- {
		it.idx[ax]++
		it.pos += strides[ax]
		if it.idx[ax] < shape[ax] {
			return
		}
		it.pos -= strides[ax] * shape[ax]
		it.idx[ax] = 0
	}
}
