package accum

import (
	"errors"

	"github.com/cwbudde/algo-sum/dtype"
)

// ErrUnsupportedType matches every *UnsupportedTypeError via errors.Is.
var ErrUnsupportedType = errors.New("accum: unsupported element type")

// UnsupportedTypeError reports an element type missing from the dispatch table.
// It is returned before any element is visited.
type UnsupportedTypeError struct {
	Type dtype.ElementType
}

func (e *UnsupportedTypeError) Error() string {
	return "accum: unsupported element type " + e.Type.String()
}

// Is reports whether target is ErrUnsupportedType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}
