package accum_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sum/accum"
	"github.com/cwbudde/algo-sum/array"
	"github.com/cwbudde/algo-sum/dtype"
)

func ExampleSum() {
	v, _ := array.FromSlice([]int64{1, 2, 3, 4})
	s, _ := accum.Sum(v)
	fmt.Println(s, s.Type())

	// Output:
	// 10 int64
}

func ExampleSum_unsupported() {
	v, _ := array.FromSlice([]int8{1, 2})
	_, err := accum.Sum(v)

	var ute *accum.UnsupportedTypeError
	if errors.As(err, &ute) {
		fmt.Println(ute.Type, errors.Is(err, accum.ErrUnsupportedType))
	}

	// Output:
	// int8 true
}

func ExampleNew() {
	acc := accum.New(accum.WithExtendedTypes())
	v, _ := array.FromSlice([]uint8{200, 100})
	s, _ := acc.Sum(v)
	fmt.Println(s, s.Type())

	// Output:
	// 44 uint8
}

func ExampleSumSlice() {
	s, _ := accum.SumSlice([]float64{1.5, 2.5, 3.0})
	fmt.Println(s, s.Type() == dtype.Float64)

	// Output:
	// 7 true
}
