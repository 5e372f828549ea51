// Package accum folds a numeric array into a single scalar of the same
// element type.
//
// Summation is a single left-to-right pass in the view's traversal order.
// The accumulator has the input's width: integer sums wrap on overflow and
// float sums round at every step, so float results depend on that order.
//
// Only int64 and float64 are accepted by default. WithExtendedTypes enables
// the remaining integer and float widths.
package accum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-sum/array"
	"github.com/cwbudde/algo-sum/dtype"
	"github.com/cwbudde/algo-sum/internal/kernel/registry"

	// Generic kernels (pure Go fallback)
	_ "github.com/cwbudde/algo-sum/internal/kernel/arch/generic"
)

// Accumulator sums array views. It is immutable after New and safe for
// concurrent use; each call owns its own running total.
type Accumulator struct {
	cfg   Config
	entry *registry.OpEntry
}

// New returns an Accumulator using the kernels selected for the current CPU.
func New(opts ...Option) *Accumulator {
	cfg := ApplyOptions(opts...)

	features := cpu.DetectFeatures()
	if cfg.ForceGeneric {
		features.ForceGeneric = true
	}

	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("accum: no kernel implementation registered")
	}

	return &Accumulator{cfg: cfg, entry: entry}
}

var (
	defaultAcc  *Accumulator
	defaultOnce sync.Once
)

func initDefault() {
	defaultAcc = New()
}

// Sum sums v with the default configuration.
func Sum(v array.View) (dtype.Scalar, error) {
	defaultOnce.Do(initDefault)
	return defaultAcc.Sum(v)
}

// SumSlice sums xs with the default configuration.
func SumSlice[T dtype.Number](xs []T) (dtype.Scalar, error) {
	v, err := array.FromSlice(xs)
	if err != nil {
		return dtype.Scalar{}, err
	}
	return Sum(v)
}

// Sum returns the sum of every element of v, tagged with v.Type().
//
// An empty view yields the zero of its type. If the type is not wired into
// the dispatch table, Sum returns an *UnsupportedTypeError without reading
// any element.
func (a *Accumulator) Sum(v array.View) (dtype.Scalar, error) {
	typ := v.Type()

	add := a.resolve(typ)
	if add == nil {
		return dtype.Scalar{}, &UnsupportedTypeError{Type: typ}
	}

	res := dtype.Zero(typ)
	acc := res.Raw()

	it := v.Iter()
	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		add(acc, elem)
	}

	return res, nil
}

// Supports reports whether Sum accepts views of type t.
func (a *Accumulator) Supports(t dtype.ElementType) bool {
	return a.resolve(t) != nil
}

// Supported lists the accepted element types in declaration order.
func (a *Accumulator) Supported() []dtype.ElementType {
	var out []dtype.ElementType
	for _, t := range dtype.All() {
		if a.Supports(t) {
			out = append(out, t)
		}
	}
	return out
}

// Kernel returns the name of the selected kernel implementation.
func (a *Accumulator) Kernel() string {
	return a.entry.Name
}

// Config returns the configuration the accumulator was built with.
func (a *Accumulator) Config() Config {
	return a.cfg
}

// resolve is the dispatch table. It returns nil for types that are not wired.
func (a *Accumulator) resolve(t dtype.ElementType) registry.AddFn {
	switch t {
	case dtype.Int64, dtype.Float64:
	case dtype.Int8, dtype.Int16, dtype.Int32,
		dtype.Uint8, dtype.Uint16, dtype.Uint32, dtype.Uint64,
		dtype.Float32:
		if !a.cfg.ExtendedTypes {
			return nil
		}
	default:
		return nil
	}
	return a.entry.Adder(t)
}
