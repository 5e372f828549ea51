package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-sum/dtype"
	"github.com/cwbudde/algo-sum/internal/kernel/registry"
)

// init registers the generic kernels for every element type.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	entry := registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
	}

	entry.Adders[dtype.Int8] = IAdd[int8]
	entry.Adders[dtype.Int16] = IAdd[int16]
	entry.Adders[dtype.Int32] = IAdd[int32]
	entry.Adders[dtype.Int64] = IAdd[int64]
	entry.Adders[dtype.Uint8] = IAdd[uint8]
	entry.Adders[dtype.Uint16] = IAdd[uint16]
	entry.Adders[dtype.Uint32] = IAdd[uint32]
	entry.Adders[dtype.Uint64] = IAdd[uint64]
	entry.Adders[dtype.Float32] = IAdd[float32]
	entry.Adders[dtype.Float64] = IAdd[float64]

	registry.Global.Register(entry)
}
