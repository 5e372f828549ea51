// Package registry provides the implementation registry for per-type add kernels.
//
// Each implementation variant (generic, and any future SIMD variants) registers
// an OpEntry from an init function. Lookup selects the highest-priority entry
// the current CPU supports. An entry holds one in-place add kernel per element
// type; a nil kernel means the variant does not handle that type.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-sum/dtype"
)

// AddFn adds the element in elem into the accumulator in acc, in place.
// Both slices hold exactly one element of the kernel's type in native byte order.
type AddFn func(acc, elem []byte)

// OpEntry represents a registered implementation variant.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "generic").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. Generic is 0.
	Priority int

	// Adders is indexed by dtype.ElementType.
	Adders [dtype.NumTypes]AddFn
}

// Adder returns the kernel for t, or nil if the entry has none.
func (e *OpEntry) Adder(t dtype.ElementType) AddFn {
	if !t.Valid() {
		return nil
	}
	return e.Adders[t]
}

// OpRegistry manages the registration and lookup of implementation variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
}

// Global is the registry populated by the arch packages.
var Global = &OpRegistry{}

// Register adds an implementation entry, keeping entries ordered by
// descending priority. It is normally called from init functions.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sortByPriority()
}

// Lookup returns a copy of the highest-priority entry compatible with
// features, or nil if none is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if cpu.Supports(features, entry.SIMDLevel) {
			return &entry
		}
	}

	return nil
}

// sortByPriority sorts entries by descending priority. Must be called with r.mu held.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, highest priority first.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
}
