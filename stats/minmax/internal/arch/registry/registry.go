// Package registry holds the min/max kernel implementations available to the
// minmax package.
//
// Kernel packages register themselves from init(); the minmax package looks
// up the best entry for the detected CPU once and keeps it for the process.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-minmax/internal/cpu"
)

// StridedFn reduces size elements taken every stride positions of values.
type StridedFn func(values []float32, size, stride int) (min, max float32)

// BulkFn reduces the first size contiguous elements of values.
// Implementations may require a minimum size.
type BulkFn func(values []float32, size int) (min, max float32)

// OpEntry is one registered kernel set.
//
// The scalar entry only provides the strided kernels; vector entries provide
// all four.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// StridedMinMax and StridedMinMaxSafe are usable for any size and stride.
	StridedMinMax     StridedFn
	StridedMinMaxSafe StridedFn

	// BulkMinMax and BulkMinMaxSafe handle contiguous input only.
	BulkMinMax     BulkFn
	BulkMinMaxSafe BulkFn
}

// IsVector reports whether the entry carries vector kernels.
func (e *OpEntry) IsVector() bool {
	return e.SIMDLevel != cpu.SIMDNone && e.BulkMinMax != nil && e.BulkMinMaxSafe != nil
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default min/max kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil when nothing matches.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Scalar returns the highest-priority entry without vector requirements.
func (r *OpRegistry) Scalar() *OpEntry {
	return r.Lookup(cpu.Features{ForceGeneric: true})
}

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

// ListEntries returns a copy of entries for tests/debugging.
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
	r.sorted = false
}
