//go:build amd64 && !purego

package vec128

import (
	"github.com/cwbudde/algo-minmax/internal/cpu"
	"github.com/cwbudde/algo-minmax/stats/minmax/internal/arch/registry"
)

// init registers the 128-bit kernels as the SSE2 implementation.
//
// SSE2 is part of the x86-64 baseline.
//
// Priority: 10 (preferred over generic)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:              "sse2",
		SIMDLevel:         cpu.SIMDSSE2,
		Priority:          10,
		StridedMinMax:     StridedMinMax,
		StridedMinMaxSafe: StridedMinMaxSafe,
		BulkMinMax:        BulkMinMax,
		BulkMinMaxSafe:    BulkMinMaxSafe,
	})
}
