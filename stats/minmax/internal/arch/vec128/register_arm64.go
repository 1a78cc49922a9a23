//go:build arm64 && !purego

package vec128

import (
	"github.com/cwbudde/algo-minmax/internal/cpu"
	"github.com/cwbudde/algo-minmax/stats/minmax/internal/arch/registry"
)

// init registers the 128-bit kernels as the NEON implementation.
//
// Priority: 15
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:              "neon",
		SIMDLevel:         cpu.SIMDNEON,
		Priority:          15,
		StridedMinMax:     StridedMinMax,
		StridedMinMaxSafe: StridedMinMaxSafe,
		BulkMinMax:        BulkMinMax,
		BulkMinMaxSafe:    BulkMinMaxSafe,
	})
}
