package generic

import (
	"github.com/cwbudde/algo-minmax/internal/cpu"
	"github.com/cwbudde/algo-minmax/stats/minmax/internal/arch/registry"
)

// init registers the scalar kernels. They back every platform and every
// override mode that asks for the fallback path.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:              "generic",
		SIMDLevel:         cpu.SIMDNone,
		Priority:          0,
		StridedMinMax:     StridedMinMax,
		StridedMinMaxSafe: StridedMinMaxSafe,
	})
}
