package minmax

import (
	"sync"

	"github.com/cwbudde/algo-minmax/internal/cpu"
	archregistry "github.com/cwbudde/algo-minmax/stats/minmax/internal/arch/registry"
)

// smallScanSize is the largest contiguous size still routed to the
// single-lane kernel; bulk setup does not pay off below it.
const smallScanSize = 8

var (
	scalarKernels *archregistry.OpEntry
	vectorKernels *archregistry.OpEntry // nil when no vector kernel is usable
	kernelsOnce   sync.Once
)

func initKernels() {
	scalarKernels = archregistry.Global.Scalar()
	if scalarKernels == nil {
		panic("minmax: no scalar kernel registered (missing generic fallback?)")
	}
	if scalarKernels.StridedMinMax == nil || scalarKernels.StridedMinMaxSafe == nil {
		panic("minmax: scalar kernel missing strided min/max")
	}

	vectorKernels = nil
	if entry := archregistry.Global.Lookup(cpu.DetectFeatures()); entry != nil && entry.IsVector() {
		vectorKernels = entry
	}
}

func loadKernels() (scalar, vector *archregistry.OpEntry) {
	kernelsOnce.Do(initKernels)
	return scalarKernels, vectorKernels
}

// HasSSE2 reports whether vector kernels serve scans in this process: a
// 128-bit kernel is built in, the CPU supports it, and the override does not
// force the scalar path. The name is historical; NEON counts on arm64.
func HasSSE2() bool {
	_, vector := loadKernels()
	return vector != nil && !CurrentMode().scalarOnly()
}

// UseSSE2 is a hint for callers with their own non-vector fallback. It is
// false without vector kernels and under ModeForceFallback, true otherwise.
// Unlike HasSSE2 it stays true under ModeForceScalar.
func UseSSE2() bool {
	_, vector := loadKernels()
	return vector != nil && CurrentMode() != ModeForceFallback
}

// Implementation returns the name of the kernel set scans currently use,
// e.g. "generic", "sse2" or "neon".
func Implementation() string {
	scalar, vector := loadKernels()
	if vector == nil || CurrentMode().scalarOnly() {
		return scalar.Name
	}
	return vector.Name
}

func dispatchUnsafe(values []float32, size, stride int) (minValue, maxValue float32) {
	scalar, vector := loadKernels()
	mode := CurrentMode()

	switch {
	case vector == nil || mode.scalarOnly():
		return scalar.StridedMinMax(values, size, stride)
	case mode == ModeForceStrided || stride != 1 || size <= smallScanSize:
		return vector.StridedMinMax(values, size, stride)
	default:
		return vector.BulkMinMax(values, size)
	}
}

func dispatchSafe(values []float32, size, stride int) (minValue, maxValue float32) {
	scalar, vector := loadKernels()
	mode := CurrentMode()

	switch {
	case vector == nil || mode.scalarOnly():
		return scalar.StridedMinMaxSafe(values, size, stride)
	case mode == ModeForceStrided || stride != 1 || size <= smallScanSize:
		return vector.StridedMinMaxSafe(values, size, stride)
	default:
		return vector.BulkMinMaxSafe(values, size)
	}
}
