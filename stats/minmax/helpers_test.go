package minmax

import (
	"math"
	"sync"
	"testing"
)

var (
	nan  = float32(math.NaN())
	pInf = float32(math.Inf(1))
	nInf = float32(math.Inf(-1))
)

var allModes = []Mode{ModeDefault, ModeForceStrided, ModeForceScalar, ModeForceFallback}

// withMode overrides the cached dispatch mode for the duration of t.
func withMode(t testing.TB, m Mode) {
	t.Helper()
	prev := currentMode
	currentMode = func() Mode { return m }
	t.Cleanup(func() { currentMode = prev })
}

func resetKernelsForTest() {
	scalarKernels = nil
	vectorKernels = nil
	kernelsOnce = sync.Once{}
}
