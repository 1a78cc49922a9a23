//go:build amd64 && !purego

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-minmax/internal/cpu"
)

func TestDispatch_AMD64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		mode     Mode
		wantImpl string
		wantHas  bool
		wantUse  bool
	}{
		{"sse2-default", cpu.Features{HasSSE2: true, Architecture: "amd64"}, ModeDefault, "sse2", true, true},
		{"sse2-force-strided", cpu.Features{HasSSE2: true, Architecture: "amd64"}, ModeForceStrided, "sse2", true, true},
		{"sse2-force-scalar", cpu.Features{HasSSE2: true, Architecture: "amd64"}, ModeForceScalar, "generic", false, true},
		{"sse2-force-fallback", cpu.Features{HasSSE2: true, Architecture: "amd64"}, ModeForceFallback, "generic", false, false},
		{"no-sse2", cpu.Features{Architecture: "amd64"}, ModeDefault, "generic", false, false},
		{"generic-forced", cpu.Features{HasSSE2: true, ForceGeneric: true, Architecture: "amd64"}, ModeDefault, "generic", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			resetKernelsForTest()
			defer func() {
				cpu.ResetDetection()
				resetKernelsForTest()
			}()
			withMode(t, tt.mode)

			assert.Equal(t, tt.wantImpl, Implementation())
			assert.Equal(t, tt.wantHas, HasSSE2())
			assert.Equal(t, tt.wantUse, UseSSE2())

			values := []float32{4, nan, -3, 9, pInf, 1, 0, 2, 7, nInf, 5, 6}
			gotMin, gotMax := Scan(values)
			assert.Equal(t, float32(-3), gotMin)
			assert.Equal(t, float32(9), gotMax)
		})
	}
}

func BenchmarkScan_Dispatch_AMD64(b *testing.B) {
	modes := []struct {
		name string
		mode Mode
	}{
		{"Bulk", ModeDefault},
		{"Strided", ModeForceStrided},
		{"Scalar", ModeForceScalar},
	}

	values := make([]float32, 4096)
	for i := range values {
		values[i] = float32(i%255) - 127
	}

	for _, m := range modes {
		b.Run(m.name, func(b *testing.B) {
			withMode(b, m.mode)

			b.SetBytes(int64(len(values) * 4))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Scan(values)
			}
		})
	}
}
