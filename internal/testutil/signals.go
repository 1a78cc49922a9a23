// Package testutil provides deterministic float32 inputs and reference
// results for min/max tests.
package testutil

import (
	"math"
	"math/rand"
)

// Ramp returns n values start, start+step, start+2*step, ...
func Ramp(n int, start, step float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = start + float32(i)*step
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude) with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float32, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out
}

// NonFinite cycles through NaN, +Inf and -Inf.
func NonFinite(i int) float32 {
	switch i % 3 {
	case 0:
		return float32(math.NaN())
	case 1:
		return float32(math.Inf(1))
	default:
		return float32(math.Inf(-1))
	}
}

// InjectNonFinite returns a copy of values where every every-th element
// (positions every-1, 2*every-1, ...) is replaced by NaN, +Inf or -Inf in
// turn. every < 1 returns an unmodified copy.
func InjectNonFinite(values []float32, every int) []float32 {
	out := append([]float32(nil), values...)
	if every < 1 {
		return out
	}
	k := 0
	for i := every - 1; i < len(out); i += every {
		out[i] = NonFinite(k)
		k++
	}
	return out
}

// Strided lays values out at positions 0, stride, 2*stride, ... of a buffer
// of len(values)*stride elements and fills every other position with fill.
func Strided(values []float32, stride int, fill float32) []float32 {
	out := make([]float32, len(values)*stride)
	for i := range out {
		out[i] = fill
	}
	for i, v := range values {
		out[i*stride] = v
	}
	return out
}
