package testutil

import (
	"math"
	"testing"
)

// ReferenceMinMax computes the expected scan result with float64 predicates,
// independently of the kernels under test. With finiteOnly set NaN and ±Inf
// are skipped; otherwise only NaN is. Nothing qualifying gives (+Inf, -Inf).
func ReferenceMinMax(values []float32, finiteOnly bool) (minValue, maxValue float32) {
	minValue = float32(math.Inf(1))
	maxValue = float32(math.Inf(-1))
	for _, v := range values {
		f := float64(v)
		if math.IsNaN(f) || (finiteOnly && math.IsInf(f, 0)) {
			continue
		}
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}
	return minValue, maxValue
}

// RequireMinMax fails t unless got and want are bit-identical pairs.
func RequireMinMax(t testing.TB, gotMin, gotMax, wantMin, wantMax float32) {
	t.Helper()
	if math.Float32bits(gotMin) != math.Float32bits(wantMin) || math.Float32bits(gotMax) != math.Float32bits(wantMax) {
		t.Fatalf("got (%v, %v), want (%v, %v)", gotMin, gotMax, wantMin, wantMax)
	}
}
