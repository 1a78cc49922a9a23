package testutil

import (
	"math"
	"testing"
)

func TestRamp(t *testing.T) {
	r := Ramp(4, -1, 0.5)
	want := []float32{-1, -0.5, 0, 0.5}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("Ramp[%d] = %v, want %v", i, r[i], want[i])
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestInjectNonFinite(t *testing.T) {
	in := Ramp(9, 0, 1)
	out := InjectNonFinite(in, 3)

	if in[2] != 2 {
		t.Fatal("InjectNonFinite modified its input")
	}
	if !math.IsNaN(float64(out[2])) || !math.IsInf(float64(out[5]), 1) || !math.IsInf(float64(out[8]), -1) {
		t.Fatalf("unexpected injection pattern: %v", out)
	}
	for _, i := range []int{0, 1, 3, 4, 6, 7} {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}
}

func TestStrided(t *testing.T) {
	out := Strided([]float32{1, 2, 3}, 2, 9)
	want := []float32{1, 9, 2, 9, 3, 9}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestReferenceMinMax(t *testing.T) {
	values := []float32{float32(math.NaN()), 1, 2, float32(math.Inf(-1)), float32(math.Inf(1)), 5}

	minValue, maxValue := ReferenceMinMax(values, true)
	RequireMinMax(t, minValue, maxValue, 1, 5)

	minValue, maxValue = ReferenceMinMax(values, false)
	RequireMinMax(t, minValue, maxValue, float32(math.Inf(-1)), float32(math.Inf(1)))

	minValue, maxValue = ReferenceMinMax(nil, true)
	RequireMinMax(t, minValue, maxValue, float32(math.Inf(1)), float32(math.Inf(-1)))
}
