package vec128

import (
	"math"
	"testing"
)

var nan = float32(math.NaN())

func TestShuffleRotations(t *testing.T) {
	v := f32x4{10, 11, 12, 13}

	if got, want := v.shuffle(mmShuffle(2, 1, 0, 3)), (f32x4{13, 10, 11, 12}); got != want {
		t.Fatalf("shuffle(2,1,0,3) = %v, want %v", got, want)
	}
	if got, want := v.shuffle(mmShuffle(1, 0, 3, 2)), (f32x4{12, 13, 10, 11}); got != want {
		t.Fatalf("shuffle(1,0,3,2) = %v, want %v", got, want)
	}
	if got := v.shuffle(mmShuffle(3, 2, 1, 0)); got != v {
		t.Fatalf("identity shuffle = %v, want %v", got, v)
	}
}

func TestMinMaxPSNaNTakesSecondOperand(t *testing.T) {
	a := f32x4{nan, 1, 5, nan}
	b := f32x4{2, nan, 3, nan}

	gotMin := minps(a, b)
	if gotMin[0] != 2 || !math.IsNaN(float64(gotMin[1])) || gotMin[2] != 3 || !math.IsNaN(float64(gotMin[3])) {
		t.Fatalf("minps = %v", gotMin)
	}

	gotMax := maxps(a, b)
	if gotMax[0] != 2 || !math.IsNaN(float64(gotMax[1])) || gotMax[2] != 5 || !math.IsNaN(float64(gotMax[3])) {
		t.Fatalf("maxps = %v", gotMax)
	}
}

func TestScalarLaneOpsKeepUpperLanes(t *testing.T) {
	a := f32x4{5, 6, 7, 8}
	b := f32x4{1, 100, 100, 100}

	if got, want := minss(a, b), (f32x4{1, 6, 7, 8}); got != want {
		t.Fatalf("minss = %v, want %v", got, want)
	}
	if got, want := maxss(a, b), (f32x4{5, 6, 7, 8}); got != want {
		t.Fatalf("maxss = %v, want %v", got, want)
	}
	if got, want := setss(3), (f32x4{3, 0, 0, 0}); got != want {
		t.Fatalf("setss = %v, want %v", got, want)
	}
}

func TestFiniteMaskAndBlend(t *testing.T) {
	pInf := set1(float32(math.Inf(1)))
	nInf := set1(float32(math.Inf(-1)))
	v := f32x4{1, nan, pInf[0], nInf[0]}

	m := finiteMask(v, pInf, nInf)
	if want := (mask4{laneTrue, 0, 0, 0}); m != want {
		t.Fatalf("finiteMask = %#v, want %#v", m, want)
	}

	running := f32x4{-1, -2, -3, -4}
	if got, want := m.blend(v, running), (f32x4{1, -2, -3, -4}); got != want {
		t.Fatalf("blend = %v, want %v", got, want)
	}
}

func TestCompareMasks(t *testing.T) {
	a := f32x4{1, nan, 3, 4}
	b := f32x4{1, 2, nan, 5}

	if got, want := cmpord(a, b), (mask4{laneTrue, 0, 0, laneTrue}); got != want {
		t.Fatalf("cmpord = %#v, want %#v", got, want)
	}
	if got, want := cmpneq(a, b), (mask4{0, laneTrue, laneTrue, laneTrue}); got != want {
		t.Fatalf("cmpneq = %#v, want %#v", got, want)
	}
}

func TestReduce(t *testing.T) {
	minValue, maxValue := reduce(f32x4{4, -2, 9, 0}, f32x4{4, -2, 9, 0})
	if minValue != -2 || maxValue != 9 {
		t.Fatalf("reduce = (%v, %v), want (-2, 9)", minValue, maxValue)
	}

	for lane := range Lanes {
		v := set1(1)
		v[lane] = -5
		w := set1(1)
		w[lane] = 7
		if minValue, maxValue := reduce(v, w); minValue != -5 || maxValue != 7 {
			t.Fatalf("lane %d: reduce = (%v, %v), want (-5, 7)", lane, minValue, maxValue)
		}
	}
}
