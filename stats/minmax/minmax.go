package minmax

import (
	"math"

	"github.com/cwbudde/algo-minmax/stats/minmax/internal/arch/generic"
)

// ScanArray returns the smallest and largest finite value among
// values[0], values[stride], ..., values[(size-1)*stride].
//
// NaN and ±Inf are ignored. If size is 0 or no visited value is finite the
// result is (+Inf, -Inf).
//
// ScanArray panics if size < 0, stride < 1, or values is too short to hold
// the visited elements.
func ScanArray(values []float32, size, stride int) (min, max float32) {
	checkView(values, size, stride)
	return dispatchSafe(values, size, stride)
}

// UnsafeScanArray is ScanArray without the finiteness filter, for input the
// caller knows to be clean.
//
// Elements are compared with < and >: NaN never wins and is therefore
// skipped on the scalar and single-lane paths, while ±Inf take part in the
// result. What the bulk path makes of NaN is unspecified. The empty result is
// (+Inf, -Inf).
func UnsafeScanArray(values []float32, size, stride int) (min, max float32) {
	checkView(values, size, stride)
	return dispatchUnsafe(values, size, stride)
}

// Scan is ScanArray over every element of values.
func Scan(values []float32) (min, max float32) {
	return ScanArray(values, len(values), 1)
}

// UnsafeScan is UnsafeScanArray over every element of values.
func UnsafeScan(values []float32) (min, max float32) {
	return UnsafeScanArray(values, len(values), 1)
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float32) bool {
	return generic.IsFinite(v)
}

// IsEmpty reports whether (min, max) is the sentinel pair returned when no
// value qualified.
func IsEmpty(min, max float32) bool {
	return math.IsInf(float64(min), 1) && math.IsInf(float64(max), -1)
}

func checkView(values []float32, size, stride int) {
	if size < 0 {
		panic("minmax: negative size")
	}
	if stride < 1 {
		panic("minmax: stride must be positive")
	}
	if size > 0 && (len(values) == 0 || size-1 > (len(values)-1)/stride) {
		panic("minmax: buffer too short for size and stride")
	}
}
