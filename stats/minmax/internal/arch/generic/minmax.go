// Package generic contains the portable scalar min/max kernels.
package generic

import "math"

const (
	absMask    = 0x7FFFFFFF
	expAllOnes = 0x7F800000
)

var (
	posInfinity = float32(math.Inf(1))
	negInfinity = float32(math.Inf(-1))
)

// IsFinite reports whether v is neither NaN nor ±Inf.
//
// NaN and Inf share the all-ones exponent; with the sign bit cleared every
// finite value compares below that pattern.
func IsFinite(v float32) bool {
	return math.Float32bits(v)&absMask < expAllOnes
}

// StridedMinMax returns the extremes of values[0], values[stride], ...
// using plain comparisons. NaN never wins a comparison and is skipped;
// ±Inf take part like any other value.
func StridedMinMax(values []float32, size, stride int) (minValue, maxValue float32) {
	minValue = posInfinity
	maxValue = negInfinity

	index := 0
	for range size {
		v := values[index]
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
		index += stride
	}
	return minValue, maxValue
}

// StridedMinMaxSafe is StridedMinMax restricted to finite values.
func StridedMinMaxSafe(values []float32, size, stride int) (minValue, maxValue float32) {
	minValue = posInfinity
	maxValue = negInfinity

	index := 0
	for range size {
		v := values[index]
		if IsFinite(v) {
			if v < minValue {
				minValue = v
			}
			if v > maxValue {
				maxValue = v
			}
		}
		index += stride
	}
	return minValue, maxValue
}
