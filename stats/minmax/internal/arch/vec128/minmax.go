package vec128

import "math"

var (
	posInfinity = float32(math.Inf(1))
	negInfinity = float32(math.Inf(-1))
)

// finiteMask flags the lanes of v that are neither NaN nor ±Inf.
func finiteMask(v, pInf, nInf f32x4) mask4 {
	return cmpord(v, v).and(cmpneq(v, pInf)).and(cmpneq(v, nInf))
}

// reduce collapses the running registers to scalars with two
// rotate-and-combine rounds.
func reduce(minVec, maxVec f32x4) (minValue, maxValue float32) {
	minVec = minps(minVec, minVec.shuffle(mmShuffle(2, 1, 0, 3)))
	minVec = minps(minVec, minVec.shuffle(mmShuffle(1, 0, 3, 2)))

	maxVec = maxps(maxVec, maxVec.shuffle(mmShuffle(2, 1, 0, 3)))
	maxVec = maxps(maxVec, maxVec.shuffle(mmShuffle(1, 0, 3, 2)))

	return minVec[0], maxVec[0]
}

// StridedMinMax reduces one element at a time in lane 0.
// NaN never replaces the running value; ±Inf do.
func StridedMinMax(values []float32, size, stride int) (minValue, maxValue float32) {
	minVal := setss(posInfinity)
	maxVal := setss(negInfinity)

	index := 0
	for range size {
		// Candidate first: a NaN candidate loses the comparison and the
		// running value survives in lane 0.
		temp := setss(values[index])
		minVal = minss(temp, minVal)
		maxVal = maxss(temp, maxVal)
		index += stride
	}
	return minVal[0], maxVal[0]
}

// StridedMinMaxSafe is StridedMinMax with non-finite elements masked out.
func StridedMinMaxSafe(values []float32, size, stride int) (minValue, maxValue float32) {
	pInf := set1(posInfinity)
	nInf := set1(negInfinity)
	minVal := setss(posInfinity)
	maxVal := setss(negInfinity)

	index := 0
	for range size {
		temp := setss(values[index])
		valid := finiteMask(temp, pInf, nInf)

		// Invalid lanes take the running value, so they cannot move it.
		minVal = minss(minVal, valid.blend(temp, minVal))
		maxVal = maxss(maxVal, valid.blend(temp, maxVal))

		index += stride
	}
	return minVal[0], maxVal[0]
}

// BulkMinMax reduces the first size contiguous elements four at a time.
// The running registers start from the first four elements. size must be at
// least MinBulkSize.
func BulkMinMax(values []float32, size int) (minValue, maxValue float32) {
	if size < MinBulkSize {
		panic("vec128: bulk min/max requires at least 4 elements")
	}
	unrollSize := size &^ (Lanes - 1)

	minVals := loadu(values)
	maxVals := minVals
	for i := Lanes; i < unrollSize; i += Lanes {
		temp := loadu(values[i:])
		minVals = minps(temp, minVals)
		maxVals = maxps(temp, maxVals)
	}

	for i := unrollSize; i < size; i++ {
		temp := setss(values[i])
		minVals = minss(minVals, temp)
		maxVals = maxss(maxVals, temp)
	}

	return reduce(minVals, maxVals)
}

// BulkMinMaxSafe is BulkMinMax restricted to finite values. The running
// registers start at (+Inf, -Inf) so input without finite values yields that
// pair. size must be at least MinBulkSize.
func BulkMinMaxSafe(values []float32, size int) (minValue, maxValue float32) {
	if size < MinBulkSize {
		panic("vec128: bulk min/max requires at least 4 elements")
	}
	unrollSize := size &^ (Lanes - 1)

	pInf := set1(posInfinity)
	nInf := set1(negInfinity)
	minVals := pInf
	maxVals := nInf

	for i := 0; i < unrollSize; i += Lanes {
		temp := loadu(values[i:])
		valid := finiteMask(temp, pInf, nInf)

		minVals = minps(valid.blend(temp, minVals), minVals)
		maxVals = maxps(valid.blend(temp, maxVals), maxVals)
	}

	for i := unrollSize; i < size; i++ {
		temp := setss(values[i])
		valid := finiteMask(temp, pInf, nInf)

		minVals = minss(minVals, valid.blend(temp, minVals))
		maxVals = maxss(maxVals, valid.blend(temp, maxVals))
	}

	return reduce(minVals, maxVals)
}
