package vec128

import "math"

// Lanes is the number of float32 lanes in one register.
const Lanes = 4

// MinBulkSize is the smallest size BulkMinMax and BulkMinMaxSafe accept.
const MinBulkSize = Lanes

// f32x4 is one 128-bit register holding four float32 lanes.
type f32x4 [Lanes]float32

// mask4 is the result of a lane comparison: all ones or all zeros per lane.
type mask4 [Lanes]uint32

const laneTrue = 0xFFFFFFFF

// set1 broadcasts v to every lane (_mm_set1_ps).
func set1(v float32) f32x4 {
	return f32x4{v, v, v, v}
}

// setss places v in lane 0 and zeroes the rest (_mm_set_ss).
func setss(v float32) f32x4 {
	return f32x4{v}
}

// loadu reads four consecutive values (_mm_loadu_ps).
func loadu(p []float32) f32x4 {
	_ = p[3]
	return f32x4{p[0], p[1], p[2], p[3]}
}

// minps returns a where a < b, else b. A NaN in either operand yields b.
func minps(a, b f32x4) f32x4 {
	var r f32x4
	for i := range r {
		if a[i] < b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// maxps returns a where a > b, else b. A NaN in either operand yields b.
func maxps(a, b f32x4) f32x4 {
	var r f32x4
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// minss is minps on lane 0; lanes 1..3 are copied from a.
func minss(a, b f32x4) f32x4 {
	if !(a[0] < b[0]) {
		a[0] = b[0]
	}
	return a
}

// maxss is maxps on lane 0; lanes 1..3 are copied from a.
func maxss(a, b f32x4) f32x4 {
	if !(a[0] > b[0]) {
		a[0] = b[0]
	}
	return a
}

// mmShuffle builds a shufps immediate, highest lane first (_MM_SHUFFLE).
func mmShuffle(z, y, x, w uint8) uint8 {
	return z<<6 | y<<4 | x<<2 | w
}

// shuffle permutes the lanes of v by imm (_mm_shuffle_ps(v, v, imm)).
func (v f32x4) shuffle(imm uint8) f32x4 {
	return f32x4{v[imm&3], v[imm>>2&3], v[imm>>4&3], v[imm>>6&3]}
}

// cmpord sets lanes where neither a nor b is NaN (_mm_cmpord_ps).
func cmpord(a, b f32x4) mask4 {
	var m mask4
	for i := range m {
		if a[i] == a[i] && b[i] == b[i] {
			m[i] = laneTrue
		}
	}
	return m
}

// cmpneq sets lanes where a != b, unordered lanes included (_mm_cmpneq_ps).
func cmpneq(a, b f32x4) mask4 {
	var m mask4
	for i := range m {
		if a[i] != b[i] {
			m[i] = laneTrue
		}
	}
	return m
}

// and is the lane-wise bitwise AND of two masks (_mm_and_ps).
func (m mask4) and(o mask4) mask4 {
	for i := range m {
		m[i] &= o[i]
	}
	return m
}

// blend computes (m & a) | (^m & b) on the raw lane bits
// (_mm_or_ps(_mm_and_ps(m, a), _mm_andnot_ps(m, b))).
func (m mask4) blend(a, b f32x4) f32x4 {
	var r f32x4
	for i := range r {
		bits := m[i]&math.Float32bits(a[i]) | ^m[i]&math.Float32bits(b[i])
		r[i] = math.Float32frombits(bits)
	}
	return r
}
