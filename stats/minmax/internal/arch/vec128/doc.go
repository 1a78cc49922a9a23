// Package vec128 implements the min/max kernels on a 4-lane float32 register
// model matching 128-bit SSE2 / NEON arithmetic.
//
// Each lane operation reproduces the instruction it stands for (minps, maxps,
// minss, maxss, cmpordps, cmpneqps, andps, andnps, orps, shufps), including
// its NaN behaviour, so the reduction tree and masking produce the same bits
// the hardware sequence would. The loops are written over fixed-size arrays
// so the compiler can keep lanes in registers.
package vec128
