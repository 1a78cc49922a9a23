// Package minmax computes the range of float32 sample buffers.
//
// ScanArray and UnsafeScanArray visit size elements of a caller-owned buffer,
// stepping stride positions between elements, and return the smallest and
// largest value seen. ScanArray ignores NaN and ±Inf; UnsafeScanArray uses
// plain comparisons, which skip NaN but keep ±Inf.
//
// When nothing qualifies (size == 0, or only non-finite values under
// ScanArray) the result is the sentinel pair (+Inf, -Inf). Use IsEmpty to
// test for it.
//
// # Kernels
//
// On amd64 (SSE2) and arm64 (NEON) the scans run on a 4-lane float32 register
// model: long contiguous input goes through an unrolled bulk kernel with a
// shuffle based horizontal reduction, short or strided input through a
// single-lane kernel. Everywhere else, and when built with the purego tag,
// a portable scalar loop is used. All kernels return identical results for
// finite input.
//
// # Override
//
// The ALGO_MINMAX_SSE2_MODE environment variable is read once per process
// and selects a dispatch mode for testing and benchmarking:
//
//	0  normal dispatch (default)
//	1  always use the single-lane vector kernel
//	2  always use the scalar kernel
//	3  as 2, and UseSSE2 reports false
//
// All functions are safe for concurrent use and never allocate.
package minmax
