// Package cpu provides CPU feature detection for min/max kernel selection.
//
// Only the 128-bit float vector extensions matter here: SSE2 on amd64 and
// NEON (Advanced SIMD) on arm64. Detection runs lazily on the first call to
// DetectFeatures and the result is cached for the lifetime of the process.
package cpu

import (
	"sync"
)

// SIMDLevel identifies the vector instruction set a kernel requires.
type SIMDLevel int

const (
	// SIMDNone indicates the portable scalar kernels.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDNEON indicates ARM NEON / Advanced SIMD (baseline for arm64).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool // Streaming SIMD Extensions 2
	HasNEON bool // ARM Advanced SIMD

	// ForceGeneric disables every vector kernel (testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH of the detecting process.
	Architecture string
}

// HasVector128 reports whether f allows any 128-bit float vector kernel.
func (f Features) HasVector128() bool {
	if f.ForceGeneric {
		return false
	}
	return f.HasSSE2 || f.HasNEON
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures overrides hardware detection in tests.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features of the current system.
//
// It is safe for concurrent use. Forced features, when set, take precedence
// over the detected ones.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// HasNEON returns true if the CPU supports ARM NEON instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides detection with f. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
// Intended for tests.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if features allow a kernel built for level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
