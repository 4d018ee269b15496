// Package cpu provides CPU feature detection for execution-strategy selection.
//
// It detects SIMD instruction set extensions (SSE2, AVX2, NEON) available on
// the current processor and reports the parallelism the runtime will use.
// Detection runs lazily on the first call to DetectFeatures() and the result
// is cached.
package cpu

import (
	"runtime"
	"sync"
)

// SIMDLevel represents a SIMD instruction set extension level.
// Higher numeric values generally indicate more advanced SIMD capabilities,
// but levels are not strictly comparable across architectures.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD support (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX.
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512.
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel strategy selection.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	// Architecture is runtime.GOARCH (e.g. "amd64", "arm64").
	Architecture string
}

// Best returns the highest SIMD level available in f.
func (f Features) Best() SIMDLevel {
	switch {
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasAVX:
		return SIMDAVX
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
)

// DetectFeatures returns the CPU features available on the current system.
// Detection is performed once and cached; safe for concurrent use.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})

	return detectedFeatures
}

// Cores returns the parallelism the Go runtime will use for CPU-bound work.
func Cores() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}

	return n
}
