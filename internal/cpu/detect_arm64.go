//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on arm64 systems.
//
// NEON (Advanced SIMD) is part of the ARMv8-A baseline, but darwin does not
// expose the feature registers, so fall back to the GOOS check there.
func detectFeaturesImpl() Features {
	hasNEON := cpu.ARM64.HasASIMD || runtime.GOOS == "darwin"

	return Features{
		HasNEON:      hasNEON,
		Architecture: runtime.GOARCH,
	}
}
