//go:build arm64

package fp

import "golang.org/x/sys/cpu"

func init() {
	currentPath = RoundingToInt
	currentTarget = "neon"
	if cpu.ARM64.HasSVE {
		currentTarget = "sve"
	}
	if !cpu.ARM64.HasASIMD {
		// Scalar FP only.
		currentTarget = "fp"
	}

	if IntCastEnv() {
		currentPath = RoundingIntCast
	}
}
