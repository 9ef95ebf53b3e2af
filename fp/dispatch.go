package fp

import (
	"os"
	"strconv"
)

// RoundingPath identifies how the rounding primitives obtain the integer
// neighbour of a value.
type RoundingPath int

const (
	// RoundingToInt adds and subtracts 2^52 (or 2^23) so that the FPU's
	// round-to-nearest does the work. Requires arithmetic that rounds to
	// the target precision after every operation.
	RoundingToInt RoundingPath = iota

	// RoundingIntCast truncates through a wide signed integer and fixes up
	// the direction afterwards. Used where intermediate results may carry
	// excess precision.
	RoundingIntCast
)

// String returns a human-readable name for the rounding path.
func (p RoundingPath) String() string {
	switch p {
	case RoundingToInt:
		return "toint"
	case RoundingIntCast:
		return "intcast"
	default:
		return "unknown"
	}
}

// currentPath is the rounding path for this runtime.
// Set by init() in dispatch_*.go files.
var currentPath RoundingPath

// currentTarget is a short name for the floating-point unit in use.
// Set by init() in dispatch_*.go files.
var currentTarget string

// CurrentRoundingPath returns the rounding path selected at start-up.
func CurrentRoundingPath() RoundingPath {
	return currentPath
}

// IntCastRounding reports whether the integer-cast rounding path is active.
func IntCastRounding() bool {
	return currentPath == RoundingIntCast
}

// CurrentTarget returns the name of the detected floating-point target,
// for example "sse2", "x87", "neon" or "generic".
func CurrentTarget() string {
	return currentTarget
}

// IntCastEnv checks if the L2MATH_INTCAST environment variable is set.
// When set, the integer-cast rounding path is used regardless of the CPU.
// This is useful for testing both paths on a single machine.
func IntCastEnv() bool {
	val := os.Getenv("L2MATH_INTCAST")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
