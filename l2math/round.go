package l2math

import "github.com/ajroetker/go-l2math/fp"

// Round returns the nearest integer, rounding half away from zero.
//
// Special cases are:
//
//	Round(±0) = ±0
//	Round(±Inf) = ±Inf
//	Round(NaN) = NaN
func Round(x float64) float64 {
	u := fp.ToBits64(x)
	e := int(u >> fp.F64ExpShift & fp.F64ExpMask)
	if e >= fp.F64Bias+fp.F64MantissaBits {
		return x
	}
	neg := u>>63 != 0
	a := Fabs(x)

	// |x| < 0.5
	if e < fp.F64Bias-1 {
		fp.ForceEval64(a + toint64)
		return Copysign(0, x)
	}

	y := a + toint64 - toint64 - a
	switch {
	case y > 0.5:
		y = y + a - 1
	case y <= -0.5:
		y = y + a + 1
	default:
		y = y + a
	}
	if neg {
		return -y
	}
	return y
}

// Roundf returns the nearest integer, rounding half away from zero.
// Adding the largest float32 below 0.5 before truncating means values just
// under a half-way point are not pushed over it by the addition's rounding.
//
// Special cases are:
//
//	Roundf(±0) = ±0
//	Roundf(±Inf) = ±Inf
//	Roundf(NaN) = NaN
func Roundf(x float32) float32 {
	return Truncf(x + Copysignf(roundBias32, x))
}
