package l2math

import "github.com/ajroetker/go-l2math/fp"

// Trunc rounds x toward zero. ±0, ±Inf and NaN are returned unchanged.
func Trunc(x float64) float64 {
	u := fp.ToBits64(x)
	// e counts the sign and exponent bits plus the integral mantissa bits.
	e := int(u>>fp.F64ExpShift&fp.F64ExpMask) - fp.F64Bias + 12
	if e >= fp.F64MantissaBits+12 {
		return x
	}
	if e < 12 {
		e = 1
	}
	m := ^uint64(0) >> uint(e)
	if u&m == 0 {
		return x
	}
	fp.ForceEval64(x + huge)
	return fp.FromBits64(u &^ m)
}

// Truncf is the float32 form of Trunc.
func Truncf(x float32) float32 {
	u := fp.ToBits32(x)
	e := int(u>>fp.F32ExpShift&fp.F32ExpMask) - fp.F32Bias + 9
	if e >= fp.F32MantissaBits+9 {
		return x
	}
	if e < 9 {
		e = 1
	}
	m := ^uint32(0) >> uint(e)
	if u&m == 0 {
		return x
	}
	fp.ForceEval32(x + huge)
	return fp.FromBits32(u &^ m)
}
