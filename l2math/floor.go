package l2math

import "github.com/ajroetker/go-l2math/fp"

// Floor returns the greatest integer value less than or equal to x.
//
// Special cases are:
//
//	Floor(±0) = ±0
//	Floor(±Inf) = ±Inf
//	Floor(NaN) = NaN
func Floor(x float64) float64 {
	u := fp.ToBits64(x)
	e := int(u >> fp.F64ExpShift & fp.F64ExpMask)
	if e >= fp.F64Bias+fp.F64MantissaBits || x == 0 {
		return x
	}

	var y float64
	if u>>63 != 0 {
		y = x - toint64 + toint64 - x
	} else {
		y = x + toint64 - toint64 - x
	}

	if e < fp.F64Bias {
		fp.ForceEval64(y)
		if u>>63 != 0 {
			return -1
		}
		return 0
	}
	if y > 0 {
		return x + y - 1
	}
	return x + y
}

// Floorf returns the greatest integer value less than or equal to x.
//
// Special cases are:
//
//	Floorf(±0) = ±0
//	Floorf(±Inf) = ±Inf
//	Floorf(NaN) = NaN
//	Floorf(x) = -1 for -1 < x < 0
func Floorf(x float32) float32 {
	u := fp.ToBits32(x)
	e := int(u>>fp.F32ExpShift&fp.F32ExpMask) - fp.F32Bias

	// Already integral, or Inf/NaN.
	if e >= fp.F32MantissaBits {
		return x
	}

	if e >= 0 {
		// m covers the fractional mantissa bits.
		m := fp.F32MantMask >> uint(e)
		if u&m == 0 {
			return x
		}
		fp.ForceEval32(x + huge)
		if u>>31 != 0 {
			u += m
		}
		u &^= m
		return fp.FromBits32(u)
	}

	// |x| < 1
	fp.ForceEval32(x + huge)
	if u>>31 == 0 {
		return 0
	}
	if u<<1 != 0 {
		return -1
	}
	return x
}
