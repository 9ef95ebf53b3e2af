package l2math

import "github.com/ajroetker/go-l2math/fp"

// Ceil returns the least integer value greater than or equal to x.
//
// Special cases are:
//
//	Ceil(±0) = ±0
//	Ceil(±Inf) = ±Inf
//	Ceil(NaN) = NaN
//	Ceil(x) = -0 for -1 < x < 0
func Ceil(x float64) float64 {
	if fp.IntCastRounding() {
		return ceilIntCast(x)
	}
	return ceilToInt(x)
}

// ceilToInt lets round-to-nearest find the integer neighbour by adding
// and removing 2^52.
func ceilToInt(x float64) float64 {
	u := fp.ToBits64(x)
	e := int(u >> fp.F64ExpShift & fp.F64ExpMask)
	if e >= fp.F64Bias+fp.F64MantissaBits || x == 0 {
		return x
	}

	// y = round(x) - x
	var y float64
	if u>>63 != 0 {
		y = x - toint64 + toint64 - x
	} else {
		y = x + toint64 - toint64 - x
	}

	// |x| < 1
	if e < fp.F64Bias {
		fp.ForceEval64(y)
		if u>>63 != 0 {
			return fp.NegZero64()
		}
		return 1
	}
	if y < 0 {
		return x + y + 1
	}
	return x + y
}

// ceilIntCast truncates through int64 and corrects upward. It does not
// depend on the precision intermediate results are kept in.
func ceilIntCast(x float64) float64 {
	// Also rejects NaN.
	if !(Fabs(x) < 0x1p52) {
		return x
	}
	t := float64(int64(x))
	if t != x {
		// inexact
		fp.ForceEval64(x + huge)
		if t < x {
			t++
		}
	}
	return Copysign(t, x)
}

// Ceilf is the float32 form of Ceil.
func Ceilf(x float32) float32 {
	u := fp.ToBits32(x)
	e := int(u>>fp.F32ExpShift&fp.F32ExpMask) - fp.F32Bias
	if e >= fp.F32MantissaBits {
		return x
	}
	if e >= 0 {
		m := fp.F32MantMask >> uint(e)
		if u&m == 0 {
			return x
		}
		fp.ForceEval32(x + huge)
		if u>>31 == 0 {
			u += m
		}
		u &^= m
		return fp.FromBits32(u)
	}

	fp.ForceEval32(x + huge)
	if u>>31 != 0 {
		return fp.NegZero32()
	}
	if u<<1 != 0 {
		return 1
	}
	return x
}
