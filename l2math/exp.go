package l2math

import "github.com/ajroetker/go-l2math/fp"

// Exp returns e^x.
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = 0
//	Exp(NaN) = NaN
//	Exp(x > 709.78...) = +Inf
//	Exp(x < -745.13...) = 0
//
// x is reduced to r = x - k*ln2 with |r| <= 0.5*ln2, then
// e^r = 1 + r + r*c/(2-c) where c is the rational approximation built from
// P1..P5, and the result is scaled by 2^k.
func Exp(x float64) float64 {
	hx := fp.Top32(x)
	sign := int(hx >> 31)
	hx &= 0x7fffffff

	// |x| >= 708.39 or NaN
	if hx >= 0x4086232b {
		if x != x {
			return x
		}
		if x > expOverflow {
			// Overflows to +Inf unless x is already +Inf.
			return x * 0x1p1023
		}
		if x < expDenormal {
			fp.ForceEval32(float32(-expMinSubnorm / x))
			if x < expUnderflow {
				return 0
			}
		}
	}

	var hi, lo float64
	var k int
	switch {
	case hx > hiHalfLn2:
		if hx >= hiThreeHalfLn {
			k = int(invLn2*x + [2]float64{0.5, -0.5}[sign])
		} else {
			k = 1 - sign - sign
		}
		kf := float64(k)
		hi = x - kf*ln2Hi
		lo = kf * ln2Lo
		x = hi - lo
	case hx > 0x3e300000:
		// |x| > 2^-28
		hi = x
	default:
		fp.ForceEval64(0x1p1023 + x)
		return 1 + x
	}

	xx := x * x
	c := x - xx*(expP1+xx*(expP2+xx*(expP3+xx*(expP4+xx*expP5))))
	y := 1 + (x*c/(2-c) - lo + hi)
	if k == 0 {
		return y
	}
	return Scalbn(y, k)
}
