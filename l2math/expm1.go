package l2math

import "github.com/ajroetker/go-l2math/fp"

// Expm1 returns e^x - 1, accurate even when x is near zero.
//
// Special cases are:
//
//	Expm1(+Inf) = +Inf
//	Expm1(-Inf) = -1
//	Expm1(NaN) = NaN
//	Expm1(±0) = ±0
//
// Very large values overflow to +Inf; very negative values saturate at -1.
func Expm1(x float64) float64 {
	u := fp.ToBits64(x)
	hx := uint32(u>>32) & 0x7fffffff
	neg := u>>63 != 0

	// |x| >= 56*ln2 or NaN
	if hx >= 0x4043687a {
		if x != x {
			return x
		}
		if neg {
			return -1
		}
		if x > expOverflow {
			return x * 0x1p1023
		}
	}

	var hi, lo, c float64
	var k int
	switch {
	case hx > hiHalfLn2:
		if hx < hiThreeHalfLn {
			if !neg {
				hi = x - ln2Hi
				lo = ln2Lo
				k = 1
			} else {
				hi = x + ln2Hi
				lo = -ln2Lo
				k = -1
			}
		} else {
			if neg {
				k = int(invLn2*x - 0.5)
			} else {
				k = int(invLn2*x + 0.5)
			}
			t := float64(k)
			hi = x - t*ln2Hi
			lo = t * ln2Lo
		}
		x = hi - lo
		c = (hi - x) - lo
	case hx < 0x3c900000:
		// |x| < 2^-54: e^x - 1 rounds to x.
		if hx < 0x00100000 {
			fp.ForceEval32(float32(x))
		}
		return x
	}

	// x is now in [-0.5*ln2, 0.5*ln2].
	hfx := 0.5 * x
	hxs := x * hfx
	r1 := 1 + hxs*(expm1Q1+hxs*(expm1Q2+hxs*(expm1Q3+hxs*(expm1Q4+hxs*expm1Q5))))
	t := 3 - r1*hfx
	e := hxs * ((r1 - t) / (6 - x*t))
	if k == 0 {
		return x - (x*e - hxs)
	}
	e = x*(e-c) - c
	e -= hxs

	// e^x ~ 2^k * (x - e + 1)
	switch k {
	case -1:
		return 0.5*(x-e) - 0.5
	case 1:
		if x < -0.25 {
			return -2 * (e - (x + 0.5))
		}
		return 1 + 2*(x-e)
	}

	twopk := fp.FromBits64(uint64(fp.F64Bias+k) << fp.F64ExpShift)
	if k < 0 || k > 56 {
		y := x - e + 1
		if k == 1024 {
			y = y * 2 * 0x1p1023
		} else {
			y *= twopk
		}
		return y - 1
	}
	twomk := fp.FromBits64(uint64(fp.F64Bias-k) << fp.F64ExpShift)
	if k < 20 {
		return (x - e + (1 - twomk)) * twopk
	}
	return (x - (e + twomk) + 1) * twopk
}
