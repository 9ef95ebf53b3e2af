package l2math

import "github.com/ajroetker/go-l2math/fp"

// Cosh returns the hyperbolic cosine of x.
//
// Special cases are:
//
//	Cosh(±0) = 1
//	Cosh(±Inf) = +Inf
//	Cosh(NaN) = NaN
//
// Regions on |x|:
//
//	|x| < ln2:          1 + t^2/(2(1+t)) with t = expm1(|x|)
//	|x| < ln(DBL_MAX):  (e^|x| + e^-|x|)/2
//	otherwise:          e^|x|/2 via expo2, overflowing to +Inf
func Cosh(x float64) float64 {
	x = Fabs(x)
	w := fp.Top32(x)

	if w < hiLn2 {
		// |x| < 2^-26: cosh(x) rounds to 1.
		if w < hiOne-26<<20 {
			fp.ForceEval64(x + huge)
			return 1
		}
		t := Expm1(x)
		return 1 + t*t/(2*(1+t))
	}

	if w < hiLogMax {
		t := Exp(x)
		return 0.5 * (t + 1/t)
	}

	// |x| >= ln(DBL_MAX) or NaN
	return expo2(x)
}

// Sinh returns the hyperbolic sine of x.
//
// Special cases are:
//
//	Sinh(±0) = ±0
//	Sinh(±Inf) = ±Inf
//	Sinh(NaN) = NaN
func Sinh(x float64) float64 {
	h := 0.5
	if fp.SignBit64(x) {
		h = -h
	}
	a := Fabs(x)
	w := fp.Top32(a)

	if w < hiLogMax {
		t := Expm1(a)
		if w < hiOne {
			if w < hiOne-26<<20 {
				return x
			}
			return h * (2*t - t*t/(t+1))
		}
		return h * (t + t/(t+1))
	}

	// |x| >= ln(DBL_MAX) or NaN
	return 2 * h * expo2(a)
}

// Tanh returns the hyperbolic tangent of x.
//
// Special cases are:
//
//	Tanh(±0) = ±0
//	Tanh(±Inf) = ±1
//	Tanh(NaN) = NaN
func Tanh(x float64) float64 {
	neg := fp.SignBit64(x)
	a := Fabs(x)
	w := fp.Top32(a)

	var t float64
	switch {
	case w > 0x3fe193ea:
		// |x| > log(3)/2 or NaN
		if w > 0x40340000 {
			// |x| > 20: 1 without raising overflow.
			t = 1 - 0/a
		} else {
			t = Expm1(2 * a)
			t = 1 - 2/(t+2)
		}
	case w > 0x3fd058ae:
		// |x| > log(5/3)/2
		t = Expm1(2 * a)
		t = t / (t + 2)
	case w >= 0x00100000:
		t = Expm1(-2 * a)
		t = -t / (t + 2)
	default:
		// Subnormal.
		fp.ForceEval32(float32(a))
		t = a
	}
	if neg {
		return -t
	}
	return t
}

// Asinh returns the inverse hyperbolic sine of x.
//
// Special cases are:
//
//	Asinh(±0) = ±0
//	Asinh(±Inf) = ±Inf
//	Asinh(NaN) = NaN
//
// asinh is odd, so the work is done on |x| and the sign put back at the
// end. Regions by biased exponent e of |x|:
//
//	|x| >= 2^26:   log(|x|) + ln2
//	|x| >= 2:      log(2|x| + 1/(sqrt(x^2+1) + |x|))
//	|x| >= 2^-26:  ln1p(|x| + x^2/(sqrt(x^2+1) + 1))
//	otherwise:     |x|
func Asinh(x float64) float64 {
	u := fp.ToBits64(x)
	e := int(u >> fp.F64ExpShift & fp.F64ExpMask)
	neg := u>>63 != 0
	a := Fabs(x)

	switch {
	case e >= fp.F64Bias+26:
		a = Log(a) + ln2
	case e >= fp.F64Bias+1:
		a = Log(2*a + 1/(Sqrt(a*a+1)+a))
	case e >= fp.F64Bias-26:
		a = Ln1p(a + a*a/(Sqrt(a*a+1)+1))
	default:
		// Inexact unless x is zero.
		fp.ForceEval64(a + huge)
	}
	if neg {
		return -a
	}
	return a
}

// Acosh returns the inverse hyperbolic cosine of x.
//
// Special cases are:
//
//	Acosh(+Inf) = +Inf
//	Acosh(x < 1) = NaN
//	Acosh(NaN) = NaN
//	Acosh(1) = +0
//
// Values below 1 need no explicit check: every region feeds a negative
// argument to Log, Ln1p or Sqrt, which then produce NaN.
func Acosh(x float64) float64 {
	e := fp.BiasedExp64(x)

	switch {
	case e < fp.F64Bias+1:
		// |x| < 2
		d := x - 1
		return Ln1p(d + Sqrt(d*d+2*d))
	case e < fp.F64Bias+26:
		return Log(2*x - 1/(x+Sqrt(x*x-1)))
	default:
		// |x| >= 2^26, Inf or NaN
		return Log(x) + ln2
	}
}

// Atanh returns the inverse hyperbolic tangent of x.
//
// Special cases are:
//
//	Atanh(±1) = ±Inf
//	Atanh(±0) = ±0
//	Atanh(x) = NaN for |x| > 1
//	Atanh(NaN) = NaN
func Atanh(x float64) float64 {
	e := fp.BiasedExp64(x)
	neg := fp.SignBit64(x)
	y := Fabs(x)

	switch {
	case e < fp.F64Bias-32:
		// |x| < 2^-32: atanh(x) rounds to x.
		if e == 0 {
			fp.ForceEval32(float32(y))
		}
	case e < fp.F64Bias-1:
		// |x| < 0.5
		y = 0.5 * Ln1p(2*y+2*y*y/(1-y))
	default:
		y = 0.5 * Ln1p(2*(y/(1-y)))
	}
	if neg {
		return -y
	}
	return y
}
