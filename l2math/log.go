package l2math

import "github.com/ajroetker/go-l2math/fp"

// Log returns the natural logarithm of x.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(±0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
//	Log(1) = +0
//
// x is written as 2^k * (1+f) with 1+f in [sqrt(2)/2, sqrt(2)], and
// log(1+f) is evaluated as f - hfsq + s*(hfsq+R) where s = f/(2+f) and R
// is the Lg1..Lg7 polynomial in s^2.
func Log(x float64) float64 {
	u := fp.ToBits64(x)
	hx := uint32(u >> 32)
	k := 0

	switch {
	case hx < 0x00100000 || hx>>31 != 0:
		if u<<1 == 0 {
			return -1 / (x * x)
		}
		if hx>>31 != 0 {
			return (x - x) / (x - x)
		}
		// Subnormal: scale into the normal range.
		k -= 54
		x *= 0x1p54
		u = fp.ToBits64(x)
		hx = uint32(u >> 32)
	case hx >= 0x7ff00000:
		return x
	case hx == hiOne && u<<32 == 0:
		return 0
	}

	hx += hiOne - 0x3fe6a09e
	k += int(hx>>20) - fp.F64Bias
	hx = hx&0x000fffff + 0x3fe6a09e
	x = fp.FromBits64(uint64(hx)<<32 | u&0xffffffff)

	f := x - 1
	hfsq := 0.5 * f * f
	dk := float64(k)
	return logPoly(f, hfsq) + dk*ln2Lo - hfsq + f + dk*ln2Hi
}

// logPoly returns s*(hfsq+R(s)) for s = f/(2+f).
func logPoly(f, hfsq float64) float64 {
	s := f / (2 + f)
	z := s * s
	w := z * z
	t1 := w * (lg2 + w*(lg4+w*lg6))
	t2 := z * (lg1 + w*(lg3+w*(lg5+w*lg7)))
	return s * (hfsq + t2 + t1)
}
