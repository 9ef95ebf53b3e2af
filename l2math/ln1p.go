package l2math

import "github.com/ajroetker/go-l2math/fp"

// Ln1p returns the natural logarithm of 1 + x, accurate even when x is
// near zero.
//
// Special cases are:
//
//	Ln1p(+Inf) = +Inf
//	Ln1p(±0) = ±0
//	Ln1p(-1) = -Inf
//	Ln1p(x < -1) = NaN
//	Ln1p(NaN) = NaN
func Ln1p(x float64) float64 {
	u := fp.ToBits64(x)
	hx := uint32(u >> 32)
	k := 1
	var c, f float64

	switch {
	// 1+x < sqrt(2)+
	case hx < 0x3fda827a || hx>>31 != 0:
		// x <= -1
		if hx >= 0xbff00000 {
			if x == -1 {
				return x / (x + 1)
			}
			return (x - x) / (x - x)
		}
		// |x| < 2^-53
		if hx<<1 < 0x3ca00000<<1 {
			if hx&0x7ff00000 == 0 {
				fp.ForceEval32(float32(x))
			}
			return x
		}
		// sqrt(2)/2- <= 1+x < sqrt(2)+
		if hx <= 0xbfd2bec4 {
			k = 0
			f = x
		}
	case hx >= 0x7ff00000:
		return x
	}

	if k != 0 {
		uf := 1 + x
		uu := fp.ToBits64(uf)
		hu := uint32(uu>>32) + hiOne - 0x3fe6a09e
		k = int(hu>>20) - fp.F64Bias
		// c ~ log(1+x) - log(uf), zero once it cannot matter.
		if k < 54 {
			if k >= 2 {
				c = 1 - (uf - x)
			} else {
				c = x - (uf - 1)
			}
			c /= uf
		}
		hu = hu&0x000fffff + 0x3fe6a09e
		f = fp.FromBits64(uint64(hu)<<32|uu&0xffffffff) - 1
	}

	hfsq := 0.5 * f * f
	dk := float64(k)
	return logPoly(f, hfsq) + (dk*ln2Lo + c) - hfsq + f + dk*ln2Hi
}
