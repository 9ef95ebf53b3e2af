package l2math

import "github.com/ajroetker/go-l2math/fp"

// Scalbn returns x * 2^n computed exactly when the result is
// representable. Overflow and underflow happen in at most three
// multiplications, and the final step always lands below 2^-53 before a
// subnormal result is formed so there is a single rounding.
func Scalbn(x float64, n int) float64 {
	y := x
	if n > 1023 {
		y *= 0x1p1023
		n -= 1023
		if n > 1023 {
			y *= 0x1p1023
			n -= 1023
			if n > 1023 {
				n = 1023
			}
		}
	} else if n < -1022 {
		y *= 0x1p-1022 * 0x1p53
		n += 1022 - 53
		if n < -1022 {
			y *= 0x1p-1022 * 0x1p53
			n += 1022 - 53
			if n < -1022 {
				n = -1022
			}
		}
	}
	return y * fp.FromBits64(uint64(fp.F64Bias+n)<<fp.F64ExpShift)
}
