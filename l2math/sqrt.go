package l2math

import (
	"math/bits"

	"github.com/ajroetker/go-l2math/fp"
)

// Sqrt returns the correctly rounded square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
//
// The root is generated one bit at a time on the integer significand, so
// the result does not depend on a hardware square root instruction.
func Sqrt(x float64) float64 {
	switch {
	case x == 0 || x != x:
		return x
	case x < 0:
		return (x - x) / (x - x)
	}

	ix := fp.ToBits64(x)
	exp := int(ix >> fp.F64ExpShift & fp.F64ExpMask)
	if exp == int(fp.F64ExpMask) {
		return x
	}
	if exp == 0 {
		// Subnormal: normalize so the implicit bit lands at bit 52.
		shift := bits.LeadingZeros64(ix) - 11
		ix <<= uint(shift)
		exp = 1 - shift
	}
	exp -= fp.F64Bias
	ix &^= fp.F64ExpMask << fp.F64ExpShift
	ix |= 1 << fp.F64ExpShift
	if exp&1 == 1 {
		ix <<= 1
	}
	exp >>= 1

	ix <<= 1
	var q, s uint64
	r := uint64(1 << (fp.F64ExpShift + 1))
	for r != 0 {
		t := s + r
		if t <= ix {
			s = t + r
			ix -= t
			q += r
		}
		ix <<= 1
		r >>= 1
	}
	// Non-zero remainder: round to nearest on the extra bit.
	if ix != 0 {
		q += q & 1
	}
	return fp.FromBits64(q>>1 + uint64(exp-1+fp.F64Bias)<<fp.F64ExpShift)
}

// Sqrtf is the float32 form of Sqrt.
func Sqrtf(x float32) float32 {
	switch {
	case x == 0 || x != x:
		return x
	case x < 0:
		return (x - x) / (x - x)
	}

	ix := fp.ToBits32(x)
	exp := int(ix >> fp.F32ExpShift & fp.F32ExpMask)
	if exp == int(fp.F32ExpMask) {
		return x
	}
	if exp == 0 {
		shift := bits.LeadingZeros32(ix) - 8
		ix <<= uint(shift)
		exp = 1 - shift
	}
	exp -= fp.F32Bias
	ix &^= fp.F32ExpMask << fp.F32ExpShift
	ix |= 1 << fp.F32ExpShift
	if exp&1 == 1 {
		ix <<= 1
	}
	exp >>= 1

	ix <<= 1
	var q, s uint32
	r := uint32(1 << (fp.F32ExpShift + 1))
	for r != 0 {
		t := s + r
		if t <= ix {
			s = t + r
			ix -= t
			q += r
		}
		ix <<= 1
		r >>= 1
	}
	if ix != 0 {
		q += q & 1
	}
	return fp.FromBits32(q>>1 + uint32(exp-1+fp.F32Bias)<<fp.F32ExpShift)
}
