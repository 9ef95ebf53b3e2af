package l2math

import "github.com/ajroetker/go-l2math/fp"

// expo2 returns e^x/2 for x large enough that e^x itself would overflow
// while e^x/2 might not. It computes exp(x - k*ln2) * 2^(k-1) with the
// scale split into two equal factors so neither multiplication overflows
// before the final one.
func expo2(x float64) float64 {
	scale := fp.FromBits64(uint64(fp.F64Bias+expo2K/2) << fp.F64ExpShift)
	return Exp(x-expo2KLn2) * scale * scale
}
