package l2math

// Fdim returns the positive difference max(x-y, 0).
//
// Special cases are:
//
//	Fdim(NaN, y) = NaN
//	Fdim(x, NaN) = NaN
//	Fdim(x, y) = +0 for x <= y
//
// When both arguments are NaN the first one is returned.
func Fdim(x, y float64) float64 {
	switch {
	case x != x:
		return x
	case y != y:
		return y
	case x > y:
		return x - y
	}
	return 0
}

// Fdimf is the float32 form of Fdim.
func Fdimf(x, y float32) float32 {
	switch {
	case x != x:
		return x
	case y != y:
		return y
	case x > y:
		return x - y
	}
	return 0
}
