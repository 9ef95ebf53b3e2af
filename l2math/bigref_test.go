package l2math

import (
	"math"
	"math/big"
	"testing"

	"github.com/ajroetker/go-l2math/internal/ulp"
)

// refPrec is the working precision of the multi-precision references.
const refPrec = 320

// trueULP is the bound on the distance from the correctly rounded result.
const trueULP = 2

func newBig(x float64) *big.Float {
	return new(big.Float).SetPrec(refPrec).SetFloat64(x)
}

// bigExp returns e^x. The argument is halved s times until it is below
// 2^-10, summed as a Taylor series and squared back up.
func bigExp(x *big.Float) *big.Float {
	r := new(big.Float).SetPrec(refPrec).Set(x)
	s := max(0, r.MantExp(nil)+10)
	if r.Sign() != 0 {
		r.SetMantExp(r, -s)
	}

	sum := newBig(1)
	term := newBig(1)
	for k := 1; ; k++ {
		term.Mul(term, r)
		term.Quo(term, newBig(float64(k)))
		if term.Sign() == 0 || term.MantExp(nil) < sum.MantExp(nil)-refPrec-8 {
			break
		}
		sum.Add(sum, term)
	}
	for range s {
		sum.Mul(sum, sum)
	}
	return sum
}

// bigLog returns ln(v) by Newton iteration y += v*e^-y - 1. The seed is
// a float64 approximation, so three steps exceed the working precision.
func bigLog(v *big.Float, seed float64) *big.Float {
	y := newBig(seed)
	one := newBig(1)
	for range 3 {
		t := bigExp(new(big.Float).SetPrec(refPrec).Neg(y))
		t.Mul(t, v)
		t.Sub(t, one)
		y.Add(y, t)
	}
	return y
}

// tinySeries returns x + c2*x^2 + c3*x^3, for |x| small enough that the
// remaining terms are below the working precision.
func tinySeries(x, c2, c3 float64) *big.Float {
	b := newBig(x)
	x2 := new(big.Float).SetPrec(refPrec).Mul(b, b)
	x3 := new(big.Float).SetPrec(refPrec).Mul(x2, b)
	x2.Mul(x2, newBig(c2))
	x3.Mul(x3, newBig(c3))
	return b.Add(b, x2).Add(b, x3)
}

func refExp(x float64) *big.Float { return bigExp(newBig(x)) }

func refExpm1(x float64) *big.Float {
	if math.Abs(x) >= 1 {
		e := bigExp(newBig(x))
		return e.Sub(e, newBig(1))
	}
	r := newBig(x)
	sum := newBig(x)
	term := newBig(x)
	for k := 2; ; k++ {
		term.Mul(term, r)
		term.Quo(term, newBig(float64(k)))
		if term.Sign() == 0 || term.MantExp(nil) < sum.MantExp(nil)-refPrec-8 {
			break
		}
		sum.Add(sum, term)
	}
	return sum
}

func refLog(x float64) *big.Float { return bigLog(newBig(x), math.Log(x)) }

func refLn1p(x float64) *big.Float {
	if math.Abs(x) < 0x1p-100 {
		return tinySeries(x, -0.5, 1.0/3)
	}
	v := newBig(x)
	v.Add(v, newBig(1))
	return bigLog(v, math.Log1p(x))
}

func refCosh(x float64) *big.Float {
	a := newBig(math.Abs(x))
	e := bigExp(a)
	e.Add(e, bigExp(a.Neg(a)))
	return e.Quo(e, newBig(2))
}

func refAsinh(x float64) *big.Float {
	if math.Abs(x) < 0x1p-100 {
		return tinySeries(x, 0, -1.0/6)
	}
	a := newBig(math.Abs(x))
	v := new(big.Float).SetPrec(refPrec).Mul(a, a)
	v.Add(v, newBig(1))
	v.Sqrt(v)
	v.Add(v, a)
	y := bigLog(v, math.Asinh(math.Abs(x)))
	if x < 0 {
		y.Neg(y)
	}
	return y
}

func checkTrueULP(t *testing.T, name string, f func(float64) float64, ref func(float64) *big.Float, xs []float64) {
	t.Helper()
	var s ulp.Stats
	for _, x := range xs {
		if math.IsInf(x, 0) {
			continue
		}
		got := f(x)
		want := x
		if x != 0 {
			want, _ = ref(x).Float64()
		}
		d := ulp.Dist64(got, want)
		s.Add(d, x)
		if d > trueULP {
			t.Errorf("%s(%v) = %v, want %v (%d ulp)", name, x, got, want, d)
			return
		}
	}
	t.Logf("%s: %d samples, max %d ulp, mean %.3f", name, s.Count, s.Max, s.Mean())
}

func TestWithinTwoULPOfTrueValue(t *testing.T) {
	if testing.Short() {
		t.Skip("multi-precision reference is slow")
	}

	ln1pGrid := append(logGrid(1e-20, 1e300, 2003), linGrid(-0.999999, 3, 2003)...)
	for _, x := range logGrid(1e-20, 0.999, 1001) {
		ln1pGrid = append(ln1pGrid, -x)
	}

	tests := []struct {
		name string
		f    func(float64) float64
		ref  func(float64) *big.Float
		xs   []float64
	}{
		{"Exp", Exp, refExp, append(linGrid(-745, 709.7, 4001), symmetric(logGrid(1e-12, 2, 1001))...)},
		{"Expm1", Expm1, refExpm1, append(symmetric(logGrid(1e-20, 40, 2003)), linGrid(-60, 709.7, 2003)...)},
		{"Log", Log, refLog, append(logGrid(5e-324, math.MaxFloat64, 4001), linGrid(0.5, 2, 2003)...)},
		{"Ln1p", Ln1p, refLn1p, ln1pGrid},
		{"Cosh", Cosh, refCosh, symmetric(append(linGrid(0, 710.47, 4001), logGrid(1e-9, 1, 1001)...))},
		{"Asinh", Asinh, refAsinh, symmetric(append(logGrid(1e-12, 1e300, 4001), linGrid(0, 4, 2003)...))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkTrueULP(t, tt.name, tt.f, tt.ref, tt.xs)
		})
	}
}

func TestBigReferences(t *testing.T) {
	tests := []struct {
		name string
		got  *big.Float
		want float64
	}{
		{"exp(1)", refExp(1), math.E},
		{"exp(-1)", refExp(-1), 1 / math.E},
		{"log(2)", refLog(2), math.Ln2},
		{"log(10)", refLog(10), math.Ln10},
		{"expm1(1e-300)", refExpm1(1e-300), 1e-300},
		{"ln1p(1e-40)", refLn1p(1e-40), 1e-40},
		{"cosh(0.5)", refCosh(0.5), 1.1276259652063807},
		{"asinh(1)", refAsinh(1), 0.881373587019543},
	}
	for _, tt := range tests {
		got, _ := tt.got.Float64()
		if d := ulp.Dist64(got, tt.want); d > 1 {
			t.Errorf("%s = %v, want %v (%d ulp)", tt.name, got, tt.want, d)
		}
	}
}
