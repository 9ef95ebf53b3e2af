package l2math

import (
	"math"
	"testing"

	"github.com/ajroetker/go-l2math/internal/ulp"
)

var (
	inf    = math.Inf(1)
	negInf = math.Inf(-1)
	negZ   = math.Copysign(0, -1)
	nan    = math.NaN()

	inf32  = float32(math.Inf(1))
	negZ32 = float32(math.Copysign(0, -1))
	nan32  = float32(math.NaN())
)

// linGrid returns n evenly spaced points in [lo, hi].
func linGrid(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}

// logGrid returns n points spread geometrically over [lo, hi], lo > 0.
func logGrid(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	llo, lhi := math.Log(lo), math.Log(hi)
	for i := range xs {
		xs[i] = math.Exp(llo + (lhi-llo)*float64(i)/float64(n-1))
	}
	return xs
}

// symmetric returns xs followed by their negations.
func symmetric(xs []float64) []float64 {
	out := make([]float64, 0, 2*len(xs))
	out = append(out, xs...)
	for _, x := range xs {
		out = append(out, -x)
	}
	return out
}

func checkULP(t *testing.T, name string, f, ref func(float64) float64, xs []float64, maxULP uint64) {
	t.Helper()
	var s ulp.Stats
	for _, x := range xs {
		got, want := f(x), ref(x)
		d := ulp.Dist64(got, want)
		s.Add(d, x)
		if d > maxULP {
			t.Errorf("%s(%v) = %v, want %v (%d ulp)", name, x, got, want, d)
			return
		}
	}
	t.Logf("%s: %d samples, max %d ulp, mean %.3f", name, s.Count, s.Max, s.Mean())
}

func sameBits64(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

func sameBits32(a, b float32) bool {
	return math.Float32bits(a) == math.Float32bits(b)
}

// sameValue64 is bitwise equality, with any NaN matching any NaN.
func sameValue64(a, b float64) bool {
	if a != a && b != b {
		return true
	}
	return sameBits64(a, b)
}

func sameValue32(a, b float32) bool {
	if a != a && b != b {
		return true
	}
	return sameBits32(a, b)
}

// forEachCeilPath runs fn against both rounding paths and the dispatcher.
func forEachCeilPath(t *testing.T, fn func(t *testing.T, ceil func(float64) float64)) {
	t.Run("toint", func(t *testing.T) { fn(t, ceilToInt) })
	t.Run("intcast", func(t *testing.T) { fn(t, ceilIntCast) })
	t.Run("dispatch", func(t *testing.T) { fn(t, Ceil) })
}
