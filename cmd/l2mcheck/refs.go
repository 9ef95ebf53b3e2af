package main

import "math"

// reference describes how to sweep one function: the standard library
// function to compare against and the input range to sample.
type reference struct {
	f64   func(float64) float64
	f64x2 func(float64, float64) float64
	// lo and hi bound the sampled inputs. With logScale the samples are
	// spread geometrically over [lo, hi] (lo > 0) and mirrored when
	// mirror is set.
	lo, hi   float64
	logScale bool
	mirror   bool
}

func f32(f func(float64) float64) func(float64) float64 {
	return func(x float64) float64 { return float64(float32(f(float64(float32(x))))) }
}

func f32x2(f func(float64, float64) float64) func(float64, float64) float64 {
	return func(x, y float64) float64 {
		return float64(float32(f(float64(float32(x)), float64(float32(y)))))
	}
}

var references = map[string]reference{
	"ceil":  {f64: math.Ceil, lo: -1e6, hi: 1e6},
	"floor": {f64: math.Floor, lo: -1e6, hi: 1e6},
	"round": {f64: math.Round, lo: -1e6, hi: 1e6},
	"trunc": {f64: math.Trunc, lo: -1e6, hi: 1e6},
	"fabs":  {f64: math.Abs, lo: -1e6, hi: 1e6},
	"sqrt":  {f64: math.Sqrt, lo: 1e-300, hi: 1e300, logScale: true},

	"exp":   {f64: math.Exp, lo: -745, hi: 709.7},
	"expm1": {f64: math.Expm1, lo: -40, hi: 709.7},
	"log":   {f64: math.Log, lo: 1e-300, hi: 1e300, logScale: true},
	"ln1p":  {f64: math.Log1p, lo: -0.999999, hi: 1e6},

	"cosh":  {f64: math.Cosh, lo: -709.7, hi: 709.7},
	"sinh":  {f64: math.Sinh, lo: -709.7, hi: 709.7},
	"tanh":  {f64: math.Tanh, lo: -25, hi: 25},
	"asinh": {f64: math.Asinh, lo: 1e-12, hi: 1e300, logScale: true, mirror: true},
	"acosh": {f64: math.Acosh, lo: 1, hi: 1e300, logScale: true},
	"atanh": {f64: math.Atanh, lo: -0.999999, hi: 0.999999},

	"floorf": {f64: f32(math.Floor), lo: -1e6, hi: 1e6},
	"ceilf":  {f64: f32(math.Ceil), lo: -1e6, hi: 1e6},
	"roundf": {f64: f32(math.Round), lo: -1e6, hi: 1e6},
	"truncf": {f64: f32(math.Trunc), lo: -1e6, hi: 1e6},
	"fabsf":  {f64: f32(math.Abs), lo: -1e6, hi: 1e6},
	"sqrtf":  {f64: f32(math.Sqrt), lo: 1e-30, hi: 1e30, logScale: true},

	"fdim":      {f64x2: math.Dim, lo: -1e3, hi: 1e3},
	"fdimf":     {f64x2: f32x2(math.Dim), lo: -1e3, hi: 1e3},
	"copysign":  {f64x2: math.Copysign, lo: -1e3, hi: 1e3},
	"copysignf": {f64x2: f32x2(math.Copysign), lo: -1e3, hi: 1e3},
}

func referenceFor(name string) (reference, bool) {
	r, ok := references[name]
	return r, ok
}

// samples returns n deterministic inputs covering the reference's range.
func (r reference) samples(n int) []float64 {
	if n < 2 {
		n = 2
	}
	xs := make([]float64, n)
	if !r.logScale {
		step := (r.hi - r.lo) / float64(n-1)
		for i := range xs {
			xs[i] = r.lo + float64(i)*step
		}
		xs[n-1] = r.hi
		return xs
	}

	half := n
	if r.mirror {
		half = n / 2
	}
	llo, lhi := math.Log(r.lo), math.Log(r.hi)
	for i := range half {
		xs[i] = math.Exp(llo + (lhi-llo)*float64(i)/float64(max(half-1, 1)))
	}
	for i := half; i < n; i++ {
		xs[i] = -xs[i-half]
	}
	return xs
}
