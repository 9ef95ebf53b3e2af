package l2math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compositionULP bounds the distance from the standard library for the
// hyperbolic functions. The standard library builds several of them from
// Exp with its own rounding at each step.
const compositionULP = 4

func TestCosh(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 1},
		{negZ, 1},
		{1e-10, 1},
		{inf, inf},
		{negInf, inf},
		{710.48, inf},
		{-710.48, inf},
	}
	for _, tt := range tests {
		if got := Cosh(tt.x); !sameBits64(got, tt.want) {
			t.Errorf("Cosh(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if got := Cosh(nan); got == got {
		t.Errorf("Cosh(NaN) = %v, want NaN", got)
	}
	if got := Cosh(710.47); math.IsInf(got, 0) {
		t.Errorf("Cosh(710.47) = %v, want finite", got)
	}
}

func TestCoshAccuracy(t *testing.T) {
	xs := symmetric(append(linGrid(0, 709.7, 20011), logGrid(1e-9, 1, 4001)...))
	checkULP(t, "Cosh", Cosh, math.Cosh, xs, compositionULP)

	// Past ln(DBL_MAX) the standard library overflows, so use
	// e^x/2 = (e^(x-700)/2) * e^700.
	ref := func(x float64) float64 {
		a := math.Abs(x)
		return (math.Exp(a-700) / 2) * math.Exp(700)
	}
	checkULP(t, "Cosh", Cosh, ref, symmetric(linGrid(709.8, 710.47, 2001)), compositionULP)
}

func TestCoshEvenAndMonotonic(t *testing.T) {
	prev := 1.0
	for _, x := range append(logGrid(1e-9, 1, 2001), linGrid(1, 710.4, 20011)...) {
		c := Cosh(x)
		require.True(t, sameBits64(c, Cosh(-x)), "Cosh(%v) != Cosh(-%v)", x, x)
		require.GreaterOrEqual(t, c, prev, "Cosh not monotonic at %v", x)
		prev = c
	}
}

func TestAsinh(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{negZ, negZ},
		{inf, inf},
		{negInf, negInf},
		{1e-300, 1e-300},
		{-1e-300, -1e-300},
		{5e-324, 5e-324},
	}
	for _, tt := range tests {
		if got := Asinh(tt.x); !sameBits64(got, tt.want) {
			t.Errorf("Asinh(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if got := Asinh(nan); got == got {
		t.Errorf("Asinh(NaN) = %v, want NaN", got)
	}
}

func TestAsinhAccuracy(t *testing.T) {
	xs := symmetric(append(logGrid(1e-12, 1e300, 20011), linGrid(0, 4, 8009)...))
	checkULP(t, "Asinh", Asinh, math.Asinh, xs, compositionULP)
}

func TestAsinhOddAndMonotonic(t *testing.T) {
	xs := linGrid(-1e3, 1e3, 20011)
	prev := math.Inf(-1)
	for _, x := range xs {
		a := Asinh(x)
		require.True(t, sameBits64(Asinh(-x), -a), "Asinh(-%v) != -Asinh(%v)", x, x)
		require.GreaterOrEqual(t, a, prev, "Asinh not monotonic at %v", x)
		prev = a
	}
}

func TestSinh(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{negZ, negZ},
		{inf, inf},
		{negInf, negInf},
		{1e-300, 1e-300},
		{711, inf},
		{-711, negInf},
	}
	for _, tt := range tests {
		if got := Sinh(tt.x); !sameBits64(got, tt.want) {
			t.Errorf("Sinh(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if got := Sinh(nan); got == got {
		t.Errorf("Sinh(NaN) = %v, want NaN", got)
	}

	xs := symmetric(append(linGrid(0, 709.7, 20011), logGrid(1e-9, 1, 4001)...))
	checkULP(t, "Sinh", Sinh, math.Sinh, xs, compositionULP)

	ref := func(x float64) float64 {
		return math.Copysign((math.Exp(math.Abs(x)-700)/2)*math.Exp(700), x)
	}
	checkULP(t, "Sinh", Sinh, ref, symmetric(linGrid(709.8, 710.47, 2001)), compositionULP)
}

func TestTanh(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{negZ, negZ},
		{inf, 1},
		{negInf, -1},
		{30, 1},
		{-30, -1},
		{5e-324, 5e-324},
	}
	for _, tt := range tests {
		if got := Tanh(tt.x); !sameBits64(got, tt.want) {
			t.Errorf("Tanh(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if got := Tanh(nan); got == got {
		t.Errorf("Tanh(NaN) = %v, want NaN", got)
	}

	xs := symmetric(append(linGrid(0, 25, 20011), logGrid(1e-300, 1, 4001)...))
	checkULP(t, "Tanh", Tanh, math.Tanh, xs, compositionULP)
}

func TestAcosh(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{1, 0},
		{inf, inf},
	}
	for _, tt := range tests {
		if got := Acosh(tt.x); !sameBits64(got, tt.want) {
			t.Errorf("Acosh(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	for _, x := range []float64{0.5, 0, -1, -1.5, -3, -1e30, negInf, nan} {
		if got := Acosh(x); got == got {
			t.Errorf("Acosh(%v) = %v, want NaN", x, got)
		}
	}

	xs := append(linGrid(1, 3, 10007), logGrid(1, 1e300, 10007)...)
	checkULP(t, "Acosh", Acosh, math.Acosh, xs, compositionULP)
}

func TestAtanh(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{negZ, negZ},
		{1, inf},
		{-1, negInf},
		{5e-324, 5e-324},
		{-1e-12, -1e-12},
	}
	for _, tt := range tests {
		if got := Atanh(tt.x); !sameBits64(got, tt.want) {
			t.Errorf("Atanh(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	for _, x := range []float64{1.5, -2, inf, negInf, nan} {
		if got := Atanh(x); got == got {
			t.Errorf("Atanh(%v) = %v, want NaN", x, got)
		}
	}

	xs := symmetric(append(linGrid(0, 0.999999, 10007), logGrid(1e-12, 0.5, 4001)...))
	checkULP(t, "Atanh", Atanh, math.Atanh, xs, compositionULP)
}

func TestInverseRoundTrips(t *testing.T) {
	for _, x := range linGrid(-20, 20, 4001) {
		assert.InDelta(t, x, Asinh(Sinh(x)), 1e-14*math.Max(1, math.Abs(x)), "Asinh(Sinh(%v))", x)
	}
	for _, x := range linGrid(0.5, 20, 2001) {
		assert.InDelta(t, x, Acosh(Cosh(x)), 1e-12*x, "Acosh(Cosh(%v))", x)
	}
	for _, x := range linGrid(-5, 5, 2001) {
		assert.InDelta(t, x, Atanh(Tanh(x)), 1e-10, "Atanh(Tanh(%v))", x)
	}
}
