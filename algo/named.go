package algo

import "github.com/ajroetker/go-l2math/l2math"

// CeilTransform rounds each element up to an integer.
func CeilTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Ceil)
}

// FloorTransform rounds each element down to an integer.
func FloorTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Floor)
}

// RoundTransform rounds each element to the nearest integer, halves away from zero.
func RoundTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Round)
}

// TruncTransform rounds each element toward zero.
func TruncTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Trunc)
}

// SqrtTransform applies sqrt(x).
func SqrtTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Sqrt)
}

// ExpTransform applies e^x.
func ExpTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Exp)
}

// Expm1Transform applies e^x - 1.
func Expm1Transform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Expm1)
}

// LogTransform applies ln(x).
func LogTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Log)
}

// Ln1pTransform applies ln(1 + x).
func Ln1pTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Ln1p)
}

// CoshTransform applies cosh(x).
func CoshTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Cosh)
}

// SinhTransform applies sinh(x).
func SinhTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Sinh)
}

// TanhTransform applies tanh(x).
func TanhTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Tanh)
}

// AsinhTransform applies asinh(x).
func AsinhTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Asinh)
}

// AcoshTransform applies acosh(x).
func AcoshTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Acosh)
}

// AtanhTransform applies atanh(x).
func AtanhTransform(pool *Pool, input, output []float64) {
	Transform(pool, input, output, l2math.Atanh)
}

// FloorfTransform is the float32 form of FloorTransform.
func FloorfTransform(pool *Pool, input, output []float32) {
	Transform(pool, input, output, l2math.Floorf)
}

// CeilfTransform is the float32 form of CeilTransform.
func CeilfTransform(pool *Pool, input, output []float32) {
	Transform(pool, input, output, l2math.Ceilf)
}

// RoundfTransform is the float32 form of RoundTransform.
func RoundfTransform(pool *Pool, input, output []float32) {
	Transform(pool, input, output, l2math.Roundf)
}

// TruncfTransform is the float32 form of TruncTransform.
func TruncfTransform(pool *Pool, input, output []float32) {
	Transform(pool, input, output, l2math.Truncf)
}

// FdimTransform sets output[i] = max(x[i]-y[i], 0), propagating NaN.
func FdimTransform(pool *Pool, x, y, output []float64) {
	Transform2(pool, x, y, output, l2math.Fdim)
}
