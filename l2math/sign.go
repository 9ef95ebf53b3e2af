package l2math

import "github.com/ajroetker/go-l2math/fp"

// Fabs returns |x| by clearing the sign bit. NaN payloads are kept.
func Fabs(x float64) float64 {
	return fp.FromBits64(fp.ToBits64(x) &^ fp.F64SignMask)
}

// Fabsf is the float32 form of Fabs.
func Fabsf(x float32) float32 {
	return fp.FromBits32(fp.ToBits32(x) &^ fp.F32SignMask)
}

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign(x, y float64) float64 {
	return fp.FromBits64(fp.ToBits64(x)&^fp.F64SignMask | fp.ToBits64(y)&fp.F64SignMask)
}

// Copysignf is the float32 form of Copysign.
func Copysignf(x, y float32) float32 {
	return fp.FromBits32(fp.ToBits32(x)&^fp.F32SignMask | fp.ToBits32(y)&fp.F32SignMask)
}
