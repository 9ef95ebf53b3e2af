// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fp holds the bit-level primitives the l2math kernels are built on:
// reinterpretation between floats and their IEEE 754 encodings, field
// extraction, and a sink that forces a floating-point expression to be
// evaluated for its effect on the status flags.
//
// Format reminders:
//
//	binary64: S | EEEEEEEEEEE (11, bias 1023) | M (52)
//	binary32: S | EEEEEEEE    (8,  bias 127)  | M (23)
package fp

import "math"

// Binary64 layout.
const (
	F64SignMask     uint64 = 1 << 63
	F64ExpMask      uint64 = 0x7ff
	F64ExpShift            = 52
	F64MantMask     uint64 = 1<<52 - 1
	F64Bias                = 1023
	F64MantissaBits        = 52
)

// Binary32 layout.
const (
	F32SignMask     uint32 = 1 << 31
	F32ExpMask      uint32 = 0xff
	F32ExpShift            = 23
	F32MantMask     uint32 = 1<<23 - 1
	F32Bias                = 127
	F32MantissaBits        = 23
)

// Machine epsilons (distance from 1.0 to the next representable value).
const (
	Epsilon64 = 0x1p-52
	Epsilon32 = 0x1p-23
)

// ToBits64 returns the IEEE 754 encoding of x. NaN payloads are kept.
func ToBits64(x float64) uint64 { return math.Float64bits(x) }

// FromBits64 is the exact inverse of ToBits64.
func FromBits64(u uint64) float64 { return math.Float64frombits(u) }

// ToBits32 returns the IEEE 754 encoding of x. NaN payloads are kept.
func ToBits32(x float32) uint32 { return math.Float32bits(x) }

// FromBits32 is the exact inverse of ToBits32.
func FromBits32(u uint32) float32 { return math.Float32frombits(u) }

// Top32 returns the high word of the binary64 encoding of x (sign,
// exponent and the top 20 mantissa bits). It is extracted by shifting the
// integer encoding, so it does not depend on the host byte order.
func Top32(x float64) uint32 { return uint32(math.Float64bits(x) >> 32) }

// BiasedExp64 returns the raw 11-bit exponent field of x.
func BiasedExp64(x float64) int {
	return int(math.Float64bits(x)>>F64ExpShift) & int(F64ExpMask)
}

// BiasedExp32 returns the raw 8-bit exponent field of x.
func BiasedExp32(x float32) int {
	return int(math.Float32bits(x)>>F32ExpShift) & int(F32ExpMask)
}

// SignBit64 reports whether the sign bit of x is set (true for -0 and
// negative NaNs).
func SignBit64(x float64) bool { return math.Float64bits(x)&F64SignMask != 0 }

// SignBit32 is the binary32 form of SignBit64.
func SignBit32(x float32) bool { return math.Float32bits(x)&F32SignMask != 0 }

// NegZero64 returns -0.0. A Go constant expression such as -0.0 folds to
// +0, so negative zero has to be built from its encoding.
func NegZero64() float64 { return math.Float64frombits(F64SignMask) }

// NegZero32 returns -0.0 as a float32.
func NegZero32() float32 { return math.Float32frombits(F32SignMask) }

// ForceEval64 evaluates x and discards it. The call is never inlined, so
// the expression passed as the argument is always computed and any
// inexact, overflow or underflow exception it raises reaches the status
// flags.
//
//go:noinline
func ForceEval64(x float64) {}

// ForceEval32 is the binary32 form of ForceEval64.
//
//go:noinline
func ForceEval32(x float32) {}
