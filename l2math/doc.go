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

// Package l2math provides freestanding double- and single-precision
// elementary functions built only from IEEE 754 arithmetic and bit
// manipulation. Nothing here calls into the standard math package's
// transcendental routines; the only host services used are the exact
// float/bits conversions in package fp.
//
// # Layers
//
// Rounding and selection (exponent and mantissa surgery):
//   - Fabs, Fabsf, Copysign, Copysignf
//   - Trunc, Truncf, Floor, Floorf, Ceil, Ceilf, Round, Roundf
//   - Sqrt, Sqrtf, Scalbn
//
// Exponential and logarithmic cores:
//   - Exp(x) - e^x
//   - Expm1(x) - e^x - 1, accurate near 0
//   - Log(x) - ln(x)
//   - Ln1p(x) - ln(1 + x), accurate near 0
//
// Compositions:
//   - Cosh, Sinh, Tanh, Asinh, Acosh, Atanh
//   - Fdim, Fdimf
//
// # Special values
//
// Every function is total. Errors are reported in-band: NaN inputs
// propagate (the payload survives on paths that return the argument),
// out-of-range results become ±Inf, and domain errors such as Log(-1)
// produce NaN through an invalid operation. Signed zeros are preserved
// wherever the mathematical result is zero.
//
// # Accuracy
//
// The transcendental functions are within 2 ULP of the true result on
// dense sample grids. Rounding functions are exact.
//
// # Link names
//
// Every entry point has a stable C-ABI link name of the form
// __l2math_<name>; see Symbols and Lookup.
package l2math
