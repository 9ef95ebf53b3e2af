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

//go:build 386 || amd64

package fp

import "golang.org/x/sys/cpu"

func init() {
	detectX86()

	// Check if the integer-cast path is forced via environment variable
	if IntCastEnv() {
		currentPath = RoundingIntCast
	}
}

func detectX86() {
	// SSE2 rounds every double operation to binary64. Without it the FPU is
	// the x87 stack, whose 80-bit registers defeat the add-and-subtract
	// trick, so fall back to truncating through an integer.
	if !cpu.X86.HasSSE2 {
		currentPath = RoundingIntCast
		currentTarget = "x87"
		return
	}

	currentPath = RoundingToInt
	switch {
	case cpu.X86.HasAVX512F:
		currentTarget = "avx512"
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		currentTarget = "avx2"
	case cpu.X86.HasSSE41:
		currentTarget = "sse4.1"
	default:
		currentTarget = "sse2"
	}
}
