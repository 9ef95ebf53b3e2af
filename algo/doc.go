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

// Package algo applies l2math kernels to whole slices.
//
// # Transform API
//
// Generic transforms:
//   - Transform[T](pool, input, output, fn)
//   - Transform2[T](pool, x, y, output, fn)
//
// Both process min(len(inputs), len(output)) elements. With a nil pool,
// or fewer than MinParallelOps elements, they run on the calling
// goroutine; otherwise the slice is split into batches of ParallelBatch
// elements that the pool's workers claim one at a time.
//
// Named transforms for the kernels:
//   - CeilTransform, FloorTransform, RoundTransform, TruncTransform
//   - SqrtTransform, ExpTransform, Expm1Transform, LogTransform, Ln1pTransform
//   - CoshTransform, SinhTransform, TanhTransform
//   - AsinhTransform, AcoshTransform, AtanhTransform
//   - FloorfTransform, CeilfTransform, RoundfTransform, TruncfTransform
//   - FdimTransform
//
// # Example Usage
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	out := make([]float64, len(in))
//	algo.CoshTransform(pool, in, out)
//
//	// Custom element-wise operation
//	algo.Transform(pool, in, out, func(x float64) float64 {
//	    return l2math.Asinh(x) * 0.5
//	})
//
// Kernels are pure, so a transform gives the same output whether it runs
// sequentially or on the pool.
package algo
