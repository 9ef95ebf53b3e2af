package algo

import (
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-l2math/internal/workerpool"
)

// Parallel tuning parameters.
const (
	// MinParallelOps is the element count below which transforms stay on
	// the calling goroutine. Handing work to the pool costs a few
	// microseconds, which the cheapest kernels (rounding, fdim) only
	// recover above roughly this size.
	MinParallelOps = 16384

	// ParallelBatch is the number of elements a worker claims at a time.
	ParallelBatch = 4096
)

// Pool is the worker pool type accepted by the transforms.
type Pool = workerpool.Pool

// NewPool starts a worker pool for use with the transforms. n <= 0 means
// GOMAXPROCS workers. Close it when done.
func NewPool(n int) *Pool {
	return workerpool.New(n)
}

// UnaryFunc is an element-wise kernel such as l2math.Ceil.
type UnaryFunc[T constraints.Float] func(T) T

// BinaryFunc is an element-wise kernel of two arguments such as l2math.Fdim.
type BinaryFunc[T constraints.Float] func(T, T) T

// Transform sets output[i] = fn(input[i]) for every index present in both
// slices.
func Transform[T constraints.Float](pool *Pool, input, output []T, fn UnaryFunc[T]) {
	n := min(len(input), len(output))
	if n == 0 {
		return
	}
	run(pool, n, func(start, end int) {
		in, out := input[start:end], output[start:end]
		for i := range in {
			out[i] = fn(in[i])
		}
	})
}

// Transform2 sets output[i] = fn(x[i], y[i]) for every index present in
// all three slices.
func Transform2[T constraints.Float](pool *Pool, x, y, output []T, fn BinaryFunc[T]) {
	n := min(len(x), len(y), len(output))
	if n == 0 {
		return
	}
	run(pool, n, func(start, end int) {
		a, b, out := x[start:end], y[start:end], output[start:end]
		for i := range out {
			out[i] = fn(a[i], b[i])
		}
	})
}

func run(pool *Pool, n int, body func(start, end int)) {
	if pool == nil || n < MinParallelOps {
		body(0, n)
		return
	}
	pool.ParallelForAtomicBatched(n, ParallelBatch, body)
}
