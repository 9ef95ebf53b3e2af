// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	if pool.NumWorkers() != 3 {
		t.Errorf("NumWorkers() = %d, want 3", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(-1)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func checkCovered(t *testing.T, name string, hits []int32) {
	t.Helper()
	for i, h := range hits {
		if h != 1 {
			t.Errorf("%s: index %d visited %d times, want 1", name, i, h)
			return
		}
	}
}

func TestParallelForCoversEachIndexOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 5, 100, 1001} {
		hits := make([]int32, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		checkCovered(t, "ParallelFor", hits)
	}
}

func TestParallelForAtomicBatchedCoversEachIndexOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, tc := range []struct{ n, batch int }{
		{1, 1}, {10, 3}, {100, 10}, {1000, 7}, {1000, 0}, {5, 100},
	} {
		hits := make([]int32, tc.n)
		pool.ParallelForAtomicBatched(tc.n, tc.batch, func(start, end int) {
			if tc.batch > 0 && end-start > tc.batch {
				t.Errorf("batch [%d, %d) larger than %d", start, end, tc.batch)
			}
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		checkCovered(t, "ParallelForAtomicBatched", hits)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called atomic.Bool
	pool.ParallelFor(0, func(start, end int) { called.Store(true) })
	pool.ParallelForAtomicBatched(-1, 4, func(start, end int) { called.Store(true) })

	if called.Load() {
		t.Error("fn called for an empty range")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close()
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()

	var calls int
	pool.ParallelFor(100, func(start, end int) {
		calls++
		if start != 0 || end != 100 {
			t.Errorf("ParallelFor on closed pool got [%d, %d), want [0, 100)", start, end)
		}
	})
	pool.ParallelForAtomicBatched(100, 10, func(start, end int) { calls++ })
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func BenchmarkParallelForAtomicBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	out := make([]float64, 1<<16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelForAtomicBatched(len(out), 4096, func(start, end int) {
			for j := start; j < end; j++ {
				out[j] = float64(j) * 0.5
			}
		})
	}
}
