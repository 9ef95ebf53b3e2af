// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs bulk kernel evaluations on a fixed set of
// long-lived goroutines. A Pool is built once and shared by every bulk
// call, so a transform over a large slice costs a channel send per worker
// rather than a goroutine spawn.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	pool.ParallelForAtomicBatched(len(xs), 4096, func(start, end int) {
//	    for i := start; i < end; i++ {
//	        ys[i] = l2math.Cosh(xs[i])
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size set of persistent workers. It is safe for concurrent
// use; Close must not race with an in-flight ParallelFor call.
type Pool struct {
	size      int
	tasks     chan task
	closeOnce sync.Once
	closed    atomic.Bool
}

type task struct {
	body func()
	done *sync.WaitGroup
}

// New starts a pool with n workers. If n <= 0 the pool gets GOMAXPROCS
// workers.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		size:  n,
		tasks: make(chan task, 2*n),
	}
	for range n {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.body()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int {
	return p.size
}

// Close stops the workers once queued work has drained. It is idempotent.
// After Close, the ParallelFor methods run on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// fanOut hands body to k workers and waits for all of them to return.
func (p *Pool) fanOut(k int, body func()) {
	var wg sync.WaitGroup
	wg.Add(k)
	for range k {
		p.tasks <- task{body: body, done: &wg}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It returns when every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	k := min(p.size, n)
	if k == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + k - 1) / k
	var next atomic.Int64
	p.fanOut(k, func() {
		start := int(next.Add(1)-1) * chunk
		if start >= n {
			return
		}
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomicBatched lets workers claim [start, end) ranges of
// batch elements from a shared counter until [0, n) is exhausted. Uneven
// per-element cost, such as kernels with cheap and expensive regions,
// balances out across workers.
func (p *Pool) ParallelForAtomicBatched(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batch = max(batch, 1)
	k := min(p.size, (n+batch-1)/batch)
	if k == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	p.fanOut(k, func() {
		for {
			start := int(next.Add(int64(batch)) - int64(batch))
			if start >= n {
				return
			}
			fn(start, min(start+batch, n))
		}
	})
}
