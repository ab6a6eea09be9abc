// Package forkjoin provides a bounded worker pool with fork/join primitives
// for divide-and-conquer work.
//
// Fork never blocks waiting for a free worker: when the pool is saturated (or
// closed) the forked function runs inline on the caller before Fork returns.
// Nested fork/join therefore cannot deadlock regardless of pool size.
package forkjoin

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool runs forked tasks on at most Parallelism goroutines.
type Pool struct {
	group       errgroup.Group
	parallelism int

	mu     sync.RWMutex
	closed bool

	async  atomic.Uint64
	inline atomic.Uint64
}

// Stats counts how forked tasks were executed.
type Stats struct {
	Async  uint64 // ran on a pool goroutine
	Inline uint64 // ran on the forking goroutine
}

// New creates a pool. A non-positive parallelism selects DefaultParallelism.
func New(parallelism int) *Pool {
	if parallelism <= 0 {
		parallelism = DefaultParallelism()
	}
	p := &Pool{parallelism: parallelism}
	p.group.SetLimit(parallelism)
	return p
}

// Parallelism returns the maximum number of concurrently running tasks.
func (p *Pool) Parallelism() int { return p.parallelism }

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

// Stats returns a snapshot of the task counters.
func (p *Pool) Stats() Stats {
	return Stats{Async: p.async.Load(), Inline: p.inline.Load()}
}

// Close stops asynchronous execution and waits for running tasks to finish.
// Forks issued after Close run inline. Calling Close again is a no-op.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()
	return p.group.Wait()
}

// tryGo starts fn on a pool goroutine if one is free.
func (p *Pool) tryGo(fn func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	return p.group.TryGo(func() error {
		fn()
		return nil
	})
}

// Task is the pending result of a forked function.
type Task[T any] struct {
	done     chan struct{}
	result   T
	panicked bool
	panicVal any
}

func (t *Task[T]) run(fn func() T) {
	defer close(t.done)
	defer func() {
		if r := recover(); r != nil {
			t.panicked = true
			t.panicVal = r
		}
	}()
	t.result = fn()
}

// Fork schedules fn on the pool and returns immediately if a worker is free;
// otherwise it runs fn to completion on the calling goroutine first.
func Fork[T any](p *Pool, fn func() T) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	if p.tryGo(func() { t.run(fn) }) {
		p.async.Add(1)
		return t
	}
	p.inline.Add(1)
	t.run(fn)
	return t
}

// Join waits for the task and returns its result. A panic raised by the
// forked function is re-raised here.
func (t *Task[T]) Join() T {
	<-t.done
	if t.panicked {
		panic(t.panicVal)
	}
	return t.result
}

// InvokeAll runs a and b as two forked tasks and waits for both.
func InvokeAll(p *Pool, a, b func()) {
	ta := Fork(p, func() struct{} { a(); return struct{}{} })
	tb := Fork(p, func() struct{} { b(); return struct{}{} })
	// Join both before re-raising so neither task outlives the call.
	<-ta.done
	<-tb.done
	ta.Join()
	tb.Join()
}
