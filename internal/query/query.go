// Package query implements the divide-and-conquer searches that fan a single
// key lookup out across every segment of a directory snapshot.
//
// Each operation splits the index range [lo, hi) at its midpoint, forks the
// left half onto the pool, handles the right half on the calling goroutine and
// joins. When both halves report a hit the left one wins. The key's hash is
// computed once by the caller and shared by every leaf.
package query

import (
	"github.com/tamirms/segmap/internal/forkjoin"
	"github.com/tamirms/segmap/internal/segment"
)

// Engine runs queries against a fixed snapshot of segments.
type Engine[K comparable, V any] struct {
	pool     *forkjoin.Pool
	segments []*segment.Segment[K, V]
}

// New binds a pool to a segment snapshot. The snapshot must not be appended
// to while a query is running.
func New[K comparable, V any](pool *forkjoin.Pool, segments []*segment.Segment[K, V]) Engine[K, V] {
	return Engine[K, V]{pool: pool, segments: segments}
}

// Locate returns the segment holding key, or nil.
func (e Engine[K, V]) Locate(hash uint64, key K) *segment.Segment[K, V] {
	if len(e.segments) == 0 {
		return nil
	}
	return e.locate(hash, key, 0, len(e.segments))
}

func (e Engine[K, V]) locate(hash uint64, key K, lo, hi int) *segment.Segment[K, V] {
	if hi-lo <= 1 {
		s := e.segments[lo]
		if s.Contains(hash, key) {
			return s
		}
		return nil
	}
	mid := (lo + hi) / 2
	left := forkjoin.Fork(e.pool, func() *segment.Segment[K, V] {
		return e.locate(hash, key, lo, mid)
	})
	right := e.locate(hash, key, mid, hi)
	if l := left.Join(); l != nil {
		return l
	}
	return right
}

// result carries a lookup outcome across a join.
type result[V any] struct {
	value V
	ok    bool
}

// Get returns the value stored under key in any segment.
func (e Engine[K, V]) Get(hash uint64, key K) (V, bool) {
	if len(e.segments) == 0 {
		var zero V
		return zero, false
	}
	r := e.get(hash, key, 0, len(e.segments))
	return r.value, r.ok
}

func (e Engine[K, V]) get(hash uint64, key K, lo, hi int) result[V] {
	if hi-lo <= 1 {
		v, ok := e.segments[lo].Get(hash, key)
		return result[V]{value: v, ok: ok}
	}
	mid := (lo + hi) / 2
	left := forkjoin.Fork(e.pool, func() result[V] {
		return e.get(hash, key, lo, mid)
	})
	right := e.get(hash, key, mid, hi)
	if l := left.Join(); l.ok {
		return l
	}
	return right
}

// Remove deletes key from every segment. Both halves of each split run as
// concurrent tasks; distinct leaves touch distinct segments.
func (e Engine[K, V]) Remove(hash uint64, key K) {
	if len(e.segments) == 0 {
		return
	}
	e.remove(hash, key, 0, len(e.segments))
}

func (e Engine[K, V]) remove(hash uint64, key K, lo, hi int) {
	if hi-lo <= 1 {
		e.segments[lo].Remove(hash, key)
		return
	}
	mid := (lo + hi) / 2
	forkjoin.InvokeAll(e.pool,
		func() { e.remove(hash, key, lo, mid) },
		func() { e.remove(hash, key, mid, hi) },
	)
}

// LocateRemove finds the segment holding key and removes it from that
// segment only. It reports whether anything was removed.
func (e Engine[K, V]) LocateRemove(hash uint64, key K) bool {
	s := e.Locate(hash, key)
	if s == nil {
		return false
	}
	return s.Remove(hash, key) > 0
}
