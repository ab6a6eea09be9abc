// Package segment wraps a fixed-capacity bucket chain with a live-entry
// counter and the fill test used to decide where new keys go.
package segment

import "github.com/tamirms/segmap/internal/bucket"

// Segment is one fixed-capacity hash table. Its capacity never changes after
// New; size always equals the number of entries stored in the chain.
type Segment[K comparable, V any] struct {
	chain *bucket.Chain[K, V]
	size  int
}

// New creates an empty segment with capacity buckets.
func New[K comparable, V any](capacity int) *Segment[K, V] {
	return &Segment[K, V]{chain: bucket.New[K, V](capacity)}
}

// Capacity returns the bucket count fixed at creation.
func (s *Segment[K, V]) Capacity() int { return s.chain.Capacity() }

// Size returns the number of live entries.
func (s *Segment[K, V]) Size() int { return s.size }

// IsFilled reports whether the segment has passed its load threshold:
// size > capacity * loadFactor.
func (s *Segment[K, V]) IsFilled(loadFactor float64) bool {
	return float64(s.size) > float64(s.Capacity())*loadFactor
}

// Put inserts or overwrites key. Overwrites leave size unchanged.
func (s *Segment[K, V]) Put(hash uint64, key K, value V) {
	if s.chain.Put(hash, key, value) {
		s.size++
	}
}

// Get returns the value stored under key.
func (s *Segment[K, V]) Get(hash uint64, key K) (V, bool) {
	return s.chain.Get(hash, key)
}

// Contains reports whether key is stored in this segment.
func (s *Segment[K, V]) Contains(hash uint64, key K) bool {
	_, ok := s.chain.Get(hash, key)
	return ok
}

// Remove deletes key and decrements size once per entry actually removed.
func (s *Segment[K, V]) Remove(hash uint64, key K) int {
	n := s.chain.Remove(hash, key)
	s.size -= n
	return n
}
