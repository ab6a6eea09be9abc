// Package directory holds the ordered, append-only list of segments and the
// growth policy that decides when a new, larger segment is allocated.
package directory

import "github.com/tamirms/segmap/internal/segment"

// MaxSegmentCapacity caps the bucket count of any single segment. Doubling
// saturates here so the next-capacity counter cannot overflow.
const MaxSegmentCapacity = 1 << 30

// Directory owns the segments of one map. Capacities strictly increase in
// creation order (until MaxSegmentCapacity) and segments are never removed.
type Directory[K comparable, V any] struct {
	segments     []*segment.Segment[K, V]
	loadFactor   float64
	nextCapacity int
}

// New creates a directory whose first segment has initialCapacity buckets.
// The caller validates initialCapacity and loadFactor.
func New[K comparable, V any](initialCapacity int, loadFactor float64) *Directory[K, V] {
	d := &Directory[K, V]{
		loadFactor:   loadFactor,
		nextCapacity: initialCapacity,
	}
	d.grow()
	return d
}

// grow appends a segment with the precomputed capacity and doubles the
// target for the one after it.
func (d *Directory[K, V]) grow() *segment.Segment[K, V] {
	s := segment.New[K, V](d.nextCapacity)
	d.segments = append(d.segments, s)
	d.nextCapacity = doubled(d.nextCapacity)
	return s
}

func doubled(capacity int) int {
	if capacity > MaxSegmentCapacity/2 {
		return MaxSegmentCapacity
	}
	return capacity * 2
}

// SelectForInsert returns the first segment, in creation order, that is not
// filled. If every segment is filled a new one is appended and returned;
// grew reports whether that happened.
func (d *Directory[K, V]) SelectForInsert() (s *segment.Segment[K, V], grew bool) {
	for _, s := range d.segments {
		if !s.IsFilled(d.loadFactor) {
			return s, false
		}
	}
	return d.grow(), true
}

// Len returns the number of segments.
func (d *Directory[K, V]) Len() int { return len(d.segments) }

// At returns the i-th segment in creation order.
func (d *Directory[K, V]) At(i int) *segment.Segment[K, V] { return d.segments[i] }

// Snapshot returns the current segment list. The slice must be treated as
// read-only; later growth does not affect it.
func (d *Directory[K, V]) Snapshot() []*segment.Segment[K, V] {
	return d.segments[:len(d.segments):len(d.segments)]
}

// NextCapacity returns the capacity the next allocated segment will get.
func (d *Directory[K, V]) NextCapacity() int { return d.nextCapacity }

// LoadFactor returns the fill threshold used by SelectForInsert.
func (d *Directory[K, V]) LoadFactor() float64 { return d.loadFactor }

// Size returns the total number of live entries across all segments.
func (d *Directory[K, V]) Size() int {
	n := 0
	for _, s := range d.segments {
		n += s.Size()
	}
	return n
}
