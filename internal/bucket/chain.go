// Package bucket implements a fixed-capacity separate-chaining hash table.
//
// A Chain is an array of buckets addressed by hash mod capacity. Each bucket is
// an ordered slice of entries that share the slot; collisions are resolved by a
// linear scan. The bucket array is never resized.
package bucket

// entry is one stored key/value pair. The key's hash is kept next to it so a
// scan can reject most mismatches without comparing keys.
type entry[K comparable, V any] struct {
	hash  uint64
	key   K
	value V
}

// Chain is a fixed array of buckets. The zero value is not usable; use New.
type Chain[K comparable, V any] struct {
	buckets [][]entry[K, V]
}

// New creates a Chain with the given number of buckets.
// Panics if capacity is not positive.
func New[K comparable, V any](capacity int) *Chain[K, V] {
	if capacity <= 0 {
		panic("bucket: capacity must be positive")
	}
	return &Chain[K, V]{buckets: make([][]entry[K, V], capacity)}
}

// Capacity returns the number of buckets.
func (c *Chain[K, V]) Capacity() int {
	return len(c.buckets)
}

// index reduces a hash to a bucket index.
func (c *Chain[K, V]) index(hash uint64) int {
	return int(hash % uint64(len(c.buckets)))
}

// Put stores value under key. An existing entry is overwritten in place and
// Put returns false; otherwise a new entry is appended and Put returns true.
func (c *Chain[K, V]) Put(hash uint64, key K, value V) bool {
	i := c.index(hash)
	b := c.buckets[i]
	for j := range b {
		if b[j].hash == hash && b[j].key == key {
			b[j].value = value
			return false
		}
	}
	c.buckets[i] = append(b, entry[K, V]{hash: hash, key: key, value: value})
	return true
}

// Get returns the value of the first entry matching key.
func (c *Chain[K, V]) Get(hash uint64, key K) (V, bool) {
	b := c.buckets[c.index(hash)]
	for j := range b {
		if b[j].hash == hash && b[j].key == key {
			return b[j].value, true
		}
	}
	var zero V
	return zero, false
}

// Remove deletes every entry matching key and returns how many were removed.
// Relative order of the remaining entries is preserved.
func (c *Chain[K, V]) Remove(hash uint64, key K) int {
	i := c.index(hash)
	b := c.buckets[i]
	kept := b[:0]
	for _, e := range b {
		if e.hash == hash && e.key == key {
			continue
		}
		kept = append(kept, e)
	}
	removed := len(b) - len(kept)
	if removed == 0 {
		return 0
	}
	// Clear the vacated tail so removed keys and values can be collected.
	clear(b[len(kept):])
	if len(kept) == 0 {
		kept = nil
	}
	c.buckets[i] = kept
	return removed
}

// Len counts stored entries by walking every bucket. It is O(capacity) and is
// meant for invariant checks, not hot paths.
func (c *Chain[K, V]) Len() int {
	n := 0
	for _, b := range c.buckets {
		n += len(b)
	}
	return n
}

// BucketLen returns the number of entries in the bucket at index i.
func (c *Chain[K, V]) BucketLen(i int) int {
	return len(c.buckets[i])
}
