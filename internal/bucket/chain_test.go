package bucket

import (
	"fmt"
	"testing"
)

func TestNewPanicsOnNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		t.Run(fmt.Sprint(capacity), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) did not panic", capacity)
				}
			}()
			New[string, int](capacity)
		})
	}
}

func TestPutGet(t *testing.T) {
	c := New[string, string](16)
	if !c.Put(7, "a", "1") {
		t.Fatal("first Put should insert")
	}
	if c.Put(7, "a", "2") {
		t.Fatal("second Put should overwrite")
	}
	got, ok := c.Get(7, "a")
	if !ok || got != "2" {
		t.Errorf("Get = (%q, %v), want (\"2\", true)", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestGetMissing(t *testing.T) {
	c := New[string, int](4)
	c.Put(1, "a", 1)

	if _, ok := c.Get(1, "b"); ok {
		t.Error("Get returned a value for a key with the same hash but different identity")
	}
	if _, ok := c.Get(2, "a"); ok {
		t.Error("Get returned a value for a mismatched hash")
	}
}

// TestCollisions forces every key into one bucket.
func TestCollisions(t *testing.T) {
	c := New[int, int](1)
	for i := range 50 {
		c.Put(uint64(i), i, i*10)
	}
	if c.BucketLen(0) != 50 {
		t.Fatalf("BucketLen = %d, want 50", c.BucketLen(0))
	}
	for i := range 50 {
		v, ok := c.Get(uint64(i), i)
		if !ok || v != i*10 {
			t.Errorf("Get(%d) = (%d, %v), want (%d, true)", i, v, ok, i*10)
		}
	}

	if n := c.Remove(25, 25); n != 1 {
		t.Fatalf("Remove = %d, want 1", n)
	}
	if _, ok := c.Get(25, 25); ok {
		t.Error("removed key still present")
	}
	if v, ok := c.Get(26, 26); !ok || v != 260 {
		t.Errorf("neighbour lost after remove: (%d, %v)", v, ok)
	}
	if c.Len() != 49 {
		t.Errorf("Len = %d, want 49", c.Len())
	}
}

func TestIndexIsHashModCapacity(t *testing.T) {
	c := New[string, int](10)
	c.Put(23, "x", 1)
	if c.BucketLen(3) != 1 {
		t.Errorf("entry with hash 23 not in bucket 3 of 10")
	}
	c.Put(1<<63+5, "y", 2)
	want := int((uint64(1<<63) + 5) % 10)
	if c.BucketLen(want) == 0 {
		t.Errorf("high-bit hash not reduced to bucket %d", want)
	}
}

func TestRemoveAllMatches(t *testing.T) {
	c := New[string, int](2)
	// Bypass Put to plant duplicates the way a broken caller could.
	c.buckets[0] = append(c.buckets[0],
		entry[string, int]{hash: 4, key: "k", value: 1},
		entry[string, int]{hash: 4, key: "other", value: 2},
		entry[string, int]{hash: 4, key: "k", value: 3},
	)
	if n := c.Remove(4, "k"); n != 2 {
		t.Fatalf("Remove = %d, want 2", n)
	}
	if v, ok := c.Get(4, "other"); !ok || v != 2 {
		t.Errorf("Get(other) = (%d, %v)", v, ok)
	}
	if n := c.Remove(4, "k"); n != 0 {
		t.Errorf("second Remove = %d, want 0", n)
	}
}

func TestRemoveLastEntryReleasesBucket(t *testing.T) {
	c := New[string, int](1)
	c.Put(0, "a", 1)
	c.Remove(0, "a")
	if c.buckets[0] != nil {
		t.Error("empty bucket should be released")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}
