package directory

import (
	"testing"
)

func TestNewCreatesFirstSegment(t *testing.T) {
	d := New[int, int](16, 0.75)
	if d.Len() != 1 {
		t.Fatalf("Len = %d, want 1", d.Len())
	}
	if c := d.At(0).Capacity(); c != 16 {
		t.Errorf("first capacity = %d, want 16", c)
	}
	// The next target is precomputed when the first segment is created.
	if d.NextCapacity() != 32 {
		t.Errorf("NextCapacity = %d, want 32", d.NextCapacity())
	}
}

func TestSelectForInsertPrefersOldestNotFilled(t *testing.T) {
	d := New[int, int](4, 0.5)
	s, grew := d.SelectForInsert()
	if grew || s != d.At(0) {
		t.Fatal("empty first segment should be selected without growth")
	}

	// 3 > 4*0.5 fills segment 0.
	for i := range 3 {
		d.At(0).Put(uint64(i), i, i)
	}
	s, grew = d.SelectForInsert()
	if !grew || d.Len() != 2 || s != d.At(1) {
		t.Fatalf("expected growth to a second segment, got grew=%v len=%d", grew, d.Len())
	}
	if s.Capacity() != 8 {
		t.Errorf("second capacity = %d, want 8", s.Capacity())
	}

	// Freeing room in segment 0 routes inserts back to it.
	d.At(0).Remove(0, 0)
	s, grew = d.SelectForInsert()
	if grew || s != d.At(0) {
		t.Error("segment 0 should be selected again after a removal")
	}
}

func TestCapacitiesDouble(t *testing.T) {
	d := New[int, int](2, 0.75)
	key := 0
	for d.Len() < 6 {
		s, _ := d.SelectForInsert()
		s.Put(uint64(key), key, key)
		key++
	}
	want := 2
	for i := range d.Len() {
		if c := d.At(i).Capacity(); c != want {
			t.Errorf("segment %d capacity = %d, want %d", i, c, want)
		}
		want *= 2
	}
	if d.NextCapacity() != want {
		t.Errorf("NextCapacity = %d, want %d", d.NextCapacity(), want)
	}
	if d.Size() != key {
		t.Errorf("Size = %d, want %d", d.Size(), key)
	}
}

func TestNextCapacitySaturates(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 2},
		{3, 6},
		{MaxSegmentCapacity / 2, MaxSegmentCapacity},
		{MaxSegmentCapacity/2 + 1, MaxSegmentCapacity},
		{MaxSegmentCapacity, MaxSegmentCapacity},
	}
	for _, tt := range tests {
		if got := doubled(tt.in); got != tt.want {
			t.Errorf("doubled(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSnapshotIsStable(t *testing.T) {
	d := New[int, int](1, 1)
	snap := d.Snapshot()
	d.At(0).Put(0, 0, 0)
	d.At(0).Put(1, 1, 1)
	d.SelectForInsert()
	if len(snap) != 1 {
		t.Errorf("snapshot length changed to %d", len(snap))
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
}
