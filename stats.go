package segmap

// SegmentStats describes one segment.
type SegmentStats struct {
	Capacity int
	Size     int
}

// Stats is a point-in-time view of a map's layout.
type Stats struct {
	Segments     []SegmentStats // in creation order
	Len          int
	NextCapacity int // capacity the next allocated segment will get
	LoadFactor   float64
	Pool         PoolStats
}

// Stats returns the current segment layout and pool counters.
func (m *Map[K, V]) Stats() Stats {
	st := Stats{
		Segments:     make([]SegmentStats, m.dir.Len()),
		NextCapacity: m.dir.NextCapacity(),
		LoadFactor:   m.dir.LoadFactor(),
		Pool:         m.pool.Stats(),
	}
	for i := range st.Segments {
		s := m.dir.At(i)
		st.Segments[i] = SegmentStats{Capacity: s.Capacity(), Size: s.Size()}
		st.Len += s.Size()
	}
	return st
}
