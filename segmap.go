package segmap

import (
	"fmt"
	"log/slog"
	"math"

	segerrors "github.com/tamirms/segmap/errors"
	"github.com/tamirms/segmap/internal/directory"
	"github.com/tamirms/segmap/internal/query"
)

// Map is a hash map split over segments of doubling capacity.
//
// A Map is not safe for concurrent use: callers that share one across
// goroutines must serialize Put, Get and Remove themselves. Parallelism is
// used only inside a single operation, to search the segments.
type Map[K comparable, V any] struct {
	pool           *Pool
	dir            *directory.Directory[K, V]
	hash           func(K) uint64
	targetedRemove bool
	logger         *slog.Logger
}

// New creates an empty map that searches its segments on pool.
//
// Usage:
//
//	pool := segmap.NewPool(0)
//	defer pool.Close()
//
//	m, err := segmap.New[string, int](pool, segmap.WithInitialCapacity(64))
//	if err != nil { return err }
//	m.Put("a", 1)
//	v, ok := m.Get("a")
func New[K comparable, V any](pool *Pool, opts ...Option) (*Map[K, V], error) {
	if pool == nil {
		return nil, segerrors.ErrNilPool
	}
	if pool.Closed() {
		return nil, segerrors.ErrPoolClosed
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.initialCapacity <= 0 || cfg.initialCapacity > directory.MaxSegmentCapacity {
		return nil, fmt.Errorf("%w: got %d", segerrors.ErrInvalidCapacity, cfg.initialCapacity)
	}
	if math.IsNaN(cfg.loadFactor) || cfg.loadFactor <= 0 || cfg.loadFactor > 1 {
		return nil, fmt.Errorf("%w: got %v", segerrors.ErrInvalidLoadFactor, cfg.loadFactor)
	}

	var hash func(K) uint64
	if cfg.hasher != nil {
		fn, ok := cfg.hasher.(func(K) uint64)
		if !ok || fn == nil {
			var zero K
			return nil, fmt.Errorf("%w: %T for key type %T", segerrors.ErrHasherKeyType, cfg.hasher, zero)
		}
		hash = fn
	} else {
		if !cfg.hashAlgorithm.valid() {
			return nil, fmt.Errorf("%w: %v", segerrors.ErrUnknownHashAlgorithm, cfg.hashAlgorithm)
		}
		hash = newHasher[K](cfg.hashAlgorithm)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Map[K, V]{
		pool:           pool,
		dir:            directory.New[K, V](cfg.initialCapacity, cfg.loadFactor),
		hash:           hash,
		targetedRemove: cfg.targetedRemove,
		logger:         logger,
	}, nil
}

func (m *Map[K, V]) engine() query.Engine[K, V] {
	return query.New(m.pool, m.dir.Snapshot())
}

// Put stores value under key, overwriting any previous value.
//
// If some segment already holds key the update goes there. Otherwise the key
// is inserted into the oldest segment that is not filled, and a new segment
// of double the previous capacity is allocated when all of them are.
func (m *Map[K, V]) Put(key K, value V) {
	h := m.hash(key)
	s := m.engine().Locate(h, key)
	if s == nil {
		var grew bool
		s, grew = m.dir.SelectForInsert()
		if grew {
			m.logger.Debug("segment allocated",
				"segment", m.dir.Len()-1,
				"capacity", s.Capacity(),
				"next_capacity", m.dir.NextCapacity(),
				"entries", m.dir.Size(),
			)
		}
	}
	s.Put(h, key, value)
}

// Get returns the value stored under key. ok is false if key is absent.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	return m.engine().Get(m.hash(key), key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.engine().Locate(m.hash(key), key) != nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (m *Map[K, V]) Remove(key K) {
	h := m.hash(key)
	if m.targetedRemove {
		m.engine().LocateRemove(h, key)
		return
	}
	m.engine().Remove(h, key)
}

// Len returns the number of stored keys.
func (m *Map[K, V]) Len() int {
	return m.dir.Size()
}
