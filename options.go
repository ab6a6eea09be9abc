package segmap

import (
	"log/slog"
)

const (
	// DefaultInitialCapacity is the bucket count of the first segment.
	DefaultInitialCapacity = 16

	// DefaultLoadFactor is the fill ratio above which a segment stops
	// accepting new keys.
	DefaultLoadFactor = 0.75
)

// Option is a functional option for configuring a Map.
type Option func(*config)

type config struct {
	initialCapacity int
	loadFactor      float64
	hashAlgorithm   HashAlgorithm
	hasher          any // func(K) uint64, checked against K in New
	targetedRemove  bool
	logger          *slog.Logger
}

func defaultConfig() *config {
	return &config{
		initialCapacity: DefaultInitialCapacity,
		loadFactor:      DefaultLoadFactor,
		hashAlgorithm:   HashXXH3,
	}
}

// WithInitialCapacity sets the bucket count of the first segment.
// Every later segment gets twice the capacity of the one before it.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		c.initialCapacity = n
	}
}

// WithLoadFactor sets the fill threshold. A segment holding more than
// capacity*f entries is skipped when choosing where to insert a new key.
// f must be in (0, 1].
func WithLoadFactor(f float64) Option {
	return func(c *config) {
		c.loadFactor = f
	}
}

// WithHashAlgorithm selects the built-in key hash. Default is HashXXH3.
func WithHashAlgorithm(algo HashAlgorithm) Option {
	return func(c *config) {
		c.hashAlgorithm = algo
	}
}

// WithHasher replaces the built-in key hash with fn. K must match the key
// type of the map being constructed, otherwise New fails with
// ErrHasherKeyType. Keys that are equal must hash equally.
func WithHasher[K comparable](fn func(K) uint64) Option {
	return func(c *config) {
		c.hasher = fn
	}
}

// WithTargetedRemove makes Remove locate the owning segment first and delete
// from it alone, instead of broadcasting the delete to every segment.
// Observable behaviour is the same; only the amount of work differs.
func WithTargetedRemove() Option {
	return func(c *config) {
		c.targetedRemove = true
	}
}

// WithLogger sets the logger used for growth events. A nil logger, the
// default, discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
