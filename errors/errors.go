// Package errors defines all exported error sentinels for the segmap library.
//
// This is the single source of truth for error values. Both the top-level
// segmap package and the internal packages import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Construction errors
var (
	ErrInvalidCapacity   = errors.New("segmap: initial capacity must be in (0, 1<<30]")
	ErrInvalidLoadFactor = errors.New("segmap: load factor must be in (0, 1]")
	ErrNilPool           = errors.New("segmap: worker pool is nil")
)

// Pool errors
var (
	ErrPoolClosed = errors.New("segmap: worker pool is closed")
)

// Option errors
var (
	ErrHasherKeyType        = errors.New("segmap: custom hasher does not match the map's key type")
	ErrUnknownHashAlgorithm = errors.New("segmap: unknown hash algorithm")
)
