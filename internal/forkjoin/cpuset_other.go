//go:build !linux

package forkjoin

import "runtime"

// DefaultParallelism returns runtime.NumCPU on non-Linux platforms.
// Affinity masks are read only on Linux.
func DefaultParallelism() int {
	return runtime.NumCPU()
}
