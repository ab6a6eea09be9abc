//go:build linux

package forkjoin

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// DefaultParallelism returns the number of CPUs this process may run on.
// It honours the scheduler affinity mask (taskset, cgroup cpusets) and falls
// back to runtime.NumCPU if the mask cannot be read.
func DefaultParallelism() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return runtime.NumCPU()
	}
	if n := set.Count(); n > 0 {
		return n
	}
	return runtime.NumCPU()
}
