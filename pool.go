package segmap

import "github.com/tamirms/segmap/internal/forkjoin"

// Pool is the worker pool that runs the parallel segment searches. One pool
// may be shared by any number of maps. The caller owns it and must Close it
// once no map uses it any more; a Map never closes its pool.
type Pool = forkjoin.Pool

// PoolStats counts forked tasks by where they ran.
type PoolStats = forkjoin.Stats

// NewPool creates a pool running at most parallelism tasks at once.
// A non-positive parallelism uses every CPU available to the process.
func NewPool(parallelism int) *Pool {
	return forkjoin.New(parallelism)
}
