// Package segmap implements a generic hash map that grows by adding segments
// instead of rehashing, and searches those segments in parallel.
//
// Each segment is a fixed-capacity separate-chaining hash table. When every
// segment has passed the load factor, a new segment with twice the capacity
// of the previous one is appended; existing segments are never resized or
// merged. A key lives in exactly one segment, so lookups fan out across all of
// them on a fork/join worker pool and combine the results.
//
// # Basic Usage
//
//	pool := segmap.NewPool(0) // one worker per usable CPU
//	defer pool.Close()
//
//	m, err := segmap.New[string, string](pool)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.Put("key1", "value1")
//	if v, ok := m.Get("key1"); ok {
//	    fmt.Println(v)
//	}
//	m.Remove("key1")
//
// # Concurrency
//
// A Map is not safe for concurrent mutation. Parallelism is internal to each
// operation: Get, Contains and Remove search every segment concurrently and
// Put does the same to find an existing copy of the key before inserting.
// A Pool may be shared by many maps and by many goroutines.
//
// # Package Structure
//
//   - Public API: segmap.go (New, Put, Get, Remove), pool.go (NewPool), stats.go
//   - Configuration: options.go (Option, With* functions)
//   - Key hashing: hash.go (HashAlgorithm, xxh3 / xxhash / murmur3)
//   - Errors: errors/ (sentinels shared by all packages)
//   - Storage: internal/bucket (chains), internal/segment, internal/directory (growth policy)
//   - Parallel search: internal/forkjoin (pool), internal/query (Locate, Get, Remove)
package segmap
