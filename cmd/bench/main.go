// Bench compares segmap put/get/remove throughput against Go's built-in map.
//
// Usage:
//
//	go run ./cmd/bench -keys 10000 -workers 0 -hash xxh3
//
// Flags:
//
//	-keys       Number of distinct keys (default: 10,000)
//	-queries    Number of Get calls to time (default: 100,000)
//	-workers    Pool parallelism, 0 for every usable CPU (default: 0)
//	-capacity   Initial segment capacity (default: 16)
//	-load       Load factor (default: 0.75)
//	-hash       Key hash: xxh3, xxhash64 or murmur3 (default: xxh3)
//	-targeted   Locate before removing instead of broadcasting (default: false)
//	-v          Log segment allocations
package main

import (
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	mrand "math/rand/v2"
	"os"
	"runtime/pprof"
	"time"

	"github.com/spaolacci/murmur3"

	"github.com/tamirms/segmap"
)

// generateKeys derives n distinct 32-character hex keys by hashing a counter
// with MurmurHash3-128. Duplicates are skipped.
func generateKeys(n int, seed uint32) []string {
	keys := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	var buf [8]byte
	for i := uint64(0); len(keys) < n; i++ {
		binary.LittleEndian.PutUint64(buf[:], i)
		h1, h2 := murmur3.Sum128WithSeed(buf[:], seed)
		var raw [16]byte
		binary.LittleEndian.PutUint64(raw[0:8], h1)
		binary.LittleEndian.PutUint64(raw[8:16], h2)
		k := hex.EncodeToString(raw[:])
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

func parseHash(name string) (segmap.HashAlgorithm, error) {
	for _, algo := range []segmap.HashAlgorithm{segmap.HashXXH3, segmap.HashXXHash64, segmap.HashMurmur3} {
		if algo.String() == name {
			return algo, nil
		}
	}
	return 0, fmt.Errorf("unknown hash %q (use xxh3, xxhash64 or murmur3)", name)
}

func perOp(d time.Duration, n int) float64 {
	return float64(d.Nanoseconds()) / float64(n)
}

func main() {
	keysFlag := flag.Int("keys", 10_000, "number of distinct keys")
	queriesFlag := flag.Int("queries", 100_000, "number of Get calls to time")
	workersFlag := flag.Int("workers", 0, "pool parallelism (0 = usable CPUs)")
	capacityFlag := flag.Int("capacity", segmap.DefaultInitialCapacity, "initial segment capacity")
	loadFlag := flag.Float64("load", segmap.DefaultLoadFactor, "load factor")
	hashFlag := flag.String("hash", "xxh3", "key hash: xxh3, xxhash64 or murmur3")
	targetedFlag := flag.Bool("targeted", false, "locate before removing")
	verboseFlag := flag.Bool("v", false, "log segment allocations")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	flag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	algo, err := parseHash(*hashFlag)
	if err != nil {
		logger.Error("invalid flag", "error", err)
		os.Exit(2)
	}

	numKeys := *keysFlag
	numQueries := *queriesFlag
	if numKeys <= 0 || numQueries <= 0 {
		logger.Error("invalid flag", "keys", numKeys, "queries", numQueries)
		os.Exit(2)
	}

	logger.Info("generating keys", "keys", numKeys)
	keys := generateKeys(numKeys, 0x1234)
	queryOrder := mrand.Perm(numKeys)

	pool := segmap.NewPool(*workersFlag)
	defer func() { _ = pool.Close() }()

	opts := []segmap.Option{
		segmap.WithInitialCapacity(*capacityFlag),
		segmap.WithLoadFactor(*loadFlag),
		segmap.WithHashAlgorithm(algo),
		segmap.WithLogger(logger),
	}
	if *targetedFlag {
		opts = append(opts, segmap.WithTargetedRemove())
	}
	m, err := segmap.New[string, string](pool, opts...)
	if err != nil {
		logger.Error("construct map", "error", err)
		return
	}
	builtin := make(map[string]string)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			logger.Error("create CPU profile", "error", err)
			return
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Error("start CPU profile", "error", err)
			return
		}
		defer pprof.StopCPUProfile()
	}

	logger.Info("benchmarking put")
	start := time.Now()
	for _, k := range keys {
		builtin[k] = k
	}
	builtinPut := time.Since(start)

	start = time.Now()
	for _, k := range keys {
		m.Put(k, k)
	}
	segmapPut := time.Since(start)

	logger.Info("benchmarking get", "queries", numQueries)
	start = time.Now()
	for i := range numQueries {
		_ = builtin[keys[queryOrder[i%numKeys]]]
	}
	builtinGet := time.Since(start)

	start = time.Now()
	misses := 0
	for i := range numQueries {
		if _, ok := m.Get(keys[queryOrder[i%numKeys]]); !ok {
			misses++
		}
	}
	segmapGet := time.Since(start)
	if misses > 0 {
		logger.Error("lookup mismatch", "misses", misses)
		return
	}

	logger.Info("benchmarking remove")
	start = time.Now()
	for _, k := range keys {
		delete(builtin, k)
	}
	builtinRemove := time.Since(start)

	st := m.Stats()
	start = time.Now()
	for _, k := range keys {
		m.Remove(k)
	}
	segmapRemove := time.Since(start)
	if m.Len() != 0 {
		logger.Error("remove left entries behind", "len", m.Len())
		return
	}

	fmt.Printf("\n")
	fmt.Printf("╔═════════════════════╦════════════════╦════════════════╗\n")
	fmt.Printf("║ Keys: %-14d║ Hash: %-8s ║ Segments: %-4d ║\n", numKeys, algo, len(st.Segments))
	fmt.Printf("╠═════════════════════╬════════════════╬════════════════╣\n")
	fmt.Printf("║ Operation           ║ segmap         ║ built-in map   ║\n")
	fmt.Printf("╠═════════════════════╬════════════════╬════════════════╣\n")
	fmt.Printf("║ Put                 ║ %8.1f ns/op ║ %8.1f ns/op ║\n", perOp(segmapPut, numKeys), perOp(builtinPut, numKeys))
	fmt.Printf("║ Get                 ║ %8.1f ns/op ║ %8.1f ns/op ║\n", perOp(segmapGet, numQueries), perOp(builtinGet, numQueries))
	fmt.Printf("║ Remove              ║ %8.1f ns/op ║ %8.1f ns/op ║\n", perOp(segmapRemove, numKeys), perOp(builtinRemove, numKeys))
	fmt.Printf("║ Pool tasks async    ║ %14d ║ -              ║\n", st.Pool.Async)
	fmt.Printf("║ Pool tasks inline   ║ %14d ║ -              ║\n", st.Pool.Inline)
	fmt.Printf("╚═════════════════════╩════════════════╩════════════════╝\n")
}
