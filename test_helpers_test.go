package segmap

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG returns an RNG seeded from the test name, so each test sees a
// stable but distinct stream.
func newTestRNG(t testing.TB) *randv2.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return randv2.New(randv2.NewPCG(testSeed1^s1, testSeed2^s2))
}

// newTestPool returns a pool closed automatically when the test ends.
func newTestPool(t testing.TB, parallelism int) *Pool {
	t.Helper()
	p := NewPool(parallelism)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

// newTestMap returns a string map on a fresh pool.
func newTestMap(t testing.TB, opts ...Option) *Map[string, string] {
	t.Helper()
	m, err := New[string, string](newTestPool(t, 4), opts...)
	require.NoError(t, err)
	return m
}

// sequentialKeys returns "key0".."key{n-1}".
func sequentialKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key%d", i)
	}
	return keys
}

// randomKeys returns n distinct pseudo-random 16-byte keys.
func randomKeys(rng *randv2.Rand, n int) [][16]byte {
	seen := make(map[[16]byte]struct{}, n)
	keys := make([][16]byte, 0, n)
	for len(keys) < n {
		var k [16]byte
		binary.LittleEndian.PutUint64(k[0:8], rng.Uint64())
		binary.LittleEndian.PutUint64(k[8:16], rng.Uint64())
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
