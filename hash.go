package segmap

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// HashAlgorithm identifies a built-in 64-bit key hash.
type HashAlgorithm uint8

const (
	// HashXXH3 uses xxHash3-64. Default.
	HashXXH3 HashAlgorithm = iota
	// HashXXHash64 uses the classic xxHash64.
	HashXXHash64
	// HashMurmur3 uses the 64-bit half of MurmurHash3 x64_128.
	HashMurmur3
)

func (a HashAlgorithm) String() string {
	switch a {
	case HashXXH3:
		return "xxh3"
	case HashXXHash64:
		return "xxhash64"
	case HashMurmur3:
		return "murmur3"
	default:
		return fmt.Sprintf("HashAlgorithm(%d)", uint8(a))
	}
}

// valid reports whether a names a built-in algorithm.
func (a HashAlgorithm) valid() bool {
	return a <= HashMurmur3
}

func (a HashAlgorithm) sum(b []byte) uint64 {
	switch a {
	case HashXXHash64:
		return xxhash.Sum64(b)
	case HashMurmur3:
		return murmur3.Sum64(b)
	default:
		return xxh3.Hash(b)
	}
}

func (a HashAlgorithm) sumString(s string) uint64 {
	switch a {
	case HashXXHash64:
		return xxhash.Sum64String(s)
	case HashMurmur3:
		return murmur3.Sum64([]byte(s))
	default:
		return xxh3.HashString(s)
	}
}

// sumUint64 hashes the little-endian encoding of v.
func (a HashAlgorithm) sumUint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return a.sum(buf[:])
}

// newHasher returns the key hash for K. Strings, integers and byte arrays
// go through algo; any other comparable type falls back to the runtime's
// maphash with a per-map seed.
func newHasher[K comparable](algo HashAlgorithm) func(K) uint64 {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		switch k := any(key).(type) {
		case string:
			return algo.sumString(k)
		case int:
			return algo.sumUint64(uint64(k))
		case int8:
			return algo.sumUint64(uint64(k))
		case int16:
			return algo.sumUint64(uint64(k))
		case int32:
			return algo.sumUint64(uint64(k))
		case int64:
			return algo.sumUint64(uint64(k))
		case uint:
			return algo.sumUint64(uint64(k))
		case uint8:
			return algo.sumUint64(uint64(k))
		case uint16:
			return algo.sumUint64(uint64(k))
		case uint32:
			return algo.sumUint64(uint64(k))
		case uint64:
			return algo.sumUint64(k)
		case uintptr:
			return algo.sumUint64(uint64(k))
		case [16]byte:
			return algo.sum(k[:])
		case [32]byte:
			return algo.sum(k[:])
		default:
			return maphash.Comparable(seed, key)
		}
	}
}
