package hashtable

import (
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
)

// HashFunc turns a byte string into a table key.
type HashFunc func(buf []byte) uint64

// FNVHash64 is the 64-bit FNV-1a hash of buf.
func FNVHash64(buf []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(buf)
	return h.Sum64()
}

// FNVHashString is FNVHash64 of the bytes of s.
func FNVHashString(s string) uint64 {
	return FNVHash64([]byte(s))
}

// XXHash64 is the 64-bit xxHash of buf.
func XXHash64(buf []byte) uint64 {
	return xxhash.Sum64(buf)
}
