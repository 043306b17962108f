// Package util contains internal helpers (hashing, table sizing).
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// Hasher builds a 64-bit hash function for common key types, seeded so two
// container instances probe their tables in different orders.
// Supported: string, []byte, [16|32|64]byte, all int/uint widths, uintptr,
// fmt.Stringer. For other key types supply a custom hasher upstream.
// Panicking on unsupported types is deliberate to avoid silently poor hashing.
func Hasher[K comparable](seed uint64) func(K) uint64 {
	return func(k K) uint64 {
		switch v := any(k).(type) {
		case string:
			return xxh3.HashStringSeed(v, seed)
		case []byte:
			return xxh3.HashSeed(v, seed)
		case [16]byte:
			return xxh3.HashSeed(v[:], seed)
		case [32]byte:
			return xxh3.HashSeed(v[:], seed)
		case [64]byte:
			return xxh3.HashSeed(v[:], seed)

		// Integer-like keys: a multiplicative mix beats hashing 8 bytes.
		case uint8:
			return Mix64(uint64(v) ^ seed)
		case uint16:
			return Mix64(uint64(v) ^ seed)
		case uint32:
			return Mix64(uint64(v) ^ seed)
		case uint64:
			return Mix64(v ^ seed)
		case uint:
			return Mix64(uint64(v) ^ seed)
		case uintptr:
			return Mix64(uint64(v) ^ seed)
		case int8:
			return Mix64(uint64(uint8(v)) ^ seed)
		case int16:
			return Mix64(uint64(uint16(v)) ^ seed)
		case int32:
			return Mix64(uint64(uint32(v)) ^ seed)
		case int64:
			return Mix64(uint64(v) ^ seed)
		case int:
			return Mix64(uint64(v) ^ seed)

		// Fallback for pseudo-keys via String() (avoid if you can).
		case fmt.Stringer:
			return xxh3.HashStringSeed(v.String(), seed)
		default:
			panic(fmt.Sprintf("util.Hasher: unsupported key type %T; convert key to string or provide a custom hasher", k))
		}
	}
}

// Mix64 is the SplitMix64 finalizer. It spreads integer keys across the
// full 64-bit range so power-of-two masking sees well-mixed low bits.
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
