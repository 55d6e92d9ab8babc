package hashtab

import "github.com/cespare/xxhash/v2"

// Classic general-purpose string hash functions, kept for callers that need
// a specific, stable distribution. They run in 32-bit arithmetic and return
// the result widened to uint64. XXHash is the recommended default and what
// NewStringMap installs.

// XXHash returns the 64-bit xxHash digest of s.
func XXHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// RSHash is Robert Sedgewick's hash from Algorithms in C.
func RSHash(s string) uint64 {
	var hash uint32
	var a uint32 = 63689
	const b uint32 = 378551
	for i := 0; i < len(s); i++ {
		hash = hash*a + uint32(s[i])
		a *= b
	}
	return uint64(hash)
}

// JSHash is Justin Sobel's bitwise hash.
func JSHash(s string) uint64 {
	var hash uint32 = 1315423911
	for i := 0; i < len(s); i++ {
		hash ^= (hash << 5) + uint32(s[i]) + (hash >> 2)
	}
	return uint64(hash)
}

// PJWHash is Peter J. Weinberger's hash from the AT&T compiler book.
func PJWHash(s string) uint64 {
	const (
		oneEighth     = 4
		threeQuarters = 24
		highBits      = ^(uint32(0xFFFFFFFF) >> oneEighth)
	)
	var hash, test uint32
	for i := 0; i < len(s); i++ {
		hash = (hash << oneEighth) + uint32(s[i])
		if test = hash & highBits; test != 0 {
			hash = (hash ^ (test >> threeQuarters)) &^ highBits
		}
	}
	return uint64(hash)
}

// ELFHash is the hash used for ELF object files; a variant of PJW.
func ELFHash(s string) uint64 {
	var hash, x uint32
	for i := 0; i < len(s); i++ {
		hash = (hash << 4) + uint32(s[i])
		if x = hash & 0xF0000000; x != 0 {
			hash ^= x >> 24
		}
		hash &^= x
	}
	return uint64(hash)
}

// BKDRHash is the hash from Kernighan and Ritchie's The C Programming
// Language, with seed 131.
func BKDRHash(s string) uint64 {
	const seed uint32 = 131
	var hash uint32
	for i := 0; i < len(s); i++ {
		hash = hash*seed + uint32(s[i])
	}
	return uint64(hash)
}

// SDBMHash is the hash used in the sdbm database library.
func SDBMHash(s string) uint64 {
	var hash uint32
	for i := 0; i < len(s); i++ {
		hash = uint32(s[i]) + (hash << 6) + (hash << 16) - hash
	}
	return uint64(hash)
}

// DJBHash is Daniel J. Bernstein's times-33 hash.
func DJBHash(s string) uint64 {
	var hash uint32 = 5381
	for i := 0; i < len(s); i++ {
		hash = ((hash << 5) + hash) + uint32(s[i])
	}
	return uint64(hash)
}

// DEKHash is Donald E. Knuth's hash from The Art of Computer Programming,
// volume 3.
func DEKHash(s string) uint64 {
	hash := uint32(len(s))
	for i := 0; i < len(s); i++ {
		hash = ((hash << 5) ^ (hash >> 27)) ^ uint32(s[i])
	}
	return uint64(hash)
}

// BPHash shifts-and-xors each byte into the accumulator.
func BPHash(s string) uint64 {
	var hash uint32
	for i := 0; i < len(s); i++ {
		hash = (hash << 7) ^ uint32(s[i])
	}
	return uint64(hash)
}

// FNVHash is the multiply-then-xor FNV variant.
func FNVHash(s string) uint64 {
	const prime uint32 = 0x811C9DC5
	var hash uint32
	for i := 0; i < len(s); i++ {
		hash *= prime
		hash ^= uint32(s[i])
	}
	return uint64(hash)
}

// APHash is Arash Partow's hash.
func APHash(s string) uint64 {
	var hash uint32 = 0xAAAAAAAA
	for i := 0; i < len(s); i++ {
		if i&1 == 0 {
			hash ^= (hash << 7) ^ uint32(s[i])*(hash>>3)
		} else {
			hash ^= ^((hash << 11) + (uint32(s[i]) ^ (hash >> 5)))
		}
	}
	return uint64(hash)
}
