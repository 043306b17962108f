package util

// IsPowerOfTwo reports whether x is a positive power of two, i.e. a valid
// table size for mask-based indexing.
func IsPowerOfTwo(x uint64) bool {
	return x != 0 && (x&(x-1)) == 0
}

// NextPow2 rounds x up to the nearest power of two so hash tables can
// replace modulo with an index mask. x <= 1 yields 1; a request whose
// exact next power would not fit in 64 bits is clamped to 1<<63.
func NextPow2(x uint64) uint64 {
	if x <= 1 {
		return 1
	}
	if IsPowerOfTwo(x) {
		return x
	}
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	x++
	if x == 0 { // overflow wrapped to zero
		return 1 << 63
	}
	return x
}
