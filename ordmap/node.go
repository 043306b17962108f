package ordmap

import "github.com/IvanBrykalov/ordmap/internal/arena"

// node is a doubly linked sequence element holding one key/value entry.
// Links are arena handles rather than pointers; the sequence's two
// sentinels sit at fixed handles so unlink never special-cases the ends.
type node[K comparable, V any] struct {
	key K
	val V

	// Sequence links: prev walks toward the head sentinel,
	// next toward the tail sentinel.
	prev arena.Handle
	next arena.Handle
}
