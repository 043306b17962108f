package ordmap

import "iter"

// Map is a generic associative container that keeps a deterministic total
// order over its entries: insertion order, unless an entry is explicitly
// repositioned. Lookup, insertion, deletion, and repositioning are all
// amortized O(1).
//
// A Map is NOT safe for concurrent use. The contract is single-writer,
// single-thread: share it across goroutines only behind external mutual
// exclusion. All operations complete synchronously.
type Map[K comparable, V any] interface {
	// Set inserts or updates k→v. A new key is appended at the back; an
	// existing key keeps its position and only the value is overwritten
	// (updates never reorder). Reports whether the key was present.
	Set(k K, v V) bool

	// Add inserts k→v only if k is not present.
	// Returns false if the key already exists (no update is performed).
	Add(k K, v V) bool

	// Get returns the value for k and a presence flag.
	// It never alters the order.
	Get(k K) (V, bool)

	// Delete removes k if present and returns its value.
	// An absent key is an expected outcome, not an error.
	Delete(k K) (V, bool)

	// MoveToBack repositions k's entry after every other entry.
	// Returns ErrKeyNotFound if k is absent. O(1).
	MoveToBack(k K) error

	// MoveToFront repositions k's entry before every other entry.
	// Returns ErrKeyNotFound if k is absent. O(1).
	MoveToFront(k K) error

	// PopBack removes and returns the last entry.
	// Returns ErrEmpty when the map holds no entries.
	PopBack() (K, V, error)

	// PopFront removes and returns the first entry.
	// Returns ErrEmpty when the map holds no entries.
	PopFront() (K, V, error)

	// Front returns the first entry without removing it; ok is false on
	// an empty map.
	Front() (K, V, bool)

	// Back returns the last entry without removing it; ok is false on an
	// empty map.
	Back() (K, V, bool)

	// Len returns the number of entries.
	Len() int

	// Clear removes every entry. Live iterators are invalidated.
	Clear()

	// Iter returns a front→back cursor over the current entries.
	// A structural mutation (new-key insert, delete, move, pop, clear)
	// invalidates live cursors: the next Next() returns false and Err()
	// reports ErrConcurrentModification. Creating a fresh cursor after a
	// mutation is always valid.
	Iter() *Iterator[K, V]

	// IterBack returns a back→front cursor with the same invalidation
	// contract as Iter.
	IterBack() *Iterator[K, V]

	// All yields entries front→back as a restartable range-over-func
	// view. It panics with ErrConcurrentModification if the map is
	// structurally mutated while ranging; use Iter to observe the
	// condition as an error instead.
	All() iter.Seq2[K, V]

	// Backward is All in back→front order.
	Backward() iter.Seq2[K, V]

	// Keys yields the keys in order, with All's mutation semantics.
	Keys() iter.Seq[K]

	// Values yields the values in order, with All's mutation semantics.
	Values() iter.Seq[V]

	// Equal reports order-sensitive equality: equal lengths and, walking
	// both maps front→back in lockstep, the same key and an equal value
	// at every position. Two maps holding the same entries in different
	// orders are not equal. Short-circuits on the first mismatch.
	Equal(other Map[K, V]) bool
}

// Pair is one key/value entry, used by FromPairs and bulk helpers.
type Pair[K comparable, V any] struct {
	Key K
	Val V
}
