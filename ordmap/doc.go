// Package ordmap provides a generic, insertion-ordered associative
// container with O(1) lookup, insertion, deletion, and repositioning of an
// entry to either end, plus order-sensitive equality and fail-fast
// iteration.
//
// # Design
//
//   - Storage: nodes live in a growable arena and are addressed by
//     generational handles (index + generation) instead of raw pointers.
//     Freed slots are recycled through a free list; the generation bump on
//     free means a stale handle misses instead of aliasing the slot's next
//     occupant.
//
//   - Order: a doubly linked chain over arena handles, bounded by two
//     sentinel nodes, defines the current order. New keys append at the
//     back; Set on an existing key overwrites in place and never relinks,
//     so order is stable under re-insertion. MoveToFront/MoveToBack
//     relink a node in O(1) without touching its index entry.
//
//   - Index: a robin-hood linear-probing hash table maps each key to its
//     node's handle. Bucket counts are powers of two, each bucket caches
//     the key's 64-bit hash, growth triggers at 2/3 occupancy, and
//     deletion backward-shifts the probe run (no tombstones). Growing
//     rehashes table slots only; node handles survive every rehash.
//
//   - Hashing: string and byte-array keys go through seeded xxh3, integer
//     keys through a SplitMix64 finalizer. Each map picks a random seed
//     unless Options.Seed or Options.Hasher pins one.
//
//   - Iteration: cursors fail fast. Any structural mutation (new-key
//     insert, delete, move, pop, clear) bumps an internal version; a live
//     cursor notices on its next advance and reports
//     ErrConcurrentModification rather than skipping or repeating
//     entries. All/Backward/Keys/Values are restartable range-over-func
//     views over the same machinery.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Mutate/Size signals.
//     By default NoopMetrics is used; plug a Prometheus adapter to export
//     metrics.
//
// # Basic usage
//
//	m := ordmap.New[string, int](ordmap.Options[string, int]{})
//	m.Set("a", 1)
//	m.Set("b", 2)
//	m.Set("a", 10) // overwrites in place; "a" still first
//	for k, v := range m.All() {
//	    fmt.Println(k, v) // a 10, then b 2
//	}
//
// # Reordering and popping
//
//	_ = m.MoveToFront("b")       // order is now b, a
//	k, v, _ := m.PopBack()       // removes and returns a, 10
//	_, _, err := m.PopBack()     // after popping the rest: err == ErrEmpty
//
// # Equality
//
//	x := ordmap.FromPairs(ordmap.Options[string, int]{},
//	    ordmap.Pair[string, int]{Key: "a", Val: 1},
//	    ordmap.Pair[string, int]{Key: "b", Val: 2})
//	y := ordmap.FromPairs(ordmap.Options[string, int]{},
//	    ordmap.Pair[string, int]{Key: "b", Val: 2},
//	    ordmap.Pair[string, int]{Key: "a", Val: 1})
//	x.Equal(y) // false: same entries, different order
//
// # Thread-safety & complexity
//
// A Map is not safe for concurrent use; the contract is single-writer,
// single-thread. Wrap it in a mutex to share across goroutines. Typical
// operation cost is O(1) expected time: one probe run in the index plus a
// constant number of link fixes. Iteration is O(n) lazy.
package ordmap
