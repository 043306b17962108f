package ordmap

import (
	"iter"

	"github.com/IvanBrykalov/ordmap/internal/arena"
)

// Iterator is a lazy cursor over a Map's entries. It is invalidated by
// any structural mutation of the map (new-key insert, delete, move, pop,
// clear): the next Next() then fails fast with ErrConcurrentModification
// instead of silently skipping or duplicating entries. Value overwrites
// via Set are not structural and do not invalidate it.
//
// Usage follows the scanner idiom:
//
//	for it := m.Iter(); it.Next(); {
//	    use(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[K comparable, V any] struct {
	m       *omap[K, V]
	cur     arena.Handle // sentinel before the first unvisited entry
	stop    arena.Handle // sentinel ending the walk
	version uint64
	back    bool
	err     error

	k K
	v V
}

func (m *omap[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, cur: m.seq.head, stop: m.seq.tail, version: m.version}
}

func (m *omap[K, V]) IterBack() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, cur: m.seq.tail, stop: m.seq.head, version: m.version, back: true}
}

// Next advances to the next entry. It returns false at the end of the
// sequence, or when the iteration has been invalidated; Err distinguishes
// the two. Once Next has returned false it keeps returning false.
func (it *Iterator[K, V]) Next() bool {
	if it.err != nil || it.cur == it.stop {
		return false
	}
	if it.version != it.m.version {
		it.err = ErrConcurrentModification
		return false
	}
	n := it.m.seq.node(it.cur)
	if it.back {
		it.cur = n.prev
	} else {
		it.cur = n.next
	}
	if it.cur == it.stop {
		return false
	}
	n = it.m.seq.node(it.cur)
	it.k, it.v = n.key, n.val
	return true
}

// Key returns the key at the cursor. Valid only after a true Next.
func (it *Iterator[K, V]) Key() K { return it.k }

// Value returns the value at the cursor. Valid only after a true Next.
func (it *Iterator[K, V]) Value() V { return it.v }

// Err returns ErrConcurrentModification if the iteration was invalidated
// by a structural mutation, and nil otherwise (including normal
// exhaustion).
func (it *Iterator[K, V]) Err() error { return it.err }

// ---- range-over-func views ----

// seq adapts a cursor factory to iter.Seq2. A fresh cursor per range call
// keeps the view restartable; invalidation surfaces as a panic, since a
// Seq cannot carry an error.
func seq[K comparable, V any](cursor func() *Iterator[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := cursor()
		for it.Next() {
			if !yield(it.k, it.v) {
				return
			}
		}
		if it.err != nil {
			panic(it.err)
		}
	}
}

func (m *omap[K, V]) All() iter.Seq2[K, V]      { return seq(m.Iter) }
func (m *omap[K, V]) Backward() iter.Seq2[K, V] { return seq(m.IterBack) }

func (m *omap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *omap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
