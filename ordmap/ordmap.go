package ordmap

import (
	"math/rand"
	"reflect"

	"github.com/IvanBrykalov/ordmap/internal/arena"
	"github.com/IvanBrykalov/ordmap/internal/util"
)

// omap composes the key index and the linked sequence. Every mutating
// method updates both before returning, so no call ever observes them
// disagreeing. version counts structural mutations and is what live
// iterators validate against.
type omap[K comparable, V any] struct {
	seq     sequence[K, V]
	idx     *index[K]
	version uint64

	eq  func(a, b V) bool
	met Metrics
}

// New constructs an empty Map with the provided Options.
func New[K comparable, V any](opt Options[K, V]) Map[K, V] {
	capacity := opt.Capacity
	if capacity <= 0 {
		capacity = minBuckets
	}
	met := opt.Metrics
	if met == nil {
		met = NoopMetrics{}
	}
	hash := opt.Hasher
	if hash == nil {
		seed := opt.Seed
		for seed == 0 {
			seed = rand.Uint64()
		}
		hash = util.Hasher[K](seed)
	}
	eq := opt.ValueEqual
	if eq == nil {
		eq = func(a, b V) bool { return reflect.DeepEqual(a, b) }
	}

	// Index sizing anticipates the load-factor threshold so a map used
	// within its capacity hint never rehashes.
	return &omap[K, V]{
		seq: newSequence[K, V](capacity),
		idx: newIndex[K](capacity*loadDen/loadNum, hash),
		eq:  eq,
		met: met,
	}
}

// FromPairs constructs a Map holding pairs in the given order. A duplicate
// key keeps the position of its first occurrence and the value of its
// last, matching Set's update contract applied during bulk construction.
func FromPairs[K comparable, V any](opt Options[K, V], pairs ...Pair[K, V]) Map[K, V] {
	if opt.Capacity < len(pairs) {
		opt.Capacity = len(pairs)
	}
	m := New[K, V](opt)
	for _, p := range pairs {
		m.Set(p.Key, p.Val)
	}
	return m
}

// FromMap constructs a Map from an unordered Go map. Entry order follows
// src's range order, which Go randomizes per run.
func FromMap[K comparable, V any](opt Options[K, V], src map[K]V) Map[K, V] {
	if opt.Capacity < len(src) {
		opt.Capacity = len(src)
	}
	m := New[K, V](opt)
	for k, v := range src {
		m.Set(k, v)
	}
	return m
}

// ---- Map[K,V] implementation ----

func (m *omap[K, V]) Set(k K, v V) bool {
	if h, ok := m.idx.get(k); ok {
		// In-place overwrite: the entry keeps its sequence position.
		m.seq.node(h).val = v
		m.met.Mutate(OpUpdate)
		return true
	}
	m.insert(k, v)
	return false
}

func (m *omap[K, V]) Add(k K, v V) bool {
	if _, ok := m.idx.get(k); ok {
		return false
	}
	m.insert(k, v)
	return true
}

// insert appends a new key at the back and registers it in the index.
func (m *omap[K, V]) insert(k K, v V) {
	h := m.seq.alloc(k, v)
	m.seq.pushBack(h)
	m.idx.put(k, h)
	m.version++
	m.met.Mutate(OpInsert)
	m.met.Size(m.idx.len())
}

func (m *omap[K, V]) Get(k K) (V, bool) {
	h, ok := m.idx.get(k)
	if !ok {
		m.met.Miss()
		var zero V
		return zero, false
	}
	m.met.Hit()
	return m.seq.node(h).val, true
}

func (m *omap[K, V]) Delete(k K) (V, bool) {
	h, ok := m.idx.remove(k)
	if !ok {
		var zero V
		return zero, false
	}
	v := m.seq.node(h).val
	m.drop(h)
	m.met.Mutate(OpDelete)
	m.met.Size(m.idx.len())
	return v, true
}

// drop unlinks and frees a node the index no longer references.
func (m *omap[K, V]) drop(h arena.Handle) {
	m.seq.unlink(h)
	m.seq.free(h)
	m.version++
}

func (m *omap[K, V]) MoveToBack(k K) error  { return m.move(k, m.seq.pushBack) }
func (m *omap[K, V]) MoveToFront(k K) error { return m.move(k, m.seq.pushFront) }

// move relinks k's node at one end. The index entry is untouched: the
// handle still names the same node, only its links change.
func (m *omap[K, V]) move(k K, relink func(arena.Handle)) error {
	h, ok := m.idx.get(k)
	if !ok {
		return ErrKeyNotFound
	}
	m.seq.unlink(h)
	relink(h)
	m.version++
	m.met.Mutate(OpMove)
	return nil
}

func (m *omap[K, V]) PopBack() (K, V, error)  { return m.pop(m.seq.back()) }
func (m *omap[K, V]) PopFront() (K, V, error) { return m.pop(m.seq.front()) }

func (m *omap[K, V]) pop(h arena.Handle) (K, V, error) {
	if h.IsNil() {
		var zk K
		var zv V
		return zk, zv, ErrEmpty
	}
	n := m.seq.node(h)
	k, v := n.key, n.val
	m.idx.remove(k)
	m.drop(h)
	m.met.Mutate(OpPop)
	m.met.Size(m.idx.len())
	return k, v, nil
}

func (m *omap[K, V]) Front() (K, V, bool) { return m.peek(m.seq.front()) }
func (m *omap[K, V]) Back() (K, V, bool)  { return m.peek(m.seq.back()) }

func (m *omap[K, V]) peek(h arena.Handle) (K, V, bool) {
	if h.IsNil() {
		var zk K
		var zv V
		return zk, zv, false
	}
	n := m.seq.node(h)
	return n.key, n.val, true
}

func (m *omap[K, V]) Len() int { return m.idx.len() }

func (m *omap[K, V]) Clear() {
	capacity := m.seq.len()
	if capacity < minBuckets {
		capacity = minBuckets
	}
	m.seq = newSequence[K, V](capacity)
	m.idx = newIndex[K](capacity*loadDen/loadNum, m.idx.hash)
	m.version++
	m.met.Mutate(OpClear)
	m.met.Size(0)
}

func (m *omap[K, V]) Equal(other Map[K, V]) bool {
	if other == nil || m.Len() != other.Len() {
		return false
	}
	a, b := m.Iter(), other.Iter()
	for a.Next() {
		if !b.Next() {
			return false
		}
		if a.Key() != b.Key() || !m.eq(a.Value(), b.Value()) {
			return false
		}
	}
	return true
}
