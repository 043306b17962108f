package ordmap

import "github.com/IvanBrykalov/ordmap/internal/arena"

// sequence is the doubly linked chain of nodes defining the current order.
// Nodes live in an arena and are addressed by generational handles; the
// chain is bounded by two sentinel nodes allocated at construction, so
// every real node always has a live predecessor and successor.
type sequence[K comparable, V any] struct {
	ar   *arena.Arena[node[K, V]]
	head arena.Handle // sentinel before the first entry
	tail arena.Handle // sentinel after the last entry
}

func newSequence[K comparable, V any](capHint int) sequence[K, V] {
	ar := arena.New[node[K, V]](capHint + 2)
	s := sequence[K, V]{ar: ar}
	s.head = ar.Alloc(node[K, V]{})
	s.tail = ar.Alloc(node[K, V]{})
	ar.Get(s.head).next = s.tail
	ar.Get(s.tail).prev = s.head
	return s
}

// node resolves a handle; nil means the handle is null or stale.
func (s *sequence[K, V]) node(h arena.Handle) *node[K, V] { return s.ar.Get(h) }

// alloc stores a fresh detached node and returns its handle.
func (s *sequence[K, V]) alloc(k K, v V) arena.Handle {
	return s.ar.Alloc(node[K, V]{key: k, val: v})
}

// free releases a node's arena slot. The node must already be unlinked.
func (s *sequence[K, V]) free(h arena.Handle) { s.ar.Free(h) }

// len is the number of entries, excluding the two sentinels.
func (s *sequence[K, V]) len() int { return s.ar.Len() - 2 }

// pushBack links a detached node directly before the tail sentinel in O(1).
func (s *sequence[K, V]) pushBack(h arena.Handle) {
	n := s.node(h)
	last := s.node(s.tail).prev
	n.prev, n.next = last, s.tail
	s.node(last).next = h
	s.node(s.tail).prev = h
}

// pushFront links a detached node directly after the head sentinel in O(1).
func (s *sequence[K, V]) pushFront(h arena.Handle) {
	n := s.node(h)
	first := s.node(s.head).next
	n.prev, n.next = s.head, first
	s.node(first).prev = h
	s.node(s.head).next = h
}

// unlink rejoins h's neighbors around it and detaches h in O(1).
// Correct at either end because the neighbors are then sentinels.
func (s *sequence[K, V]) unlink(h arena.Handle) {
	n := s.node(h)
	s.node(n.prev).next = n.next
	s.node(n.next).prev = n.prev
	n.prev, n.next = arena.Nil, arena.Nil
}

// front returns the first entry's handle, or the null handle when empty.
func (s *sequence[K, V]) front() arena.Handle {
	h := s.node(s.head).next
	if h == s.tail {
		return arena.Nil
	}
	return h
}

// back returns the last entry's handle, or the null handle when empty.
func (s *sequence[K, V]) back() arena.Handle {
	h := s.node(s.tail).prev
	if h == s.head {
		return arena.Nil
	}
	return h
}
