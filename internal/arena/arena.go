// Package arena provides a growable slot arena addressed by generational
// handles. Slots freed by the caller are recycled through a free list, and
// every free bumps the slot's generation so that handles into reclaimed
// storage stop resolving instead of aliasing the slot's next occupant.
package arena

// Handle identifies one slot in an Arena. The zero Handle is the null
// handle: it never resolves. Handles are plain values and may be compared
// with ==.
type Handle struct {
	index uint32
	gen   uint32
}

// Nil is the null Handle.
var Nil = Handle{}

// IsNil reports whether h is the null handle.
// A live slot always carries a generation >= 1.
func (h Handle) IsNil() bool { return h.gen == 0 }

type slot[T any] struct {
	val  T
	gen  uint32
	live bool
}

// Arena is a growable array of reusable slots. It is not safe for
// concurrent use; callers serialize access the same way they serialize
// access to the structure built on top of it.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32 // reclaimed slot indexes, reused LIFO
	live  int
}

// New returns an empty arena with room for capHint slots before the first
// grow. A non-positive hint is treated as zero.
func New[T any](capHint int) *Arena[T] {
	if capHint < 0 {
		capHint = 0
	}
	return &Arena[T]{slots: make([]slot[T], 0, capHint)}
}

// Alloc stores v in a free slot and returns its handle.
// Reclaimed slots are reused before the backing array grows, so existing
// handles keep their indexes across any number of allocations.
func (a *Arena[T]) Alloc(v T) Handle {
	var i uint32
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		i = uint32(len(a.slots) - 1)
	}
	s := &a.slots[i]
	s.val = v
	s.gen++
	s.live = true
	a.live++
	return Handle{index: i, gen: s.gen}
}

// Get resolves h to the stored value. It returns nil when h is the null
// handle, when the slot was freed, or when the slot was freed and reused
// (generation mismatch). The pointer stays valid until the slot is freed.
func (a *Arena[T]) Get(h Handle) *T {
	if h.gen == 0 || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return &s.val
}

// Free releases the slot behind h and returns true, or returns false if h
// is stale or null. The slot's value is zeroed so the arena drops any
// references the caller stored in it.
func (a *Arena[T]) Free(h Handle) bool {
	if a.Get(h) == nil {
		return false
	}
	s := &a.slots[h.index]
	var zero T
	s.val = zero
	s.live = false
	a.live--
	a.free = append(a.free, h.index)
	return true
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int { return a.live }
