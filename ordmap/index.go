package ordmap

import (
	"github.com/IvanBrykalov/ordmap/internal/arena"
	"github.com/IvanBrykalov/ordmap/internal/util"
)

const (
	// minBuckets is the smallest bucket array; always a power of two.
	minBuckets = 16
	// loadNum/loadDen: grow when occupancy exceeds 2/3 of the buckets.
	loadNum = 2
	loadDen = 3
)

// bucket is a single open-addressing table slot. dib (distance to initial
// bucket) is offset by one: zero means empty, so a fresh table needs no
// initialization pass.
type bucket[K comparable] struct {
	dib  uint8
	hash uint64
	key  K
	node arena.Handle
}

func (b *bucket[K]) match(hash uint64, key K) bool {
	return b.hash == hash && b.key == key
}

// index maps keys to node handles. It is a robin-hood linear-probing table
// with backward-shift deletion (no tombstones), power-of-two sizing, and a
// cached hash per bucket so growing only re-masks. Growing rehashes table
// slots only; the node handles it stores are never invalidated.
type index[K comparable] struct {
	hash    func(K) uint64
	mask    uint64
	expand  int // grow when keys exceeds this
	keys    int
	buckets []bucket[K]
}

func newIndex[K comparable](size int, hash func(K) uint64) *index[K] {
	if size < minBuckets {
		size = minBuckets
	}
	n := util.NextPow2(uint64(size))
	return &index[K]{
		hash:    hash,
		mask:    n - 1,
		expand:  int(n) * loadNum / loadDen,
		buckets: make([]bucket[K], n),
	}
}

func (x *index[K]) len() int { return x.keys }

// get returns the handle registered for key, if any. Average O(1).
func (x *index[K]) get(key K) (arena.Handle, bool) {
	hash := x.hash(key)
	i := hash & x.mask
	for {
		b := &x.buckets[i]
		if b.dib == 0 {
			return arena.Nil, false
		}
		if b.match(hash, key) {
			return b.node, true
		}
		i = (i + 1) & x.mask
	}
}

// put registers key -> h, replacing any previous handle for the key.
// Reports whether the key was already present. Amortized O(1).
func (x *index[K]) put(key K, h arena.Handle) bool {
	if x.keys >= x.expand {
		x.grow()
	}
	return x.insert(bucket[K]{dib: 1, hash: x.hash(key), key: key, node: h})
}

func (x *index[K]) insert(nb bucket[K]) bool {
	i := nb.hash & x.mask
	for {
		b := &x.buckets[i]
		if b.dib == 0 {
			*b = nb
			x.keys++
			return false
		}
		if b.match(nb.hash, nb.key) {
			b.node = nb.node
			return true
		}
		// Robin hood: the poorer entry keeps the slot.
		if b.dib < nb.dib {
			nb, *b = *b, nb
		}
		i = (i + 1) & x.mask
		nb.dib++
	}
}

// remove unregisters key and returns its handle. Average O(1).
func (x *index[K]) remove(key K) (arena.Handle, bool) {
	hash := x.hash(key)
	i := hash & x.mask
	for {
		b := &x.buckets[i]
		if b.dib == 0 {
			return arena.Nil, false
		}
		if b.match(hash, key) {
			h := b.node
			x.deleteAt(i)
			return h, true
		}
		i = (i + 1) & x.mask
	}
}

// deleteAt removes the entry at bucket i, shifting the following probe run
// back one slot so lookups never cross a hole (no tombstones to rehash).
func (x *index[K]) deleteAt(i uint64) {
	for {
		next := (i + 1) & x.mask
		if x.buckets[next].dib <= 1 {
			x.buckets[i] = bucket[K]{}
			break
		}
		x.buckets[i] = x.buckets[next]
		x.buckets[i].dib--
		i = next
	}
	x.keys--
}

// grow doubles the bucket array and reinserts every live entry.
// Cached hashes make this a re-mask, not a re-hash of keys.
func (x *index[K]) grow() {
	old := x.buckets
	n := uint64(len(old)) * 2
	x.mask = n - 1
	x.expand = int(n) * loadNum / loadDen
	x.keys = 0
	x.buckets = make([]bucket[K], n)
	for i := range old {
		if old[i].dib > 0 {
			old[i].dib = 1
			x.insert(old[i])
		}
	}
}
