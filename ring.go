package cache

// The recency order is a doubly linked list threaded through an arena of
// slots, bounded by two reserved sentinel slots that never carry an entry.
// head's successor is the most-recently-used entry and tail's predecessor the
// least-recently-used; an empty ring is the two sentinels linked to each
// other, so attach and detach never special-case an empty list. Links are
// arena indices rather than pointers, which keeps every link operation O(1)
// while the arena retains sole ownership of the slots.

const (
	ringHead = 0
	ringTail = 1
	ringNone = -1
)

type slot[K comparable, V any] struct {
	key    K
	value  V
	weight int
	prev   int
	next   int
}

type ring[K comparable, V any] struct {
	slots []slot[K, V]
	free  []int
}

func newRing[K comparable, V any]() *ring[K, V] {
	r := &ring[K, V]{slots: make([]slot[K, V], 2)}
	r.slots[ringHead] = slot[K, V]{prev: ringNone, next: ringTail}
	r.slots[ringTail] = slot[K, V]{prev: ringHead, next: ringNone}
	return r
}

// alloc stores the entry in a previously released slot when one is available,
// growing the arena otherwise. The returned index stays valid for the entry's
// whole lifetime; the new slot is not yet linked into the ring.
func (r *ring[K, V]) alloc(key K, value V, weight int) int {
	if n := len(r.free); n > 0 {
		i := r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[i] = slot[K, V]{key: key, value: value, weight: weight, prev: ringNone, next: ringNone}
		return i
	}
	r.slots = append(r.slots, slot[K, V]{key: key, value: value, weight: weight, prev: ringNone, next: ringNone})
	return len(r.slots) - 1
}

// release zeroes the slot so the arena drops its references to the key and
// value, then queues the index for reuse. The slot must already be detached.
func (r *ring[K, V]) release(i int) {
	r.slots[i] = slot[K, V]{prev: ringNone, next: ringNone}
	r.free = append(r.free, i)
}

// attach links slot i directly after the head sentinel, making it the
// most-recently-used entry.
func (r *ring[K, V]) attach(i int) {
	s := &r.slots[i]
	s.prev = ringHead
	s.next = r.slots[ringHead].next
	r.slots[s.next].prev = i
	r.slots[ringHead].next = i
}

// detach unlinks slot i from the ring without releasing it.
func (r *ring[K, V]) detach(i int) {
	s := &r.slots[i]
	r.slots[s.prev].next = s.next
	r.slots[s.next].prev = s.prev
	s.prev = ringNone
	s.next = ringNone
}

// promote moves slot i to the most-recently-used position.
func (r *ring[K, V]) promote(i int) {
	r.detach(i)
	r.attach(i)
}

// oldest returns the index of the least-recently-used slot, or ringNone when
// the ring holds no entries.
func (r *ring[K, V]) oldest() int {
	i := r.slots[ringTail].prev
	if i == ringHead {
		return ringNone
	}
	return i
}
