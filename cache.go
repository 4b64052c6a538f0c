package cache

import "fmt"

// Cache is an LRU cache bounded by the total weight of its values rather than
// by an entry count. Values report their own cost through the Weighted
// interface; the sum of all stored weights never exceeds
// maxCount * maxItemWeight.
//
// A Cache is not safe for concurrent mutation. It holds no goroutines and no
// thread-affine state, so it may be handed between goroutines freely, but
// callers sharing one instance must serialize mutating calls themselves.
type Cache[K comparable, V Weighted] struct {
	index map[K]int
	ring  *ring[K, V]

	maxItemWeight  int
	maxTotalWeight int
	currentWeight  int

	cfg   config[K, V]
	stats Stats
}

// New builds a cache sized to hold maxCount maximal-weight values: the total
// weight budget is maxCount * maxItemWeight, and any single value above
// maxItemWeight is rejected at insert time. Both bounds must be at least 1,
// and their product must not overflow; otherwise New returns
// ErrNonsenseParameters.
func New[K comparable, V Weighted](maxCount, maxItemWeight int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if maxCount < 1 || maxItemWeight < 1 {
		return nil, ErrNonsenseParameters
	}
	total := maxCount * maxItemWeight
	if total/maxItemWeight != maxCount {
		return nil, ErrNonsenseParameters
	}

	cfg := config[K, V]{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cache[K, V]{
		index:          make(map[K]int),
		ring:           newRing[K, V](),
		maxItemWeight:  maxItemWeight,
		maxTotalWeight: total,
		cfg:            cfg,
	}, nil
}

// WillAccept reports whether a single value fits under the per-item maximum.
// It does not consider current occupancy; making room is eviction's job, not
// admission's.
func (c *Cache[K, V]) WillAccept(value V) bool {
	w := value.Weight()
	return w >= 0 && w <= c.maxItemWeight
}

// Insert stores value under key, evicting least-recently-used entries until
// the value fits under the total weight budget. Replacing an existing key
// drops its old value, charges only the weight delta, and promotes the entry
// to most-recently-used. A value whose weight exceeds the per-item maximum is
// rejected with ErrExceedsMaximumWeight and the cache is left unchanged.
func (c *Cache[K, V]) Insert(key K, value V) error {
	weight := value.Weight()
	if weight < 0 || weight > c.maxItemWeight {
		return ErrExceedsMaximumWeight
	}

	if i, ok := c.index[key]; ok {
		// Promote before evicting so the eviction loop can never consume the
		// entry it is about to rewrite.
		c.ring.promote(i)
		c.evictFor(weight, c.ring.slots[i].weight)
		s := &c.ring.slots[i]
		c.currentWeight += weight - s.weight
		s.value = value
		s.weight = weight
		return nil
	}

	c.evictFor(weight, 0)
	i := c.ring.alloc(key, value, weight)
	c.ring.attach(i)
	c.index[key] = i
	c.currentWeight += weight
	return nil
}

// evictFor discards entries from the least-recently-used end until incoming
// fits under the total budget. replaced is the present weight of the entry
// the incoming value overwrites, zero for a fresh key; subtracting it up
// front keeps a same-key replacement from paying for its own prior occupancy.
// Admission guarantees incoming <= maxTotalWeight, so the loop terminates, in
// the worst case with the cache emptied.
func (c *Cache[K, V]) evictFor(incoming, replaced int) {
	projected := c.currentWeight - replaced
	for projected+incoming > c.maxTotalWeight {
		projected -= c.evictOldest()
	}
}

func (c *Cache[K, V]) evictOldest() int {
	i := c.ring.oldest()
	s := c.ring.slots[i]
	delete(c.index, s.key)
	c.ring.detach(i)
	c.ring.release(i)
	c.currentWeight -= s.weight
	c.stats.evict()
	if c.cfg.onEvict != nil {
		c.cfg.onEvict(s.key, s.value)
	}
	return s.weight
}

// Get returns the value stored under key. A read does not update recency:
// only Insert affects eviction order. Callers who want read-driven promotion
// re-insert the value.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		c.stats.miss()
		if c.cfg.onMiss != nil {
			c.cfg.onMiss(key)
		}
		var zero V
		return zero, false
	}

	s := &c.ring.slots[i]
	c.stats.hit()
	if c.cfg.onHit != nil {
		c.cfg.onHit(s.key, s.value)
	}
	return s.value, true
}

// Remove deletes key and returns its value. Other entries keep their relative
// recency order.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	s := c.ring.slots[i]
	delete(c.index, key)
	c.ring.detach(i)
	c.ring.release(i)
	c.currentWeight -= s.weight
	return s.value, true
}

// Contains reports whether key is present, without touching recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return len(c.index) == 0
}

// Weight returns the combined weight of every stored value.
func (c *Cache[K, V]) Weight() int {
	return c.currentWeight
}

// MaxWeight returns the total weight budget, maxCount * maxItemWeight.
func (c *Cache[K, V]) MaxWeight() int {
	return c.maxTotalWeight
}

// MaxItemWeight returns the largest weight a single value may have.
func (c *Cache[K, V]) MaxItemWeight() int {
	return c.maxItemWeight
}

// Clear removes every entry. Eviction hooks are not invoked; the entries are
// dropped, not evicted.
func (c *Cache[K, V]) Clear() {
	c.index = make(map[K]int)
	c.ring = newRing[K, V]()
	c.currentWeight = 0
}

// Stats returns a snapshot of cache statistics.
func (c *Cache[K, V]) Stats() Snapshot {
	return c.stats.Snapshot()
}

func (c *Cache[K, V]) String() string {
	return fmt.Sprintf("Cache{weight: %d/%d, entries: %d, maxItemWeight: %d}",
		c.currentWeight, c.maxTotalWeight, len(c.index), c.maxItemWeight)
}
