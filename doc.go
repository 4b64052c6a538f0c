// Package cache provides an LRU cache bounded by total weight rather than
// entry count.
//
// # Overview
//
// A fixed-slot LRU cache under- or over-estimates memory pressure whenever the
// cached values vary in size. This cache instead charges each value an
// arbitrary, caller-defined cost (its weight) and guarantees the sum of
// weights never exceeds a configured budget, discarding least-recently-used
// entries to stay inside it. It suits heterogeneously sized payloads such as
// strings, documents, or buffers held under a single size budget.
//
// Values declare their own cost through the Weighted interface:
//
//	type document string
//
//	func (d document) Weight() int { return len(d) }
//
// # Basic Usage
//
// Create a cache from two bounds, a count of maximal-weight values and the
// per-item maximum weight:
//
//	c, err := cache.New[string, document](5, 20)
//	if err != nil {
//		return err
//	}
//
//	if err := c.Insert("readme", doc); err != nil {
//		return err // doc.Weight() > 20
//	}
//
//	if v, ok := c.Get("readme"); ok {
//		fmt.Println(v)
//	}
//
//	old, ok := c.Remove("readme")
//
// With a max count of 5 and a max item weight of 20, the total budget is 100:
// the cache can hold 5 documents of weight 20, or 25 of weight 4, or any mix
// whose weights sum to at most 100. A single document of weight 25 is never
// admitted; Insert rejects it with ErrExceedsMaximumWeight before touching
// the cache.
//
// # Recency Semantics
//
// Only Insert updates recency: inserting a new key attaches it at the
// most-recently-used end, and re-inserting an existing key replaces its value
// and promotes it. Get is a pure read with respect to the eviction policy.
// Callers who want read-driven promotion re-insert the value after reading.
//
// # Hooks and Stats
//
// Monitor cache behavior for metrics and logging:
//
//	c, err := cache.New[string, document](5, 20,
//		cache.OnEvict(func(key string, value document) {
//			slog.Debug("evicted", "key", key, "weight", value.Weight())
//		}),
//	)
//
//	snap := c.Stats() // hits, misses, evictions
//
// # Thread Safety
//
// The cache performs no internal locking. It holds no goroutines and no
// thread-affine state, so an instance may be moved or handed between
// goroutines, but concurrent use requires external synchronization: mutating
// calls need exclusive access for their full duration, and read-only queries
// may overlap each other only while no mutation is in flight.
package cache
