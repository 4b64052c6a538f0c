package cache

type config[K comparable, V Weighted] struct {
	onEvict func(K, V)
	onHit   func(K, V)
	onMiss  func(K)
}

// Option configures a Cache.
type Option[K comparable, V Weighted] func(*config[K, V])

// OnEvict sets a callback invoked with each entry discarded to make room.
// Entries dropped by Remove or Clear do not trigger it.
func OnEvict[K comparable, V Weighted](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onEvict = fn
	}
}

// OnHit sets a callback invoked when Get finds a key.
func OnHit[K comparable, V Weighted](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onHit = fn
	}
}

// OnMiss sets a callback invoked when Get does not find a key.
func OnMiss[K comparable, V Weighted](fn func(K)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onMiss = fn
	}
}
