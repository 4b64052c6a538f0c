package cache

// Weighted is the contract a stored value must satisfy: it reports its own
// cost as a non-negative integer. The reported weight must stay stable while
// the value sits in the cache; the cache records it at admission and only
// recomputes it when the value is replaced, so a drifting weight silently
// corrupts the total accounting.
//
// A document cache would typically report length:
//
//	type document string
//
//	func (d document) Weight() int { return len(d) }
type Weighted interface {
	Weight() int
}
