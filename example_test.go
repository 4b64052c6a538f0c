package cache_test

import (
	"fmt"

	cache "github.com/jiacai2050/lru-weighted-cache"
)

type document string

func (d document) Weight() int { return len(d) }

func ExampleCache() {
	c, err := cache.New[string, document](5, 2)
	if err != nil {
		panic(err)
	}

	c.Insert("foo", "aa")
	c.Insert("bar", "bb")

	fmt.Println(c.Len(), c.Weight())

	if v, ok := c.Get("foo"); ok {
		fmt.Println(v)
	}
	// Output:
	// 2 4
	// aa
}

func ExampleCache_eviction() {
	// Room for 3 maximal-weight values: the total budget is 12.
	c, err := cache.New[string, document](3, 4)
	if err != nil {
		panic(err)
	}

	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		c.Insert(k, document(k))
	}

	// The cache is full, so the three oldest entries make room for "z".
	c.Insert("z", "zzz")

	fmt.Println("weight:", c.Weight())
	fmt.Println("entries:", c.Len())
	fmt.Println("still cached:", c.Contains("d"))
	fmt.Println("evicted:", !c.Contains("a"))
	// Output:
	// weight: 12
	// entries: 10
	// still cached: true
	// evicted: true
}

func ExampleCache_willAccept() {
	c, err := cache.New[string, document](5, 2)
	if err != nil {
		panic(err)
	}

	fmt.Println(c.WillAccept("ok"))
	fmt.Println(c.WillAccept("too big"))
	// Output:
	// true
	// false
}

func ExampleOnEvict() {
	c, err := cache.New(2, 1, cache.OnEvict[string, document](func(key string, _ document) {
		fmt.Println("evicted:", key)
	}))
	if err != nil {
		panic(err)
	}

	c.Insert("a", "x")
	c.Insert("b", "x")
	c.Insert("c", "x")
	// Output:
	// evicted: a
}
