package search

import "github.com/herohde/ai2048/pkg/board"

// cache is a transient transposition cache, owned by a single top-level search call and
// never shared across searches or goroutines. It stores, per visited grid, the value
// computed the last time the grid was visited along with the probability at which it was
// computed: a stored value remains valid for any query at an equal or lower probability,
// since the recursion only prunes harder as probability drops.
type cache struct {
	m map[board.Grid]entry
}

type entry struct {
	p float32
	v float32
}

func newCache() *cache {
	return &cache{m: make(map[board.Grid]entry)}
}

// read returns the cached value and the probability it was computed at, if present.
func (c *cache) read(g board.Grid) (v, p float32, ok bool) {
	e, found := c.m[g]
	if !found {
		return 0, 0, false
	}
	return e.v, e.p, true
}

// write stores v for g at probability p. Because read already short-circuits whenever a
// query's probability does not exceed the stored one, every call to write strictly
// increases the stored probability for g, so overwriting unconditionally is correct.
func (c *cache) write(g board.Grid, p, v float32) {
	c.m[g] = entry{p: p, v: v}
}

func (c *cache) size() int {
	return len(c.m)
}
