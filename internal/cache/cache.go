// Package cache provides a small memoizing cache keyed by comparable
// values, used to avoid re-parsing the same GVariant signature string
// repeatedly.
package cache

import "sync"

// A Cache memoizes values of type V by key K. It is safe for
// concurrent use.
type Cache[K comparable, V any] struct {
	m sync.Map
}

type entry[V any] struct {
	val V
	err error
}

// Get returns the cached value for key, if any.
func (c *Cache[K, V]) Get(key K) (val V, err error, found bool) {
	v, ok := c.m.Load(key)
	if !ok {
		var zero V
		return zero, nil, false
	}
	e := v.(entry[V])
	return e.val, e.err, true
}

// Set stores val as the cached result for key.
func (c *Cache[K, V]) Set(key K, val V) {
	c.m.Store(key, entry[V]{val: val})
}

// SetErr stores err as the cached failure result for key.
func (c *Cache[K, V]) SetErr(key K, err error) {
	c.m.Store(key, entry[V]{err: err})
}
