// Package cache provides the bounded LRU cache used for text measurement.
package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 1024

// LRU is a fixed-capacity least-recently-used cache. It is safe for
// concurrent use and must not be copied after creation.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*list.Element
	order    *list.List // front is most recently used
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// New creates an LRU holding at most capacity entries.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K, V]{
		entries:  make(map[K]*list.Element, capacity),
		order:    list.New(),
		capacity: capacity,
	}
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		c.hits.Add(1)
		return el.Value.(*entry[K, V]).value, true
	}
	c.misses.Add(1)
	var zero V
	return zero, false
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

// GetOrCreate returns the cached value for key or stores the result of
// create. create runs under the cache lock and must not call back into c.
func (c *LRU[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		c.hits.Add(1)
		return el.Value.(*entry[K, V]).value
	}
	c.misses.Add(1)
	v := create()
	c.setLocked(key, v)
	return v
}

func (c *LRU[K, V]) setLocked(key K, value V) {
	if el, ok := c.entries[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	for c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry[K, V]).key)
		c.evictions.Add(1)
	}
	c.entries[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear drops all entries. Counters are kept.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*list.Element, c.capacity)
	c.order.Init()
}

// Stats returns the current counters.
func (c *LRU[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
