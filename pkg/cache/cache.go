// Package cache provides a thread-safe cache for compiled expressions.
//
// Combinator calls often sit inside a larger pipeline executed many times
// (e.g. once per row of an outer projection); the cache avoids re-parsing
// the same sub-expression text on every outer invocation. A hit and a miss
// are observationally indistinguishable: compilation is pure, so the cache
// is a performance optimization, never a correctness dependency.
//
// # Example
//
//	c := cache.New(0) // unbounded
//	expr, err := c.GetOrCompile("a.b", func() (engine.Compiled, error) {
//	    return eng.Compile("a.b")
//	})
package cache

import (
	"container/list"
	"sync"

	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/engine"
)

// entry is a cache entry stored in the doubly-linked list.
type entry struct {
	key  string
	expr engine.Compiled
}

// Cache maps expression text to compiled handles. With capacity 0 it grows
// without bound (expression texts are normally a small, programmer-authored
// set); with a positive capacity the least recently used entry is evicted
// once the capacity is reached, which hosts should prefer when expression
// text is derived from external input.
//
// Safe for concurrent use by multiple goroutines.
type Cache struct {
	mu       sync.RWMutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
	hits     uint64
	misses   uint64
}

// New creates a cache. capacity <= 0 means unbounded.
func New(capacity int) *Cache {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
	}
}

// Get retrieves a compiled expression, marking it most recently used.
func (c *Cache) Get(key string) (engine.Compiled, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.ll.MoveToFront(el)
	return el.Value.(*entry).expr, true
}

// Set inserts or replaces an expression.
// At capacity, the least recently used entry is evicted first.
func (c *Cache) Set(key string, expr engine.Compiled) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*entry).expr = expr
		c.ll.MoveToFront(el)
		return
	}

	if c.capacity > 0 && c.ll.Len() >= c.capacity {
		c.evictLocked()
	}

	c.items[key] = c.ll.PushFront(&entry{key: key, expr: expr})
}

// GetOrCompile returns the cached handle for key, or calls compile, stores
// the result and returns it. Concurrent calls with the same key may race to
// compile independently; duplicate work is wasted but not incorrect, and at
// most one entry is kept. Errors are never cached.
func (c *Cache) GetOrCompile(key string, compile func() (engine.Compiled, error)) (engine.Compiled, error) {
	if expr, ok := c.Get(key); ok {
		return expr, nil
	}
	expr, err := compile()
	if err != nil {
		return nil, err
	}
	c.Set(key, expr)
	return expr, nil
}

// Len returns the number of entries currently in the cache.
func (c *Cache) Len() int {
	c.mu.RLock()
	n := len(c.items)
	c.mu.RUnlock()
	return n
}

// Capacity returns the maximum entry count, 0 for unbounded.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Hits returns the number of lookups that found an entry.
func (c *Cache) Hits() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits
}

// Misses returns the number of lookups that found nothing.
func (c *Cache) Misses() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.misses
}

// Invalidate removes a single entry from the cache.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.ll.Remove(el)
		delete(c.items, key)
	}
}

// Clear removes all entries and resets the counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[string]*list.Element)
	c.hits = 0
	c.misses = 0
}

// evictLocked removes the least recently used entry.
// Must be called with c.mu held for writing.
func (c *Cache) evictLocked() {
	el := c.ll.Back()
	if el == nil {
		return
	}
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
