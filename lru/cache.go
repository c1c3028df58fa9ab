// An LRU cache built on dlist. Items are ordered by recency in a linked
// list (head is the most recently used) and evicted from the tail once the
// cache grows past its configured size.
package lru

import (
	"sync"
	"time"

	"github.com/karlseguin/dlist"
)

type Cache[K comparable, V any] struct {
	*Configuration[K, V]
	sync.Mutex
	bucket  *bucket[K, V]
	list    *dlist.List[*Item[K, V]]
	dropped int
}

// Create a new cache with the specified configuration
// See lru.Configure() for creating a configuration
func New[K comparable, V any](config *Configuration[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		Configuration: config,
		bucket:        newBucket[K, V](),
		list:          dlist.New[*Item[K, V]](),
	}
}

func (c *Cache[K, V]) ItemCount() int {
	c.Lock()
	defer c.Unlock()
	return c.bucket.itemCount()
}

// Get an item from the cache. Returns nil if the item wasn't found.
// This can return an expired item. Use item.Expired() to see if the item
// is expired and item.TTL() to see how long until the item expires (which
// will be negative for an already expired item). Expired items are not
// promoted.
func (c *Cache[K, V]) Get(key K) *Item[K, V] {
	c.Lock()
	defer c.Unlock()
	item := c.bucket.get(key)
	if item == nil {
		return nil
	}
	if !item.Expired() {
		c.list.MoveToFront(item.node)
	}
	return item
}

// Same as Get but does not promote the item.
func (c *Cache[K, V]) Peek(key K) *Item[K, V] {
	c.Lock()
	defer c.Unlock()
	return c.bucket.get(key)
}

// Set the value in the cache for the specified duration
func (c *Cache[K, V]) Set(key K, value V, duration time.Duration) {
	c.Lock()
	defer c.Unlock()
	c.set(key, value, duration)
}

// Replace the value if it exists, does not set if it doesn't.
// Returns true if the item existed and was replaced, false otherwise.
// Replace does not reset item's TTL
func (c *Cache[K, V]) Replace(key K, value V) bool {
	c.Lock()
	defer c.Unlock()
	item := c.bucket.get(key)
	if item == nil {
		return false
	}
	c.set(key, value, item.TTL())
	return true
}

// Attempts to get the value from the cache and calls fetch on a miss (missing
// or stale item). If fetch returns an error, no value is cached and the error
// is returned back to the caller.
// fetch runs without the cache being locked, so concurrent misses on the
// same key may each call it.
func (c *Cache[K, V]) Fetch(key K, duration time.Duration, fetch func() (V, error)) (*Item[K, V], error) {
	item := c.Get(key)
	if item != nil && !item.Expired() {
		return item, nil
	}
	value, err := fetch()
	if err != nil {
		return nil, err
	}
	c.Lock()
	defer c.Unlock()
	return c.set(key, value, duration), nil
}

// Remove the item from the cache, return true if the item was present, false otherwise.
func (c *Cache[K, V]) Delete(key K) bool {
	c.Lock()
	defer c.Unlock()
	item := c.bucket.delete(key)
	if item == nil {
		return false
	}
	c.list.Remove(item.node)
	c.deleted(item)
	return true
}

// Deletes all items that the matches func evaluates to true.
func (c *Cache[K, V]) DeleteFunc(matches func(key K, item *Item[K, V]) bool) int {
	c.Lock()
	defer c.Unlock()
	count := 0
	for node := range c.list.Nodes() {
		item := node.Value()
		if !matches(item.key, item) {
			continue
		}
		c.bucket.delete(item.key)
		c.list.Remove(node)
		c.deleted(item)
		count++
	}
	return count
}

// Calls matches for each item, most recently used first, until it returns
// false.
func (c *Cache[K, V]) ForEachFunc(matches func(key K, item *Item[K, V]) bool) {
	c.Lock()
	defer c.Unlock()
	for item := range c.list.All() {
		if !matches(item.key, item) {
			return
		}
	}
}

// The cached keys, most recently used first.
func (c *Cache[K, V]) Keys() []K {
	c.Lock()
	defer c.Unlock()
	keys := dlist.Map(c.list, func(item *Item[K, V], _ int, _ *dlist.List[*Item[K, V]]) K {
		return item.key
	})
	return keys.ToSlice()
}

// Gets the number of items removed from the cache due to memory pressure
// since the last time GetDropped was called
func (c *Cache[K, V]) GetDropped() int {
	c.Lock()
	defer c.Unlock()
	dropped := c.dropped
	c.dropped = 0
	return dropped
}

// Removes every item. OnDelete is not called.
func (c *Cache[K, V]) Clear() {
	c.Lock()
	defer c.Unlock()
	c.list.Clear()
	c.bucket.clear()
}

func (c *Cache[K, V]) set(key K, value V, duration time.Duration) *Item[K, V] {
	item, existing := c.bucket.set(key, value, duration)
	if existing != nil {
		c.list.Remove(existing.node)
		c.deleted(existing)
	}
	item.node = c.list.Prepend(item)
	if c.list.Len() > c.maxItems {
		c.dropped += c.gc()
	}
	return item
}

func (c *Cache[K, V]) deleted(item *Item[K, V]) {
	if c.onDelete != nil {
		c.onDelete(item)
	}
}

// evicts from the tail, the least recently used end
func (c *Cache[K, V]) gc() int {
	itemsToPrune := c.itemsToPrune
	if over := c.list.Len() - c.maxItems; over > itemsToPrune {
		itemsToPrune = over
	}
	// never evict the item which was just set
	if limit := c.list.Len() - 1; itemsToPrune > limit {
		itemsToPrune = limit
	}

	dropped := 0
	for ; dropped < itemsToPrune; dropped++ {
		item, ok := c.list.Pop()
		if !ok {
			break
		}
		c.bucket.delete(item.key)
		c.deleted(item)
	}
	return dropped
}
