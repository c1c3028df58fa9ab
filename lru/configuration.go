package lru

type Configuration[K comparable, V any] struct {
	maxItems     int
	itemsToPrune int
	onDelete     func(item *Item[K, V])
}

// Creates a configuration object with sensible defaults
// Use this as the start of the fluent configuration:
// e.g.: lru.New(lru.Configure[string, int]().MaxItems(10000))
func Configure[K comparable, V any]() *Configuration[K, V] {
	return &Configuration[K, V]{
		maxItems:     5000,
		itemsToPrune: 1,
	}
}

// The max number of items to store in the cache
// [5000]
func (c *Configuration[K, V]) MaxItems(max int) *Configuration[K, V] {
	if max > 0 {
		c.maxItems = max
	}
	return c
}

// The number of items to prune when the cache grows past MaxItems. The
// cache always prunes at least enough to get back to MaxItems.
// [1]
func (c *Configuration[K, V]) ItemsToPrune(count int) *Configuration[K, V] {
	if count > 0 {
		c.itemsToPrune = count
	}
	return c
}

// OnDelete allows setting a callback function to react to item deletion.
// It is called for explicit deletes, evictions and for the old item when
// Set replaces an existing key. It runs while the cache is locked, so it
// must not call back into the cache.
func (c *Configuration[K, V]) OnDelete(callback func(item *Item[K, V])) *Configuration[K, V] {
	c.onDelete = callback
	return c
}
