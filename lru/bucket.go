package lru

import (
	"time"
)

// key -> item index. The cache's lock covers it, together with the
// recency list.
type bucket[K comparable, V any] struct {
	lookup map[K]*Item[K, V]
}

func newBucket[K comparable, V any]() *bucket[K, V] {
	return &bucket[K, V]{lookup: make(map[K]*Item[K, V])}
}

func (b *bucket[K, V]) itemCount() int {
	return len(b.lookup)
}

func (b *bucket[K, V]) get(key K) *Item[K, V] {
	return b.lookup[key]
}

// Stores a new item for key, returning it along with the item it replaced
// (or nil).
func (b *bucket[K, V]) set(key K, value V, duration time.Duration) (*Item[K, V], *Item[K, V]) {
	expires := time.Now().Add(duration).UnixNano()
	item := newItem(key, value, expires)
	existing := b.lookup[key]
	b.lookup[key] = item
	return item, existing
}

func (b *bucket[K, V]) delete(key K) *Item[K, V] {
	item := b.lookup[key]
	delete(b.lookup, key)
	return item
}

func (b *bucket[K, V]) clear() {
	b.lookup = make(map[K]*Item[K, V])
}
