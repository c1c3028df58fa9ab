package lru

import (
	"sync/atomic"
	"time"

	"github.com/karlseguin/dlist"
)

type Item[K comparable, V any] struct {
	key     K
	value   V
	expires int64
	node    *dlist.Node[*Item[K, V]]
}

func newItem[K comparable, V any](key K, value V, expires int64) *Item[K, V] {
	return &Item[K, V]{
		key:     key,
		value:   value,
		expires: expires,
	}
}

func (i *Item[K, V]) Key() K {
	return i.key
}

func (i *Item[K, V]) Value() V {
	return i.value
}

func (i *Item[K, V]) Expired() bool {
	expires := atomic.LoadInt64(&i.expires)
	return expires < time.Now().UnixNano()
}

// Time until the item expires, negative once it has.
func (i *Item[K, V]) TTL() time.Duration {
	expires := atomic.LoadInt64(&i.expires)
	return time.Nanosecond * time.Duration(expires-time.Now().UnixNano())
}

func (i *Item[K, V]) Expires() time.Time {
	expires := atomic.LoadInt64(&i.expires)
	return time.Unix(0, expires)
}

// Pushes the expiry to duration from now.
func (i *Item[K, V]) Extend(duration time.Duration) {
	atomic.StoreInt64(&i.expires, time.Now().Add(duration).UnixNano())
}
