package price

import (
	"sync"
	"time"
)

type cacheItem[V any] struct {
	value      V
	expireTime time.Time
}

// Cache is a concurrent map whose entries expire after a fixed TTL.
type Cache[V any] struct {
	items sync.Map
	ttl   time.Duration
	now   func() time.Time
}

func NewCache[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl: ttl,
		now: time.Now,
	}
}

func (c *Cache[V]) Set(key string, value V) {
	c.items.Store(key, cacheItem[V]{
		value:      value,
		expireTime: c.now().Add(c.ttl),
	})
}

func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	item, ok := c.items.Load(key)
	if !ok {
		return zero, false
	}

	cached := item.(cacheItem[V])
	if c.now().After(cached.expireTime) {
		c.items.Delete(key)
		return zero, false
	}

	return cached.value, true
}
