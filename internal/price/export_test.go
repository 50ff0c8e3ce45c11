package price

import "time"

func (c *Cache[V]) SetClock(now func() time.Time) {
	c.now = now
}
