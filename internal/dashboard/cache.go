package dashboard

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cacheSize bounds the number of cached dashboards. There are only two keys
// today; the bound exists so a bug can never grow the map.
const cacheSize = 32

// Cache is a bounded TTL cache of assembled responses. Entries expire a fixed
// duration after insertion; there is no invalidation API. Safe for concurrent
// use. Constructed once at startup and injected into the service.
type Cache struct {
	entries *expirable.LRU[string, *Response]
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{entries: expirable.NewLRU[string, *Response](cacheSize, nil, ttl)}
}

func (c *Cache) Get(key string) (*Response, bool) {
	return c.entries.Get(key)
}

func (c *Cache) Put(key string, resp *Response) {
	c.entries.Add(key, resp)
}
