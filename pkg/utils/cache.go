package utils

import (
	"github.com/patrickmn/go-cache"
)

// StringCache memoizes string values that never change for the life of
// the process, e.g. function names resolved from a program counter.
type StringCache struct {
	Cache *cache.Cache
}

func NewStringCache() *StringCache {
	return &StringCache{
		Cache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *StringCache) Get(key string) (string, bool) {
	raw, found := c.Cache.Get(key)
	if !found {
		return "", false
	}
	return raw.(string), true
}

func (c *StringCache) Set(key string, value string) {
	c.Cache.Set(key, value, cache.NoExpiration)
}

func (c *StringCache) Len() int {
	return c.Cache.ItemCount()
}
