package cache

import (
	"sync"
	"time"
)

type Cache struct {
	Storage sync.Map
}

func InitStorage() *Cache {
	return &Cache{
		Storage: sync.Map{},
	}
}

func (c *Cache) Set(k any, v any, expiration time.Duration) {
	c.Storage.Store(k, v)
	go c.delByExp(k, v, expiration)
}

func (c *Cache) Del(k any) {
	c.Storage.Delete(k)
}

func (c *Cache) Load(k any) any {
	v, _ := c.Storage.Load(k)
	return v
}

func (c *Cache) LoadOrSet(k any, v any, expiration time.Duration) any {
	act, loaded := c.Storage.LoadOrStore(k, v)
	if !loaded {
		go c.delByExp(k, act, expiration)
	}
	return act
}

// removes k after expiration unless it was overwritten in the meantime
func (c *Cache) delByExp(k any, v any, expiration time.Duration) {
	time.Sleep(expiration)
	c.Storage.CompareAndDelete(k, v)
}
