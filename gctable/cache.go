package gctable

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache is a read-through, in-memory cache of tables keyed by genetic
// code id. Concurrent loads of the same id result in a single call to
// the underlying provider. Failed loads are not cached.
type Cache struct {
	p Provider

	mu     sync.RWMutex
	tables map[int]*Table
	group  singleflight.Group
}

// NewCache creates a cache in front of p.
func NewCache(p Provider) *Cache {
	return &Cache{
		p:      p,
		tables: make(map[int]*Table),
	}
}

// Load returns the cached table for id, loading it on the first call.
func (c *Cache) Load(id int) (*Table, error) {
	c.mu.RLock()
	t, ok := c.tables[id]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}

	v, err, _ := c.group.Do(strconv.Itoa(id), func() (interface{}, error) {
		// Another call may have finished between the lookup and Do.
		c.mu.RLock()
		t, ok := c.tables[id]
		c.mu.RUnlock()
		if ok {
			return t, nil
		}
		t, err := c.p.Load(id)
		if err != nil {
			return nil, err
		}
		log.Debugf("Loaded genetic code %d (%s)", t.ID, t.Name)
		c.mu.Lock()
		c.tables[id] = t
		c.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Table), nil
}

// IDs lists the ids of the underlying provider.
func (c *Cache) IDs() []int {
	return IDs(c.p)
}
