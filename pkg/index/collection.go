package index

import (
	"sync"

	"github.com/hearthside/homefinder/pkg/types"
)

// Collection is one kind's listing set. Insertion order is preserved
// because "featured" is the collection's own order and "newest" is its
// reverse; All returns copies so callers can filter and sort freely
// without touching shared state.
type Collection struct {
	mu    sync.RWMutex
	order []types.ListingID
	items map[types.ListingID]types.ListingRecord
}

func NewCollection() *Collection {
	return &Collection{
		order: make([]types.ListingID, 0),
		items: make(map[types.ListingID]types.ListingRecord),
	}
}

func (c *Collection) Upsert(record types.ListingRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[record.ID]; !exists {
		c.order = append(c.order, record.ID)
	}
	c.items[record.ID] = record
}

func (c *Collection) Delete(id types.ListingID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		return
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Collection) Get(id types.ListingID) (types.ListingRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	record, ok := c.items[id]
	return record, ok
}

// All returns the records in insertion order.
func (c *Collection) All() []types.ListingRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]types.ListingRecord, 0, len(c.order))
	for _, id := range c.order {
		if record, ok := c.items[id]; ok {
			result = append(result, record)
		}
	}
	return result
}

func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
