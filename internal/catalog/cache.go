package catalog

import "sync"

// Cache is the transient in-memory read copy of the catalog. It is
// rewritten wholesale after every successful list fetch and never
// patched in place; any mutation triggers a full refetch upstream.
type Cache struct {
	mu    sync.RWMutex
	items []MenuItem
}

func NewCache() *Cache {
	return &Cache{}
}

// ReplaceAll swaps in a fresh snapshot of the catalog.
func (c *Cache) ReplaceAll(items []MenuItem) {
	copied := make([]MenuItem, len(items))
	copy(copied, items)

	c.mu.Lock()
	c.items = copied
	c.mu.Unlock()
}

// Items returns a copy of the current snapshot.
func (c *Cache) Items() []MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Find looks up an item by id in the current snapshot.
func (c *Cache) Find(id string) (MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// Len reports the snapshot size.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
