package itemstack

import (
	"sort"

	"github.com/osse101/CustomItemEffects_Go/internal/domain"
)

// DataContainer holds namespaced string attributes that survive the host's
// item serialization. It is the only durable storage an item carries.
type DataContainer struct {
	values map[domain.NamespacedKey]string
}

func newDataContainer() *DataContainer {
	return &DataContainer{values: make(map[domain.NamespacedKey]string)}
}

// Set stores value under key, replacing any previous value
func (c *DataContainer) Set(key domain.NamespacedKey, value string) {
	c.values[key] = value
}

// Get returns the value stored under key
func (c *DataContainer) Get(key domain.NamespacedKey) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is present
func (c *DataContainer) Has(key domain.NamespacedKey) bool {
	_, ok := c.values[key]
	return ok
}

// Remove deletes key if present
func (c *DataContainer) Remove(key domain.NamespacedKey) {
	delete(c.values, key)
}

// Keys returns all keys sorted by their string form
func (c *DataContainer) Keys() []domain.NamespacedKey {
	keys := make([]domain.NamespacedKey, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

// IsEmpty reports whether no attributes are stored
func (c *DataContainer) IsEmpty() bool {
	return len(c.values) == 0
}

func (c *DataContainer) clone() *DataContainer {
	out := newDataContainer()
	for k, v := range c.values {
		out.values[k] = v
	}
	return out
}
