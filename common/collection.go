// Package common contains generic helpers shared by the rest of the module.
package common

import "sync"

// Collection is a concurrent, insertion-ordered map. It is the storage
// primitive for every entity cache: iteration yields values in the order
// their keys were first inserted, and overwriting a key keeps its original
// position.
type Collection[K comparable, V any] struct {
	mu    sync.RWMutex
	m     map[K]V
	order []K
}

// NewCollection returns an empty Collection.
func NewCollection[K comparable, V any]() *Collection[K, V] {
	return &Collection[K, V]{
		m: make(map[K]V),
	}
}

// Set sets the key k to the value v.
func (c *Collection[K, V]) Set(k K, v V) {
	c.mu.Lock()
	if _, ok := c.m[k]; !ok {
		c.order = append(c.order, k)
	}
	c.m[k] = v
	c.mu.Unlock()
}

// Get gets the value at key k, or the zero value if not set.
func (c *Collection[K, V]) Get(k K) (v V, ok bool) {
	c.mu.RLock()
	v, ok = c.m[k]
	c.mu.RUnlock()
	return v, ok
}

// Exists returns true if key exists, false otherwise.
func (c *Collection[K, V]) Exists(k K) (exists bool) {
	c.mu.RLock()
	_, exists = c.m[k]
	c.mu.RUnlock()
	return exists
}

// Delete removes a key. It returns true if the key existed, false otherwise.
func (c *Collection[K, V]) Delete(k K) (existed bool) {
	c.mu.Lock()
	_, existed = c.m[k]
	if existed {
		delete(c.m, k)
		for i := range c.order {
			if c.order[i] == k {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
	c.mu.Unlock()
	return existed
}

// Len returns the size of c.
func (c *Collection[K, V]) Len() int {
	c.mu.RLock()
	n := len(c.m)
	c.mu.RUnlock()
	return n
}

// First returns the oldest entry.
func (c *Collection[K, V]) First() (k K, v V, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.order) == 0 {
		return k, v, false
	}
	k = c.order[0]
	return k, c.m[k], true
}

// Keys returns all keys in insertion order.
func (c *Collection[K, V]) Keys() []K {
	c.mu.RLock()
	keys := make([]K, len(c.order))
	copy(keys, c.order)
	c.mu.RUnlock()
	return keys
}

// Values returns all values in insertion order.
func (c *Collection[K, V]) Values() []V {
	c.mu.RLock()
	values := make([]V, 0, len(c.order))
	for _, k := range c.order {
		values = append(values, c.m[k])
	}
	c.mu.RUnlock()
	return values
}

// Each calls fn for every entry in insertion order until fn returns false.
// fn must not mutate c.
func (c *Collection[K, V]) Each(fn func(K, V) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, k := range c.order {
		if !fn(k, c.m[k]) {
			return
		}
	}
}

// Clear removes every entry.
func (c *Collection[K, V]) Clear() {
	c.mu.Lock()
	c.m = make(map[K]V)
	c.order = nil
	c.mu.Unlock()
}
