// cache_generic.go: type-safe generic cache API
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

import (
	"fmt"
	"strconv"
)

// GenericCache provides a type-safe cache interface using Go generics.
// K must be comparable (used as map key after string conversion).
// V can be any type.
//
// Example:
//
//	cache := keystone.NewGenericCache[string, User](keystone.Config{
//	    MaxSize: 10_000,
//	    TTL:     time.Hour,
//	})
//	cache.Put("user:123", user)
//	if value, found := cache.Get("user:123"); found {
//	    fmt.Printf("User: %+v\n", value)
//	}
type GenericCache[K comparable, V any] struct {
	inner Cache
}

// NewGenericCache creates a new type-safe generic cache wrapping a Cache
// built from cfg.
func NewGenericCache[K comparable, V any](cfg Config) *GenericCache[K, V] {
	return &GenericCache[K, V]{
		inner: NewCache(cfg),
	}
}

// Put stores a key-value pair, replacing any existing entry for key.
func (c *GenericCache[K, V]) Put(key K, value V) bool {
	keyStr := keyToString(key)
	return c.inner.Put(keyStr, value)
}

// Get retrieves a value from the cache.
func (c *GenericCache[K, V]) Get(key K) (value V, found bool) {
	keyStr := keyToString(key)
	val, found := c.inner.Get(keyStr)
	if !found {
		var zero V
		return zero, false
	}

	typedValue, ok := val.(V)
	if !ok {
		var zero V
		return zero, false
	}

	return typedValue, true
}

// Remove deletes a key from the cache, returning its value if present.
func (c *GenericCache[K, V]) Remove(key K) (value V, found bool) {
	keyStr := keyToString(key)
	val, found := c.inner.Remove(keyStr)
	if !found {
		var zero V
		return zero, false
	}
	typedValue, ok := val.(V)
	if !ok {
		var zero V
		return zero, false
	}
	return typedValue, true
}

// Has checks if a key exists in the cache without the statistics side
// effects of Get.
func (c *GenericCache[K, V]) Has(key K) bool {
	keyStr := keyToString(key)
	return c.inner.Has(keyStr)
}

// keyToString converts a key of any comparable type to string, avoiding
// allocation for the common integer and string key types.
func keyToString[K comparable](key K) string {
	switch v := any(key).(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		return fmt.Sprintf("%v", key)
	}
}

// Clear removes all entries from the cache.
func (c *GenericCache[K, V]) Clear() {
	c.inner.Clear()
}

// ExpireNow synchronously sweeps the cache for expired entries, removing
// them and returning how many were evicted.
func (c *GenericCache[K, V]) ExpireNow() int {
	return c.inner.ExpireNow()
}

// Capacity returns the maximum number of items the cache can hold.
func (c *GenericCache[K, V]) Capacity() int {
	return c.inner.Capacity()
}

// Stats returns current cache statistics.
func (c *GenericCache[K, V]) Stats() Snapshot {
	return c.inner.Stats()
}

// Len returns the current number of items in the cache.
func (c *GenericCache[K, V]) Len() int {
	return c.inner.Len()
}

// Shutdown stops background work and releases resources. After Shutdown,
// the cache should not be used.
func (c *GenericCache[K, V]) Shutdown() error {
	return c.inner.Shutdown()
}
