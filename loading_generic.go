// loading_generic.go: type-safe GetOrLoad implementation with generics
//
// This file provides generic versions of GetOrLoad and GetOrLoadContext,
// enabling type-safe cache-aside access without type assertions at the
// call site.
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0
package keystone

import "context"

// GetOrLoad is the generic version of Cache.GetOrLoad.
// Returns the value from cache, or loads it using the provided loader function.
//
// Example:
//
//	cache := NewGenericCache[int, string](Config{MaxSize: 100})
//	value, err := cache.GetOrLoad(42, func() (string, error) {
//	    return fetchFromDB(42)
//	})
func (c *GenericCache[K, V]) GetOrLoad(key K, loader func() (V, error)) (V, error) {
	var zero V
	keyStr := keyToString(key)

	var wrapped func() (interface{}, error)
	if loader != nil {
		wrapped = func() (interface{}, error) { return loader() }
	}

	result, err := c.inner.GetOrLoad(keyStr, wrapped)
	if err != nil {
		return zero, err
	}

	value, ok := result.(V)
	if !ok {
		return zero, NewErrInternal("GetOrLoad type assertion for key "+keyStr, nil)
	}

	return value, nil
}

// GetOrLoadContext is the generic version of Cache.GetOrLoadContext.
// Like GetOrLoad but respects context cancellation and timeout while
// waiting on another goroutine's in-flight load for the same key.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//	value, err := cache.GetOrLoadContext(ctx, 42, func(ctx context.Context) (string, error) {
//	    return fetchFromDBWithContext(ctx, 42)
//	})
func (c *GenericCache[K, V]) GetOrLoadContext(ctx context.Context, key K, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	keyStr := keyToString(key)

	var wrapped func(context.Context) (interface{}, error)
	if loader != nil {
		wrapped = func(ctx context.Context) (interface{}, error) { return loader(ctx) }
	}

	result, err := c.inner.GetOrLoadContext(ctx, keyStr, wrapped)
	if err != nil {
		return zero, err
	}

	value, ok := result.(V)
	if !ok {
		return zero, NewErrInternal("GetOrLoadContext type assertion for key "+keyStr, nil)
	}

	return value, nil
}
