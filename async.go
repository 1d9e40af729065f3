// async.go: asynchronous variants of the core cache operations
//
// Each Async method schedules its synchronous counterpart on a new
// goroutine and returns immediately with a buffered, single-value result
// channel, mirroring the task-scheduler future pattern (submit now, receive
// later) rather than blocking the caller. The channel is buffered so a
// caller that drops it without receiving never leaks the goroutine.
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0
package keystone

// GetAsync schedules a Get for key and returns a channel carrying its result.
func (c *cacheImpl) GetAsync(key string) <-chan GetResult {
	ch := make(chan GetResult, 1)
	go func() {
		value, found := c.Get(key)
		ch <- GetResult{Value: value, Found: found}
	}()
	return ch
}

// PutAsync schedules a Put for key/value and returns a channel carrying
// whether it was accepted.
func (c *cacheImpl) PutAsync(key string, value interface{}) <-chan PutResult {
	ch := make(chan PutResult, 1)
	go func() {
		ch <- PutResult{Accepted: c.Put(key, value)}
	}()
	return ch
}

// RemoveAsync schedules a Remove for key and returns a channel carrying its
// result.
func (c *cacheImpl) RemoveAsync(key string) <-chan RemoveResult {
	ch := make(chan RemoveResult, 1)
	go func() {
		value, found := c.Remove(key)
		ch <- RemoveResult{Value: value, Found: found}
	}()
	return ch
}

// ClearAsync schedules a Clear and returns a channel that receives a single
// value once it completes.
func (c *cacheImpl) ClearAsync() <-chan struct{} {
	ch := make(chan struct{}, 1)
	go func() {
		c.Clear()
		ch <- struct{}{}
	}()
	return ch
}
