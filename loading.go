// loading.go: GetOrLoad implementation with singleflight pattern
//
// This file implements GetOrLoad and GetOrLoadContext, providing a
// cache-aside pattern with automatic deduplication of concurrent loads for
// the same key.
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0
package keystone

import (
	"context"
	"sync"
	"sync/atomic"
)

// inflightCall represents an in-flight loader call with its waitgroup and
// result. atomic.Value cannot store nil directly, so results are boxed in
// wrapper types. done is closed when the loader completes, letting every
// waiter unblock via select without a goroutine per waiter.
type inflightCall struct {
	wg   sync.WaitGroup
	val  atomic.Value  // stores *resultWrapper
	err  atomic.Value  // stores *errorWrapper
	done chan struct{} // closed when loader completes
}

type resultWrapper struct {
	value interface{}
}

type errorWrapper struct {
	err error
}

// GetOrLoad returns the cached value for key, or loads it via loader on a
// miss. Concurrent misses for the same key are coalesced into a single
// loader invocation (singleflight). The loaded value is cached subject to
// size/weight checks; loader errors are never cached unless
// Config.NegativeCacheTTL is set.
func (c *cacheImpl) GetOrLoad(key string, loader func() (interface{}, error)) (interface{}, error) {
	if key == "" {
		return nil, NewErrEmptyKey("GetOrLoad")
	}
	if c.isShutdown() {
		return nil, NewErrCacheShutdown("GetOrLoad")
	}

	if value, found := c.Get(key); found {
		return value, nil
	}

	if negErr, found := c.checkNegativeCache(key); found {
		return nil, negErr
	}

	if loader == nil {
		return nil, NewErrInvalidLoader(key)
	}

	return c.singleflightLoad(key, loader)
}

// singleflightLoad runs loader for key with at-most-one-in-flight coalescing,
// caching the result on success and negative-caching the error when
// NegativeCacheTTL is configured. Callers must have already checked the
// cache and negative cache for key.
func (c *cacheImpl) singleflightLoad(key string, loader func() (interface{}, error)) (interface{}, error) {
	callKey := "load:" + key

	newFlight := &inflightCall{done: make(chan struct{})}
	newFlight.wg.Add(1)

	actual, loaded := c.inflight.LoadOrStore(callKey, newFlight)
	flight := actual.(*inflightCall)

	if loaded {
		flight.wg.Wait()
		return unwrapFlight(flight)
	}

	defer func() {
		close(flight.done)
		flight.wg.Done()
		c.inflight.Delete(callKey)
	}()

	start := c.now()
	var loaderVal interface{}
	var loaderErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				loaderErr = NewErrPanicRecovered("GetOrLoad:"+key, r)
			}
		}()
		loaderVal, loaderErr = loader()
	}()

	c.finishLoad(key, loaderVal, loaderErr, c.now()-start)

	flight.val.Store(&resultWrapper{value: loaderVal})
	flight.err.Store(&errorWrapper{err: loaderErr})

	return loaderVal, loaderErr
}

// GetOrLoadContext is like GetOrLoad but honors ctx cancellation while
// waiting for an in-flight load from another goroutine; it does not cancel
// a load it started itself, since other waiters may depend on the result.
func (c *cacheImpl) GetOrLoadContext(ctx context.Context, key string, loader func(context.Context) (interface{}, error)) (interface{}, error) {
	if key == "" {
		return nil, NewErrEmptyKey("GetOrLoadContext")
	}
	if c.isShutdown() {
		return nil, NewErrCacheShutdown("GetOrLoadContext")
	}

	if value, found := c.Get(key); found {
		return value, nil
	}

	if negErr, found := c.checkNegativeCache(key); found {
		return nil, negErr
	}

	if loader == nil {
		return nil, NewErrInvalidLoader(key)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	callKey := "load:" + key

	newFlight := &inflightCall{done: make(chan struct{})}
	newFlight.wg.Add(1)

	actual, loaded := c.inflight.LoadOrStore(callKey, newFlight)
	flight := actual.(*inflightCall)

	if loaded {
		select {
		case <-flight.done:
			return unwrapFlight(flight)
		case <-ctx.Done():
			return nil, NewErrLoaderCancelled(key)
		}
	}

	defer func() {
		close(flight.done)
		flight.wg.Done()
		c.inflight.Delete(callKey)
	}()

	start := c.now()
	var loaderVal interface{}
	var loaderErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				loaderErr = NewErrPanicRecovered("GetOrLoadContext:"+key, r)
			}
		}()
		loaderVal, loaderErr = loader(ctx)
	}()

	c.finishLoad(key, loaderVal, loaderErr, c.now()-start)

	flight.val.Store(&resultWrapper{value: loaderVal})
	flight.err.Store(&errorWrapper{err: loaderErr})

	return loaderVal, loaderErr
}

func unwrapFlight(flight *inflightCall) (interface{}, error) {
	valWrapper, _ := flight.val.Load().(*resultWrapper)
	errWrapper, _ := flight.err.Load().(*errorWrapper)
	if valWrapper != nil && errWrapper != nil {
		return valWrapper.value, errWrapper.err
	}
	return nil, nil
}

// finishLoad records statistics, dispatches the load/load-error listener
// events, caches the value on success, or negatively caches the error when
// NegativeCacheTTL is configured.
func (c *cacheImpl) finishLoad(key string, value interface{}, err error, latencyNanos int64) {
	if err == nil {
		c.stats.recordLoadSuccess(latencyNanos)
		c.Put(key, value)
		c.dispatchLoad(key, value)
		c.cfg.MetricsCollector.RecordLoad(latencyNanos, true)
		return
	}

	c.stats.recordLoadFailure()
	c.dispatchLoadError(key, err)
	c.cfg.MetricsCollector.RecordLoad(latencyNanos, false)

	if c.cfg.NegativeCacheTTL > 0 {
		negKey := "neg:" + key
		c.negativeCache.Store(negKey, &negativeEntry{
			err:           err,
			expireAtNanos: c.now() + int64(c.cfg.NegativeCacheTTL),
		})
	}
}

func (c *cacheImpl) checkNegativeCache(key string) (error, bool) {
	if c.cfg.NegativeCacheTTL <= 0 {
		return nil, false
	}
	negKey := "neg:" + key
	v, found := c.negativeCache.Load(negKey)
	if !found {
		return nil, false
	}
	neg := v.(*negativeEntry)
	if c.now() > neg.expireAtNanos {
		c.negativeCache.Delete(negKey)
		return nil, false
	}
	return neg.err, true
}
