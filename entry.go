// entry.go: cache entry data model
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

import (
	"sync/atomic"
	"time"
)

// noExpiration is the sentinel expireAt value meaning "entry never expires".
const noExpiration int64 = 0

// entry is a single cache record. The value and weight are fixed at
// insertion; only lastAccessNanos and accessCount mutate afterward, both via
// atomic operations, so a read never needs to lock the owning stripe.
type entry struct {
	key   string
	value interface{}

	weight int64

	// createdAtNanos is the monotonic creation timestamp used for
	// expire-after-write math.
	createdAtNanos int64

	// createdAt is a wall-clock timestamp kept only for diagnostics; it is
	// never read for expiration decisions.
	createdAt time.Time

	// lastAccessNanos is updated on every read for expire-after-access math.
	lastAccessNanos int64

	// accessCount is incremented on every read and exposed for diagnostics;
	// no eviction policy reads it.
	accessCount int64

	// expireAtNanos is the absolute monotonic deadline, or noExpiration.
	expireAtNanos int64
}

// newEntry builds an entry for key/value with the given weight, stamped at
// nowNanos, with expireAtNanos computed by the caller (0 for "no expiration").
func newEntry(key string, value interface{}, weight int64, nowNanos int64, expireAtNanos int64) *entry {
	return &entry{
		key:             key,
		value:           value,
		weight:          weight,
		createdAtNanos:  nowNanos,
		createdAt:       time.Now(),
		lastAccessNanos: nowNanos,
		expireAtNanos:   expireAtNanos,
	}
}

// touch records a read access at nowNanos.
func (e *entry) touch(nowNanos int64) {
	atomic.StoreInt64(&e.lastAccessNanos, nowNanos)
	atomic.AddInt64(&e.accessCount, 1)
}

func (e *entry) lastAccess() int64 {
	return atomic.LoadInt64(&e.lastAccessNanos)
}

func (e *entry) accesses() int64 {
	return atomic.LoadInt64(&e.accessCount)
}

// expiredByWrite reports whether createdAtNanos is more than ttl in the past.
func (e *entry) expiredByWrite(nowNanos int64, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return nowNanos-e.createdAtNanos >= int64(ttl)
}

// expiredByAccess reports whether lastAccessNanos is more than ttl in the past.
func (e *entry) expiredByAccess(nowNanos int64, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return nowNanos-e.lastAccess() >= int64(ttl)
}

// expiredByDeadline reports whether the absolute expireAtNanos deadline (as
// used by the single-TTL Config.TTL knob) has passed.
func (e *entry) expiredByDeadline(nowNanos int64) bool {
	if e.expireAtNanos == noExpiration {
		return false
	}
	return nowNanos >= e.expireAtNanos
}

// dueForRefresh reports whether the entry's age exceeds refreshAfter.
func (e *entry) dueForRefresh(nowNanos int64, refreshAfter time.Duration) bool {
	if refreshAfter <= 0 {
		return false
	}
	return nowNanos-e.createdAtNanos >= int64(refreshAfter)
}
