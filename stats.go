// stats.go: atomic statistics counters
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

import "sync/atomic"

// statistics holds the six atomic counters named in the spec's statistics
// model, plus the put/remove counters the facade also exposes via
// Snapshot. All increments are skipped when recordStats is false so a
// caller who does not care pays nothing beyond the branch.
type statistics struct {
	recordStats int32 // 0/1, set once at construction

	hits        int64
	misses      int64
	puts        int64
	removals    int64
	evictions   int64
	expirations int64
	loadSuccess int64
	loadFailure int64
	loadNanos   int64
}

func newStatistics(recordStats bool) *statistics {
	s := &statistics{}
	if recordStats {
		atomic.StoreInt32(&s.recordStats, 1)
	}
	return s
}

func (s *statistics) enabled() bool {
	return atomic.LoadInt32(&s.recordStats) == 1
}

func (s *statistics) recordHit() {
	if s.enabled() {
		atomic.AddInt64(&s.hits, 1)
	}
}

func (s *statistics) recordMiss() {
	if s.enabled() {
		atomic.AddInt64(&s.misses, 1)
	}
}

func (s *statistics) recordPut() {
	if s.enabled() {
		atomic.AddInt64(&s.puts, 1)
	}
}

func (s *statistics) recordRemoval() {
	if s.enabled() {
		atomic.AddInt64(&s.removals, 1)
	}
}

func (s *statistics) recordEviction() {
	if s.enabled() {
		atomic.AddInt64(&s.evictions, 1)
	}
}

func (s *statistics) recordExpiration() {
	if s.enabled() {
		atomic.AddInt64(&s.expirations, 1)
	}
}

func (s *statistics) recordLoadSuccess(nanos int64) {
	if s.enabled() {
		atomic.AddInt64(&s.loadSuccess, 1)
		atomic.AddInt64(&s.loadNanos, nanos)
	}
}

func (s *statistics) recordLoadFailure() {
	if s.enabled() {
		atomic.AddInt64(&s.loadFailure, 1)
	}
}

func (s *statistics) snapshot() Snapshot {
	return Snapshot{
		Hits:        uint64(atomic.LoadInt64(&s.hits)),        // #nosec G115 - counters are monotonically non-negative
		Misses:      uint64(atomic.LoadInt64(&s.misses)),      // #nosec G115
		Puts:        uint64(atomic.LoadInt64(&s.puts)),        // #nosec G115
		Removals:    uint64(atomic.LoadInt64(&s.removals)),    // #nosec G115
		Evictions:   uint64(atomic.LoadInt64(&s.evictions)),   // #nosec G115
		Expirations: uint64(atomic.LoadInt64(&s.expirations)), // #nosec G115
		LoadSuccess: uint64(atomic.LoadInt64(&s.loadSuccess)), // #nosec G115
		LoadFailure: uint64(atomic.LoadInt64(&s.loadFailure)), // #nosec G115
		LoadNanos:   uint64(atomic.LoadInt64(&s.loadNanos)),   // #nosec G115
	}
}

func (s *statistics) reset() {
	atomic.StoreInt64(&s.hits, 0)
	atomic.StoreInt64(&s.misses, 0)
	atomic.StoreInt64(&s.puts, 0)
	atomic.StoreInt64(&s.removals, 0)
	atomic.StoreInt64(&s.evictions, 0)
	atomic.StoreInt64(&s.expirations, 0)
	atomic.StoreInt64(&s.loadSuccess, 0)
	atomic.StoreInt64(&s.loadFailure, 0)
	atomic.StoreInt64(&s.loadNanos, 0)
}
