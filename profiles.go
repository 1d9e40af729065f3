// profiles.go: named configuration presets for common workload shapes
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

import "time"

// Profile names a preset workload descriptor. The builder applies a
// profile's tuning values only to fields the caller left at the zero value.
type Profile string

const (
	ProfileDefault          Profile = "DEFAULT"
	ProfileReadHeavy        Profile = "READ_HEAVY"
	ProfileWriteHeavy       Profile = "WRITE_HEAVY"
	ProfileMemoryEfficient  Profile = "MEMORY_EFFICIENT"
	ProfileHighPerformance  Profile = "HIGH_PERFORMANCE"
	ProfileSessionCache     Profile = "SESSION_CACHE"
	ProfileAPICache         Profile = "API_CACHE"
	ProfileComputeCache     Profile = "COMPUTE_CACHE"

	// Advanced/optional profiles, implemented here as tuning presets only —
	// none of them bring additional infrastructure (no ML scoring engine, no
	// zero-copy allocator, no distributed coordinator); see DESIGN.md.
	ProfileMLOptimized       Profile = "ML_OPTIMIZED"
	ProfileZeroCopy          Profile = "ZERO_COPY"
	ProfileHardwareOptimized Profile = "HARDWARE_OPTIMIZED"
	ProfileDistributed       Profile = "DISTRIBUTED"
)

// profileDefaults describes the (eviction-policy, initial-capacity,
// concurrency, default sizes, TTLs) tuple a profile maps to.
type profileDefaults struct {
	strategy          EvictionStrategy
	maxSize           int
	stripes           int
	windowRatio       float64
	expireAfterWrite  time.Duration
	expireAfterAccess time.Duration
	refreshAfterWrite time.Duration
}

// profileRegistry is the only process-wide state in the package: an
// immutable table built once at init time. Runtime registration of
// additional profiles goes through RegisterProfile, which copies-on-write
// so concurrent readers of the table are never affected mid-lookup.
var profileRegistry = map[Profile]profileDefaults{
	ProfileDefault: {
		strategy: StrategyWTinyLFU, maxSize: DefaultMaxSize, stripes: DefaultStripes,
		windowRatio: DefaultWindowRatio,
	},
	ProfileReadHeavy: {
		strategy: StrategyWTinyLFU, maxSize: 50_000, stripes: 32,
		windowRatio: 0.01, expireAfterAccess: 30 * time.Minute,
	},
	ProfileWriteHeavy: {
		strategy: StrategyLRU, maxSize: 20_000, stripes: 64,
		windowRatio: DefaultWindowRatio,
	},
	ProfileMemoryEfficient: {
		strategy: StrategyLFU, maxSize: 2_000, stripes: 4,
		windowRatio: DefaultWindowRatio,
	},
	ProfileHighPerformance: {
		strategy: StrategyWTinyLFU, maxSize: 100_000, stripes: 64,
		windowRatio: 0.01,
	},
	ProfileSessionCache: {
		strategy: StrategyLRU, maxSize: 100_000, stripes: 32,
		windowRatio:       DefaultWindowRatio,
		expireAfterAccess: 30 * time.Minute,
	},
	ProfileAPICache: {
		strategy: StrategyWTinyLFU, maxSize: 10_000, stripes: 16,
		windowRatio:      0.01,
		expireAfterWrite: 5 * time.Minute,
		refreshAfterWrite: 4 * time.Minute,
	},
	ProfileComputeCache: {
		strategy: StrategyWTinyLFU, maxSize: 5_000, stripes: 16,
		windowRatio:      0.01,
		expireAfterWrite: time.Hour,
	},
	ProfileMLOptimized: {
		strategy: StrategyWTinyLFU, maxSize: 50_000, stripes: 32,
		windowRatio: 0.02,
	},
	ProfileZeroCopy: {
		strategy: StrategyLRU, maxSize: 10_000, stripes: 16,
		windowRatio: DefaultWindowRatio,
	},
	ProfileHardwareOptimized: {
		strategy: StrategyWTinyLFU, maxSize: 100_000, stripes: 128,
		windowRatio: DefaultWindowRatio,
	},
	ProfileDistributed: {
		strategy: StrategyWTinyLFU, maxSize: 25_000, stripes: 32,
		windowRatio:      DefaultWindowRatio,
		expireAfterWrite: 10 * time.Minute,
	},
}

// RegisterProfile adds or overrides a profile in the process-wide registry.
// Intended for applications that define their own named presets; the core
// package never calls this itself.
func RegisterProfile(name Profile, strategy EvictionStrategy, maxSize, stripes int, windowRatio float64, expireAfterWrite, expireAfterAccess, refreshAfterWrite time.Duration) {
	next := make(map[Profile]profileDefaults, len(profileRegistry)+1)
	for k, v := range profileRegistry {
		next[k] = v
	}
	next[name] = profileDefaults{
		strategy: strategy, maxSize: maxSize, stripes: stripes, windowRatio: windowRatio,
		expireAfterWrite: expireAfterWrite, expireAfterAccess: expireAfterAccess,
		refreshAfterWrite: refreshAfterWrite,
	}
	profileRegistry = next
}

func lookupProfile(name Profile) (profileDefaults, bool) {
	d, ok := profileRegistry[name]
	return d, ok
}
