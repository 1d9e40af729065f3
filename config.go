// config.go: configuration for keystone
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

import (
	"context"
	"time"

	"github.com/agilira/go-timecache"
)

// EvictionStrategy selects which eviction policy backs the cache.
type EvictionStrategy int

const (
	// StrategyWTinyLFU is the default: an admission window plus a
	// frequency-guarded segmented-LRU main region.
	StrategyWTinyLFU EvictionStrategy = iota
	// StrategyLRU evicts the least-recently-accessed key.
	StrategyLRU
	// StrategyLFU evicts the least-frequently-accessed key via O(1) buckets.
	StrategyLFU
	// StrategyFIFO evicts in strict insertion order.
	StrategyFIFO
)

// SketchVariant selects the frequency-sketch implementation backing
// W-TinyLFU admission decisions.
type SketchVariant int

const (
	// SketchOptimized is the full doorkeeper + Count-Min sketch (default).
	SketchOptimized SketchVariant = iota
	// SketchBasic builds the same doorkeeper + Count-Min sketch as
	// SketchOptimized; no doorkeeper-free sketch exists.
	SketchBasic
	// SketchNone does not disable the sketch: W-TinyLFU still builds the
	// doorkeeper + Count-Min sketch and uses it for admission.
	SketchNone
)

// Weigher computes the weight of a key/value pair, used only when MaxWeight
// is configured. Weights are computed once at insertion and never
// recomputed.
type Weigher func(key string, value interface{}) int64

// Loader loads a value for a missing key.
type Loader func(key string) (interface{}, error)

// AsyncLoader loads a value for a missing key, honoring ctx cancellation.
type AsyncLoader func(ctx context.Context, key string) (interface{}, error)

// Config holds configuration parameters for the cache.
type Config struct {
	// MaxSize is the maximum number of entries the cache can hold.
	// Mutually exclusive with MaxWeight. Default: DefaultMaxSize.
	MaxSize int

	// MaxWeight is the maximum aggregate weight the cache can hold.
	// Requires Weigher. Mutually exclusive with MaxSize.
	MaxWeight int64

	// Weigher computes per-entry weight. Required if MaxWeight is set.
	Weigher Weigher

	// ExpireAfterWrite is how long an entry lives after insertion, 0 = never.
	ExpireAfterWrite time.Duration

	// ExpireAfterAccess is how long an entry lives after its last read, 0 = never.
	ExpireAfterAccess time.Duration

	// RefreshAfterWrite schedules an async reload once an entry reaches this
	// age; the stale value keeps serving reads until the reload completes.
	RefreshAfterWrite time.Duration

	// TTL is a single absolute-deadline convenience knob retained from the
	// teacher's API; equivalent to ExpireAfterWrite when the two finer-grained
	// knobs above are left unset.
	TTL time.Duration

	// NegativeCacheTTL is the time-to-live for caching loader errors.
	// When GetOrLoad fails, the error can be cached to prevent repeated
	// expensive operations that consistently fail. 0 disables negative caching.
	NegativeCacheTTL time.Duration

	// Loader is invoked synchronously on a Get miss (implicit load-through)
	// and for RefreshAfterWrite reloads. GetOrLoad uses the loader passed to it.
	Loader Loader

	// AsyncLoader is mutually exclusive with Loader. No cache operation
	// invokes it: Get and refresh use Loader only, and GetOrLoadContext uses
	// the loader passed to it.
	AsyncLoader AsyncLoader

	// Strategy selects the eviction policy. Default: StrategyWTinyLFU.
	Strategy EvictionStrategy

	// WindowRatio is the ratio of the W-TinyLFU admission window to total
	// capacity. Must be between 0.0 and 1.0. Default: DefaultWindowRatio.
	WindowRatio float64

	// SketchVariant names a frequency-sketch variant; every value yields the
	// same doorkeeper + Count-Min sketch (see SketchBasic and SketchNone).
	SketchVariant SketchVariant

	// CounterBits must be between 1 and 8. Default: DefaultCounterBits. The
	// value is validated and stored only; the frequency sketch always uses
	// 4-bit counters.
	CounterBits int

	// Stripes is the number of store/buffer shards. Default: DefaultStripes.
	Stripes int

	// CleanupInterval is how often the maintenance scheduler sweeps for
	// expired entries. Default: 1s.
	CleanupInterval time.Duration

	// RecordStats gates whether statistics counters are maintained.
	RecordStats bool

	// Listeners receive cache lifecycle events.
	Listeners []Listener

	// Logger is used for debugging and monitoring. Default: NoOpLogger.
	Logger Logger

	// TimeProvider provides monotonic nanoseconds. Default: cached system time.
	TimeProvider TimeProvider

	// MetricsCollector receives per-operation measurements. Default: no-op.
	MetricsCollector MetricsCollector
}

// Validate checks configuration parameters for the mutual exclusions named
// in the spec, applies sensible defaults for anything left at the zero
// value, and returns a typed ConfigurationError on the first violation
// found.
func (c *Config) Validate() error {
	if c.MaxSize > 0 && c.MaxWeight > 0 {
		return NewErrConflictingSettings("MaxSize", "MaxWeight")
	}
	if c.MaxWeight > 0 && c.Weigher == nil {
		return NewErrMissingWeigher(c.MaxWeight)
	}
	if c.MaxWeight < 0 {
		return NewErrInvalidMaxWeight(c.MaxWeight)
	}
	if c.Loader != nil && c.AsyncLoader != nil {
		return NewErrConflictingSettings("Loader", "AsyncLoader")
	}
	if c.ExpireAfterWrite < 0 {
		return NewErrInvalidExpiration("ExpireAfterWrite", c.ExpireAfterWrite)
	}
	if c.ExpireAfterAccess < 0 {
		return NewErrInvalidExpiration("ExpireAfterAccess", c.ExpireAfterAccess)
	}
	if c.RefreshAfterWrite < 0 {
		return NewErrInvalidExpiration("RefreshAfterWrite", c.RefreshAfterWrite)
	}
	if c.TTL < 0 {
		return NewErrInvalidExpiration("TTL", c.TTL)
	}

	if c.MaxSize <= 0 && c.MaxWeight <= 0 {
		c.MaxSize = DefaultMaxSize
	}

	if c.WindowRatio <= 0 || c.WindowRatio >= 1 {
		c.WindowRatio = DefaultWindowRatio
	}

	if c.CounterBits < 1 || c.CounterBits > 8 {
		c.CounterBits = DefaultCounterBits
	}

	if c.Stripes <= 0 {
		c.Stripes = DefaultStripes
	}

	if c.ExpireAfterWrite > 0 && c.CleanupInterval <= 0 {
		c.CleanupInterval = c.ExpireAfterWrite / 10
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = time.Second
	}
	if c.CleanupInterval < 10*time.Millisecond {
		c.CleanupInterval = 10 * time.Millisecond
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults applied.
func DefaultConfig() Config {
	cfg := Config{
		MaxSize:       DefaultMaxSize,
		Strategy:      StrategyWTinyLFU,
		WindowRatio:   DefaultWindowRatio,
		SketchVariant: SketchOptimized,
		CounterBits:   DefaultCounterBits,
		Stripes:       DefaultStripes,
		RecordStats:   true,
	}
	_ = cfg.Validate()
	return cfg
}

// systemTimeProvider is the default time provider using go-timecache.
// This provides far faster time access than time.Now() with zero allocations.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
