// Package keystone provides a high-performance, thread-safe, in-process
// cache implementing the W-TinyLFU (Window-TinyLFU) admission and eviction
// algorithm, alongside simpler LRU, LFU, and FIFO strategies.
//
// # Overview
//
// keystone combines a small LRU admission window with a frequency-guarded
// segmented-LRU main region (protected + probationary), using a Count-Min
// sketch with a doorkeeper to decide whether a freshly-evicted window
// candidate deserves to displace a cold entry in the main region. This
// gives near-optimal hit ratios on skewed access patterns without the
// pathological one-hit-wonder problem of plain LRU.
//
// # Quick start
//
//	cache, err := keystone.NewBuilder().
//	    WithProfile(keystone.ProfileAPICache).
//	    WithMaxSize(10_000).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cache.Shutdown()
//
//	cache.Put("user:123", user)
//	if value, found := cache.Get("user:123"); found {
//	    fmt.Printf("User: %+v\n", value)
//	}
//
// # Cache stampede prevention
//
// GetOrLoad deduplicates concurrent loads for the same key via a
// singleflight pattern: N goroutines calling GetOrLoad for a missing key
// invoke the loader exactly once.
//
//	user, err := cache.GetOrLoad("user:123", func() (interface{}, error) {
//	    return fetchUserFromDB(123)
//	})
//
// GetOrLoadContext additionally honors ctx cancellation while waiting on
// another goroutine's in-flight load.
//
// # Type-safe API
//
// GenericCache[K, V] wraps Cache with compile-time type checking:
//
//	cache := keystone.NewGenericCache[string, User](keystone.Config{MaxSize: 10_000})
//	cache.Put("user:123", User{ID: 123})
//	user, found := cache.Get("user:123")
//
// # Profiles
//
// Named presets (ProfileReadHeavy, ProfileWriteHeavy, ProfileSessionCache,
// ProfileAPICache, ...) set sensible defaults for common workload shapes;
// Builder only fills fields the caller left unset, so any explicit
// With* call overrides the profile.
//
// # Observability
//
// Stats() returns atomic counters (hits, misses, evictions, load
// success/failure) gated by Config.RecordStats. For percentile latencies
// and multi-backend export, see the keystone/otel subpackage, which
// implements MetricsCollector on top of OpenTelemetry as a separate module
// so the core package carries no OTEL dependency.
//
// Listener implementations receive OnPut/OnRemove/OnEvict/OnExpire/OnLoad/
// OnLoadError/OnClear callbacks; a panicking listener is recovered and
// logged, never corrupting cache state or blocking other listeners.
//
// # Configuration
//
// Config exposes MaxSize xor MaxWeight (the latter requiring a Weigher),
// ExpireAfterWrite/ExpireAfterAccess/RefreshAfterWrite, a Loader xor
// AsyncLoader, Strategy (StrategyWTinyLFU, StrategyLRU, StrategyLFU,
// StrategyFIFO), and the sketch/stripe tuning knobs. Validate applies
// defaults and rejects mutually-exclusive combinations with a typed error.
//
// HotConfig watches a config file via github.com/agilira/argus and reports
// parsed changes through OnReload; it does not apply them to a running
// cache.
//
// # Errors
//
// Errors carry a stable code (see errors.go) via github.com/agilira/go-errors,
// inspectable with GetErrorCode, IsEmptyKey, IsCacheShutdown, IsConfigError,
// IsLoaderError, and IsRetryable.
package keystone
