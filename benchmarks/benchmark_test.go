package benchmarks

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/keystonecache/keystone"
	ristretto "github.com/dgraph-io/ristretto/v2"
	"github.com/maypok86/otter/v2"
)

// Benchmark configuration
const (
	smallCacheSize  = 1_000
	mediumCacheSize = 10_000
	largeCacheSize  = 100_000

	smallKeySpace  = 100
	mediumKeySpace = 1_000
	largeKeySpace  = 10_000

	writeHeavy = 0.1
	balanced   = 0.5
	readHeavy  = 0.9
	readOnly   = 1.0
)

// =============================================================================
// ZIPF DISTRIBUTION GENERATOR
// =============================================================================

// ZipfGenerator generates keys following a Zipf distribution, simulating
// realistic access patterns where some items are far more popular than others.
type ZipfGenerator struct {
	zipf *rand.Zipf
	max  uint64
}

func NewZipfGenerator(s, v float64, imax uint64) *ZipfGenerator {
	if imax < 1 {
		imax = 1
	}
	if s <= 1.0 {
		s = 1.01
	}
	if v < 1.0 {
		v = 1.0
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	zipf := rand.NewZipf(r, s, v, imax)
	if zipf == nil {
		panic(fmt.Sprintf("failed to create Zipf generator: s=%f, v=%f, imax=%d", s, v, imax))
	}
	return &ZipfGenerator{zipf: zipf, max: imax}
}

func (z *ZipfGenerator) Next() uint64 {
	return z.zipf.Uint64()
}

func (z *ZipfGenerator) NextString() string {
	return strconv.FormatUint(z.Next(), 10)
}

// =============================================================================
// CACHE WRAPPERS FOR UNIFORM INTERFACE
// =============================================================================

// CacheInterface provides a uniform interface for all caches under comparison.
type CacheInterface interface {
	Set(key string, value int) bool
	Get(key string) (int, bool)
	Name() string
	Close()
}

// =============================================================================
// KEYSTONE WRAPPER (Non-Generic API)
// =============================================================================

type KeystoneCache struct {
	cache keystone.Cache
}

func NewKeystoneCache(size int) *KeystoneCache {
	return &KeystoneCache{
		cache: keystone.NewCache(keystone.Config{MaxSize: size}),
	}
}

func (c *KeystoneCache) Set(key string, value int) bool {
	return c.cache.Put(key, value)
}

func (c *KeystoneCache) Get(key string) (int, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

func (c *KeystoneCache) Name() string {
	return "Keystone"
}

func (c *KeystoneCache) Close() {
	c.cache.Shutdown()
}

// =============================================================================
// KEYSTONE GENERIC WRAPPER
// =============================================================================

type KeystoneGenericCache struct {
	cache *keystone.GenericCache[string, int]
}

func NewKeystoneGenericCache(size int) *KeystoneGenericCache {
	return &KeystoneGenericCache{
		cache: keystone.NewGenericCache[string, int](keystone.Config{MaxSize: size}),
	}
}

func (c *KeystoneGenericCache) Set(key string, value int) bool {
	return c.cache.Put(key, value)
}

func (c *KeystoneGenericCache) Get(key string) (int, bool) {
	return c.cache.Get(key)
}

func (c *KeystoneGenericCache) Name() string {
	return "Keystone-Generic"
}

func (c *KeystoneGenericCache) Close() {
	c.cache.Shutdown()
}

// =============================================================================
// OTTER WRAPPER
// =============================================================================

type OtterCache struct {
	cache *otter.Cache[string, int]
}

func NewOtterCache(size int) *OtterCache {
	cache := otter.Must(&otter.Options[string, int]{
		MaximumSize: size,
	})
	return &OtterCache{cache: cache}
}

func (c *OtterCache) Set(key string, value int) bool {
	c.cache.Set(key, value)
	return true
}

func (c *OtterCache) Get(key string) (int, bool) {
	return c.cache.GetIfPresent(key)
}

func (c *OtterCache) Name() string {
	return "Otter"
}

func (c *OtterCache) Close() {
	// Otter v2 Close is handled automatically
}

// =============================================================================
// RISTRETTO WRAPPER
// =============================================================================

type RistrettoCache struct {
	cache *ristretto.Cache[string, int]
}

func NewRistrettoCache(size int) *RistrettoCache {
	cache, err := ristretto.NewCache(&ristretto.Config[string, int]{
		NumCounters: int64(size * 10),
		MaxCost:     int64(size),
		BufferItems: 64,
	})
	if err != nil {
		panic(err)
	}
	return &RistrettoCache{cache: cache}
}

func (c *RistrettoCache) Set(key string, value int) bool {
	return c.cache.Set(key, value, 1)
}

func (c *RistrettoCache) Get(key string) (int, bool) {
	return c.cache.Get(key)
}

func (c *RistrettoCache) Name() string {
	return "Ristretto"
}

func (c *RistrettoCache) Close() {
	c.cache.Close()
}

// =============================================================================
// BENCHMARK HELPERS
// =============================================================================

func warmupCache(c CacheInterface, keySpace int) {
	zipf := NewZipfGenerator(1.0, 1.0, uint64(keySpace-1))
	for i := 0; i < keySpace/2; i++ {
		key := zipf.NextString()
		c.Set(key, i)
	}
}

func runMixedWorkload(b *testing.B, c CacheInterface, keySpace int, readRatio float64, parallel bool) {
	warmupCache(c, keySpace)

	b.ResetTimer()
	b.ReportAllocs()

	if parallel {
		b.RunParallel(func(pb *testing.PB) {
			zipf := NewZipfGenerator(1.0, 1.0, uint64(keySpace-1))
			i := 0
			for pb.Next() {
				key := zipf.NextString()
				if rand.Float64() < readRatio {
					c.Get(key)
				} else {
					c.Set(key, i)
					i++
				}
			}
		})
	} else {
		zipf := NewZipfGenerator(1.0, 1.0, uint64(keySpace-1))
		for i := 0; i < b.N; i++ {
			key := zipf.NextString()
			if rand.Float64() < readRatio {
				c.Get(key)
			} else {
				c.Set(key, i)
			}
		}
	}
}

// =============================================================================
// SINGLE-THREADED BENCHMARKS
// =============================================================================

func BenchmarkKeystone_Set_SingleThread(b *testing.B) {
	benchmarkSet(b, NewKeystoneCache(mediumCacheSize), mediumKeySpace, false)
}

func BenchmarkKeystoneGeneric_Set_SingleThread(b *testing.B) {
	benchmarkSet(b, NewKeystoneGenericCache(mediumCacheSize), mediumKeySpace, false)
}

func BenchmarkOtter_Set_SingleThread(b *testing.B) {
	benchmarkSet(b, NewOtterCache(mediumCacheSize), mediumKeySpace, false)
}

func BenchmarkRistretto_Set_SingleThread(b *testing.B) {
	benchmarkSet(b, NewRistrettoCache(mediumCacheSize), mediumKeySpace, false)
}

func benchmarkSet(b *testing.B, c CacheInterface, keySpace int, parallel bool) {
	defer c.Close()

	b.ResetTimer()
	b.ReportAllocs()

	if parallel {
		b.RunParallel(func(pb *testing.PB) {
			zipf := NewZipfGenerator(1.0, 1.0, uint64(keySpace-1))
			i := 0
			for pb.Next() {
				key := zipf.NextString()
				c.Set(key, i)
				i++
			}
		})
	} else {
		zipf := NewZipfGenerator(1.0, 1.0, uint64(keySpace-1))
		for i := 0; i < b.N; i++ {
			key := zipf.NextString()
			c.Set(key, i)
		}
	}
}

// =============================================================================
// GET BENCHMARKS
// =============================================================================

func BenchmarkKeystone_Get_SingleThread(b *testing.B) {
	benchmarkGet(b, NewKeystoneCache(mediumCacheSize), mediumKeySpace, false)
}

func BenchmarkKeystoneGeneric_Get_SingleThread(b *testing.B) {
	benchmarkGet(b, NewKeystoneGenericCache(mediumCacheSize), mediumKeySpace, false)
}

func BenchmarkOtter_Get_SingleThread(b *testing.B) {
	benchmarkGet(b, NewOtterCache(mediumCacheSize), mediumKeySpace, false)
}

func BenchmarkRistretto_Get_SingleThread(b *testing.B) {
	benchmarkGet(b, NewRistrettoCache(mediumCacheSize), mediumKeySpace, false)
}

func benchmarkGet(b *testing.B, c CacheInterface, keySpace int, parallel bool) {
	defer c.Close()

	warmupCache(c, keySpace)

	b.ResetTimer()
	b.ReportAllocs()

	if parallel {
		b.RunParallel(func(pb *testing.PB) {
			zipf := NewZipfGenerator(1.0, 1.0, uint64(keySpace-1))
			for pb.Next() {
				key := zipf.NextString()
				c.Get(key)
			}
		})
	} else {
		zipf := NewZipfGenerator(1.0, 1.0, uint64(keySpace-1))
		for i := 0; i < b.N; i++ {
			key := zipf.NextString()
			c.Get(key)
		}
	}
}

// =============================================================================
// PARALLEL BENCHMARKS - High Contention
// =============================================================================

func BenchmarkKeystone_Set_Parallel(b *testing.B) {
	benchmarkSet(b, NewKeystoneCache(mediumCacheSize), mediumKeySpace, true)
}

func BenchmarkKeystoneGeneric_Set_Parallel(b *testing.B) {
	benchmarkSet(b, NewKeystoneGenericCache(mediumCacheSize), mediumKeySpace, true)
}

func BenchmarkOtter_Set_Parallel(b *testing.B) {
	benchmarkSet(b, NewOtterCache(mediumCacheSize), mediumKeySpace, true)
}

func BenchmarkRistretto_Set_Parallel(b *testing.B) {
	benchmarkSet(b, NewRistrettoCache(mediumCacheSize), mediumKeySpace, true)
}

func BenchmarkKeystone_Get_Parallel(b *testing.B) {
	benchmarkGet(b, NewKeystoneCache(mediumCacheSize), mediumKeySpace, true)
}

func BenchmarkKeystoneGeneric_Get_Parallel(b *testing.B) {
	benchmarkGet(b, NewKeystoneGenericCache(mediumCacheSize), mediumKeySpace, true)
}

func BenchmarkOtter_Get_Parallel(b *testing.B) {
	benchmarkGet(b, NewOtterCache(mediumCacheSize), mediumKeySpace, true)
}

func BenchmarkRistretto_Get_Parallel(b *testing.B) {
	benchmarkGet(b, NewRistrettoCache(mediumCacheSize), mediumKeySpace, true)
}

// =============================================================================
// MIXED WORKLOAD BENCHMARKS - Realistic Scenarios
// =============================================================================

func BenchmarkKeystone_WriteHeavy(b *testing.B) {
	c := NewKeystoneCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, writeHeavy, true)
}

func BenchmarkKeystoneGeneric_WriteHeavy(b *testing.B) {
	c := NewKeystoneGenericCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, writeHeavy, true)
}

func BenchmarkOtter_WriteHeavy(b *testing.B) {
	c := NewOtterCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, writeHeavy, true)
}

func BenchmarkRistretto_WriteHeavy(b *testing.B) {
	c := NewRistrettoCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, writeHeavy, true)
}

func BenchmarkKeystone_Balanced(b *testing.B) {
	c := NewKeystoneCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, balanced, true)
}

func BenchmarkKeystoneGeneric_Balanced(b *testing.B) {
	c := NewKeystoneGenericCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, balanced, true)
}

func BenchmarkOtter_Balanced(b *testing.B) {
	c := NewOtterCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, balanced, true)
}

func BenchmarkRistretto_Balanced(b *testing.B) {
	c := NewRistrettoCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, balanced, true)
}

func BenchmarkKeystone_ReadHeavy(b *testing.B) {
	c := NewKeystoneCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, readHeavy, true)
}

func BenchmarkKeystoneGeneric_ReadHeavy(b *testing.B) {
	c := NewKeystoneGenericCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, readHeavy, true)
}

func BenchmarkOtter_ReadHeavy(b *testing.B) {
	c := NewOtterCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, readHeavy, true)
}

func BenchmarkRistretto_ReadHeavy(b *testing.B) {
	c := NewRistrettoCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, readHeavy, true)
}

func BenchmarkKeystone_ReadOnly(b *testing.B) {
	c := NewKeystoneCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, readOnly, true)
}

func BenchmarkKeystoneGeneric_ReadOnly(b *testing.B) {
	c := NewKeystoneGenericCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, readOnly, true)
}

func BenchmarkOtter_ReadOnly(b *testing.B) {
	c := NewOtterCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, readOnly, true)
}

func BenchmarkRistretto_ReadOnly(b *testing.B) {
	c := NewRistrettoCache(mediumCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, mediumKeySpace, readOnly, true)
}

// =============================================================================
// CACHE SIZE VARIANTS
// =============================================================================

func BenchmarkKeystone_Small_Mixed(b *testing.B) {
	c := NewKeystoneCache(smallCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, smallKeySpace, balanced, true)
}

func BenchmarkOtter_Small_Mixed(b *testing.B) {
	c := NewOtterCache(smallCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, smallKeySpace, balanced, true)
}

func BenchmarkRistretto_Small_Mixed(b *testing.B) {
	c := NewRistrettoCache(smallCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, smallKeySpace, balanced, true)
}

func BenchmarkKeystone_Large_Mixed(b *testing.B) {
	c := NewKeystoneCache(largeCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, largeKeySpace, balanced, true)
}

func BenchmarkOtter_Large_Mixed(b *testing.B) {
	c := NewOtterCache(largeCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, largeKeySpace, balanced, true)
}

func BenchmarkRistretto_Large_Mixed(b *testing.B) {
	c := NewRistrettoCache(largeCacheSize)
	defer c.Close()
	runMixedWorkload(b, c, largeKeySpace, balanced, true)
}

// =============================================================================
// HIT RATIO TEST (Not a benchmark, but useful for comparison)
// =============================================================================

func TestHitRatio(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping hit ratio test in short mode")
	}

	caches := []CacheInterface{
		NewKeystoneCache(mediumCacheSize),
		NewOtterCache(mediumCacheSize),
		NewRistrettoCache(mediumCacheSize),
	}

	for _, c := range caches {
		testHitRatio(t, c, mediumKeySpace)
		c.Close()
	}
}

func testHitRatio(t *testing.T, c CacheInterface, keySpace int) {
	zipf := NewZipfGenerator(1.0, 1.0, uint64(keySpace-1))

	for i := 0; i < keySpace; i++ {
		key := zipf.NextString()
		c.Set(key, i)
	}

	hits := 0
	misses := 0
	requests := 100_000

	for i := 0; i < requests; i++ {
		key := zipf.NextString()
		if _, ok := c.Get(key); ok {
			hits++
		} else {
			misses++
		}
	}

	hitRatio := float64(hits) / float64(requests) * 100
	t.Logf("%s Hit Ratio: %.2f%% (hits: %d, misses: %d)",
		c.Name(), hitRatio, hits, misses)
}
