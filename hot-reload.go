// hot-reload.go: dynamic configuration with Argus integration
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotConfig watches a configuration file with Argus and tracks the latest
// parsed Config, notifying OnReload when a change is detected. It does not
// apply any change to a running Cache; the recognized keys are max_size, ttl,
// window_ratio and counter_bits, and MaxWeight is not read from the file.
type HotConfig struct {
	cache   Cache
	watcher *argus.Watcher
	mu      sync.RWMutex
	config  Config

	// OnReload is called after configuration is successfully reparsed.
	// Must be fast and non-blocking.
	OnReload func(oldConfig, newConfig Config)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats (via Argus).
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after configuration is successfully reloaded.
	OnReload func(oldConfig, newConfig Config)

	// Logger for hot reload operations. If nil, uses NoOpLogger.
	Logger Logger
}

// NewHotConfig creates a hot-reloadable configuration view for cache and
// starts watching the file at opts.ConfigPath immediately.
//
// Supported configuration keys under a "cache" section:
//   - max_size (int)
//   - ttl (duration string, e.g. "1h")
//   - window_ratio (float, 0..1 exclusive)
//   - counter_bits (int, 1..8)
func NewHotConfig(cache Cache, opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	hc := &HotConfig{
		cache:    cache,
		OnReload: opts.OnReload,
		config:   cache.Config(),
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
func (hc *HotConfig) Start() error {
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// GetConfig returns the most recently parsed configuration.
func (hc *HotConfig) GetConfig() Config {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.config
}

func (hc *HotConfig) handleConfigChange(configData map[string]interface{}) {
	hc.mu.Lock()
	oldConfig := hc.config
	newConfig := hc.parseConfig(oldConfig, configData)
	hc.config = newConfig
	hc.mu.Unlock()

	if hc.OnReload != nil {
		hc.OnReload(oldConfig, newConfig)
	}
}

func parsePositiveInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		if v > 0 {
			return v, true
		}
	case float64:
		if v > 0 {
			return int(v), true
		}
	}
	return 0, false
}

func parseIntInRange(value interface{}, min, max int) (int, bool) {
	switch v := value.(type) {
	case int:
		if v >= min && v <= max {
			return v, true
		}
	case float64:
		if v >= float64(min) && v <= float64(max) {
			return int(v), true
		}
	}
	return 0, false
}

func parseDuration(value interface{}) (time.Duration, bool) {
	if str, ok := value.(string); ok {
		if d, err := time.ParseDuration(str); err == nil {
			return d, true
		}
	}
	return 0, false
}

func parseFloatInRange(value interface{}, min, max float64) (float64, bool) {
	if v, ok := value.(float64); ok {
		if v > min && v < max {
			return v, true
		}
	}
	return 0, false
}

// parseConfig reparses cacheData on top of base, leaving unrecognized or
// invalid fields at their previous value.
func (hc *HotConfig) parseConfig(base Config, data map[string]interface{}) Config {
	config := base

	cacheSection, ok := data["cache"].(map[string]interface{})
	if !ok {
		if _, hasMaxSize := data["max_size"]; hasMaxSize {
			cacheSection = data
		} else {
			return config
		}
	}

	if maxSize, ok := parsePositiveInt(cacheSection["max_size"]); ok {
		config.MaxSize = maxSize
	}
	if ttl, ok := parseDuration(cacheSection["ttl"]); ok {
		config.TTL = ttl
	}
	if ratio, ok := parseFloatInRange(cacheSection["window_ratio"], 0, 1); ok {
		config.WindowRatio = ratio
	}
	if bits, ok := parseIntInRange(cacheSection["counter_bits"], 1, 8); ok {
		config.CounterBits = bits
	}

	return config
}
