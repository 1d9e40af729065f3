// builder.go: fluent, validating cache builder
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

import "time"

// Builder constructs a Cache from a base Config plus an optional Profile,
// applying profile defaults only to fields the caller left unset and
// validating the mutually-exclusive settings of Config.Validate before
// selecting a cache implementation variant.
type Builder struct {
	cfg     Config
	profile Profile
	hasProf bool
}

// NewBuilder starts from an empty Config.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithProfile selects a named preset; its defaults apply only to fields
// still at their zero value when Build is called.
func (b *Builder) WithProfile(p Profile) *Builder {
	b.profile = p
	b.hasProf = true
	return b
}

func (b *Builder) WithMaxSize(n int) *Builder {
	b.cfg.MaxSize = n
	return b
}

func (b *Builder) WithMaxWeight(w int64, weigher Weigher) *Builder {
	b.cfg.MaxWeight = w
	b.cfg.Weigher = weigher
	return b
}

func (b *Builder) WithExpireAfterWrite(d time.Duration) *Builder {
	b.cfg.ExpireAfterWrite = d
	return b
}

func (b *Builder) WithExpireAfterAccess(d time.Duration) *Builder {
	b.cfg.ExpireAfterAccess = d
	return b
}

func (b *Builder) WithRefreshAfterWrite(d time.Duration) *Builder {
	b.cfg.RefreshAfterWrite = d
	return b
}

func (b *Builder) WithLoader(loader Loader) *Builder {
	b.cfg.Loader = loader
	return b
}

func (b *Builder) WithAsyncLoader(loader AsyncLoader) *Builder {
	b.cfg.AsyncLoader = loader
	return b
}

func (b *Builder) WithStrategy(s EvictionStrategy) *Builder {
	b.cfg.Strategy = s
	return b
}

func (b *Builder) WithListener(l Listener) *Builder {
	b.cfg.Listeners = append(b.cfg.Listeners, l)
	return b
}

func (b *Builder) WithRecordStats(enabled bool) *Builder {
	b.cfg.RecordStats = enabled
	return b
}

func (b *Builder) WithLogger(l Logger) *Builder {
	b.cfg.Logger = l
	return b
}

func (b *Builder) WithTimeProvider(tp TimeProvider) *Builder {
	b.cfg.TimeProvider = tp
	return b
}

func (b *Builder) WithMetricsCollector(mc MetricsCollector) *Builder {
	b.cfg.MetricsCollector = mc
	return b
}

// applyProfile fills in zero-valued fields from the selected profile.
func (b *Builder) applyProfile() error {
	if !b.hasProf {
		return nil
	}
	defaults, ok := lookupProfile(b.profile)
	if !ok {
		return NewErrConflictingSettings("Profile", string(b.profile))
	}

	if b.cfg.MaxSize <= 0 && b.cfg.MaxWeight <= 0 {
		b.cfg.MaxSize = defaults.maxSize
	}
	if b.cfg.Strategy == StrategyWTinyLFU && defaults.strategy != StrategyWTinyLFU {
		b.cfg.Strategy = defaults.strategy
	}
	if b.cfg.Stripes <= 0 {
		b.cfg.Stripes = defaults.stripes
	}
	if b.cfg.WindowRatio <= 0 {
		b.cfg.WindowRatio = defaults.windowRatio
	}
	if b.cfg.ExpireAfterWrite <= 0 {
		b.cfg.ExpireAfterWrite = defaults.expireAfterWrite
	}
	if b.cfg.ExpireAfterAccess <= 0 {
		b.cfg.ExpireAfterAccess = defaults.expireAfterAccess
	}
	if b.cfg.RefreshAfterWrite <= 0 {
		b.cfg.RefreshAfterWrite = defaults.refreshAfterWrite
	}
	return nil
}

// Build validates the accumulated configuration and constructs a Cache.
func (b *Builder) Build() (Cache, error) {
	if err := b.applyProfile(); err != nil {
		return nil, err
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return newCache(b.cfg), nil
}
