// keystone.go: package-level constants and defaults
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

const (
	// Version of the keystone cache library.
	Version = "v0.1.0-dev"

	// DefaultMaxSize is the default maximum number of entries.
	DefaultMaxSize = 10_000

	// DefaultWindowRatio is the default ratio of the admission window to total capacity.
	DefaultWindowRatio = 0.01 // 1%

	// DefaultCounterBits is the number of bits per frequency-sketch counter.
	DefaultCounterBits = 4

	// DefaultStripes is the default number of store/buffer stripes.
	DefaultStripes = 16
)
