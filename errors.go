// errors.go: comprehensive error handling for keystone cache operations
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes
// for all cache operations.
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0
package keystone

import (
	goerrors "errors"
	"fmt"

	"github.com/agilira/go-errors"
)

// Error codes for keystone cache operations
const (
	// Configuration errors (1xxx) — the ConfigurationError discriminants
	ErrCodeInvalidMaxSize      errors.ErrorCode = "KEYSTONE_INVALID_MAX_SIZE"
	ErrCodeInvalidMaxWeight    errors.ErrorCode = "KEYSTONE_INVALID_MAX_WEIGHT"
	ErrCodeMissingWeigher      errors.ErrorCode = "KEYSTONE_MISSING_WEIGHER"
	ErrCodeConflictingSettings errors.ErrorCode = "KEYSTONE_CONFLICTING_SETTINGS"
	ErrCodeInvalidExpiration   errors.ErrorCode = "KEYSTONE_INVALID_EXPIRATION"
	ErrCodeInvalidWindowRatio  errors.ErrorCode = "KEYSTONE_INVALID_WINDOW_RATIO"
	ErrCodeInvalidCounterBits  errors.ErrorCode = "KEYSTONE_INVALID_COUNTER_BITS"

	// Operation errors (2xxx)
	ErrCodeEmptyKey       errors.ErrorCode = "KEYSTONE_EMPTY_KEY"
	ErrCodeCacheShutdown  errors.ErrorCode = "KEYSTONE_CACHE_SHUTDOWN"
	ErrCodeEvictionFailed errors.ErrorCode = "KEYSTONE_EVICTION_FAILED"

	// Loader errors (3xxx)
	ErrCodeLoaderFailed    errors.ErrorCode = "KEYSTONE_LOADER_FAILED"
	ErrCodeLoaderCancelled errors.ErrorCode = "KEYSTONE_LOADER_CANCELLED"
	ErrCodeInvalidLoader   errors.ErrorCode = "KEYSTONE_INVALID_LOADER"

	// Internal errors (5xxx)
	ErrCodeInternalError  errors.ErrorCode = "KEYSTONE_INTERNAL_ERROR"
	ErrCodePanicRecovered errors.ErrorCode = "KEYSTONE_PANIC_RECOVERED"
)

// Common error messages
const (
	msgInvalidMaxSize      = "invalid max size: must be greater than 0"
	msgInvalidMaxWeight    = "invalid max weight: must be greater than 0"
	msgMissingWeigher      = "max weight configured without a weigher function"
	msgConflictingSettings = "mutually exclusive settings both configured"
	msgInvalidExpiration   = "invalid expiration duration: must be non-negative"
	msgInvalidWindowRatio  = "invalid window ratio: must be between 0.0 and 1.0"
	msgInvalidCounterBits  = "invalid counter bits: must be between 1 and 8"
	msgEmptyKey            = "key cannot be empty"
	msgCacheShutdown       = "cache has been shut down"
	msgEvictionFailed      = "failed to evict entry from cache"
	msgLoaderFailed        = "loader function failed"
	msgLoaderCancelled     = "loader function was cancelled"
	msgInvalidLoader       = "loader function cannot be nil"
	msgInternalError       = "internal cache error"
	msgPanicRecovered      = "panic recovered in cache operation"
)

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

// NewErrInvalidMaxSize creates the invalid_maximum_size configuration error.
func NewErrInvalidMaxSize(size int) error {
	return errors.NewWithContext(ErrCodeInvalidMaxSize, msgInvalidMaxSize, map[string]interface{}{
		"provided_size":    size,
		"minimum_required": 1,
	})
}

// NewErrInvalidMaxWeight creates the invalid_maximum_weight configuration error.
func NewErrInvalidMaxWeight(weight int64) error {
	return errors.NewWithContext(ErrCodeInvalidMaxWeight, msgInvalidMaxWeight, map[string]interface{}{
		"provided_weight":  weight,
		"minimum_required": 1,
	})
}

// NewErrMissingWeigher creates the missing_weigher configuration error.
func NewErrMissingWeigher(maxWeight int64) error {
	return errors.NewWithContext(ErrCodeMissingWeigher, msgMissingWeigher, map[string]interface{}{
		"max_weight": maxWeight,
	})
}

// NewErrConflictingSettings creates the conflicting_settings(a,b) configuration error.
func NewErrConflictingSettings(a, b string) error {
	return errors.NewWithContext(ErrCodeConflictingSettings, msgConflictingSettings, map[string]interface{}{
		"setting_a": a,
		"setting_b": b,
	})
}

// NewErrInvalidExpiration creates the invalid_expiration configuration error.
func NewErrInvalidExpiration(field string, value interface{}) error {
	return errors.NewWithContext(ErrCodeInvalidExpiration, msgInvalidExpiration, map[string]interface{}{
		"field": field,
		"value": value,
	})
}

// NewErrInvalidWindowRatio creates an error for an invalid admission window ratio.
func NewErrInvalidWindowRatio(ratio float64) error {
	return errors.NewWithContext(ErrCodeInvalidWindowRatio, msgInvalidWindowRatio, map[string]interface{}{
		"provided_ratio": ratio,
		"valid_range":    "0.0 < ratio < 1.0",
	})
}

// NewErrInvalidCounterBits creates an error for an invalid sketch counter width.
func NewErrInvalidCounterBits(bits int) error {
	return errors.NewWithContext(ErrCodeInvalidCounterBits, msgInvalidCounterBits, map[string]interface{}{
		"provided_bits": bits,
		"valid_range":   "1-8",
	})
}

// =============================================================================
// OPERATION ERRORS
// =============================================================================

// NewErrEmptyKey creates an error for an operation called with an empty key.
func NewErrEmptyKey(operation string) error {
	return errors.NewWithField(ErrCodeEmptyKey, msgEmptyKey, "operation", operation)
}

// NewErrCacheShutdown creates a StateError for an operation attempted after Shutdown.
func NewErrCacheShutdown(operation string) error {
	return errors.NewWithField(ErrCodeCacheShutdown, msgCacheShutdown, "operation", operation)
}

// NewErrEvictionFailed creates an error when no eviction candidate can be found.
func NewErrEvictionFailed(reason string) error {
	return errors.NewWithField(ErrCodeEvictionFailed, msgEvictionFailed, "reason", reason).
		AsRetryable()
}

// =============================================================================
// LOADER ERRORS
// =============================================================================

// NewErrLoaderFailed wraps a loader function's own error (LoadError).
func NewErrLoaderFailed(key string, cause error) error {
	return errors.Wrap(cause, ErrCodeLoaderFailed, msgLoaderFailed).
		WithContext("key", key).
		AsRetryable()
}

// NewErrLoaderCancelled creates an error when a GetOrLoadContext wait is cancelled.
func NewErrLoaderCancelled(key string) error {
	return errors.NewWithField(ErrCodeLoaderCancelled, msgLoaderCancelled, "key", key)
}

// NewErrInvalidLoader creates an error when a loader function is nil.
func NewErrInvalidLoader(key string) error {
	return errors.NewWithField(ErrCodeInvalidLoader, msgInvalidLoader, "key", key)
}

// =============================================================================
// INTERNAL ERRORS
// =============================================================================

// NewErrInternal creates a generic internal error.
func NewErrInternal(operation string, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeInternalError, msgInternalError).
			WithContext("operation", operation).
			WithSeverity("warning")
	}
	return errors.NewWithField(ErrCodeInternalError, msgInternalError, "operation", operation).
		WithSeverity("warning")
}

// NewErrPanicRecovered creates an error when a listener or loader panic is recovered.
func NewErrPanicRecovered(operation string, panicValue interface{}) error {
	return errors.NewWithContext(ErrCodePanicRecovered, msgPanicRecovered, map[string]interface{}{
		"operation":   operation,
		"panic_value": fmt.Sprintf("%v", panicValue),
	}).WithSeverity("critical")
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsEmptyKey checks if error is an empty key error.
func IsEmptyKey(err error) bool {
	return errors.HasCode(err, ErrCodeEmptyKey)
}

// IsCacheShutdown checks if error is a post-shutdown StateError.
func IsCacheShutdown(err error) bool {
	return errors.HasCode(err, ErrCodeCacheShutdown)
}

// IsConfigError checks if error originates from configuration validation.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		switch coder.ErrorCode() {
		case ErrCodeInvalidMaxSize, ErrCodeInvalidMaxWeight, ErrCodeMissingWeigher,
			ErrCodeConflictingSettings, ErrCodeInvalidExpiration,
			ErrCodeInvalidWindowRatio, ErrCodeInvalidCounterBits:
			return true
		}
	}
	return false
}

// IsLoaderError checks if error is a loader-related error.
func IsLoaderError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeLoaderFailed || code == ErrCodeLoaderCancelled || code == ErrCodeInvalidLoader
	}
	return false
}

// IsRetryable checks if the error can be retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error.
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var keystoneErr *errors.Error
	if goerrors.As(err, &keystoneErr) {
		return keystoneErr.Context
	}
	return nil
}
