// Package otel provides OpenTelemetry integration for keystone cache metrics.
//
// This package implements the keystone.MetricsCollector interface using
// OpenTelemetry, enabling percentile calculation (p50, p95, p99) and
// multi-backend export (Prometheus, Jaeger, DataDog, Grafana) without
// adding OTEL as a core module dependency.
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"github.com/keystonecache/keystone"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func reasonAttr(reason keystone.EvictionReason) attribute.KeyValue {
	return attribute.String("reason", reason.String())
}

// OTelMetricsCollector implements keystone.MetricsCollector using
// OpenTelemetry histograms and counters.
//
// Thread-safety: safe for concurrent use; OTEL instruments are lock-free.
type OTelMetricsCollector struct {
	getLatency    metric.Int64Histogram
	setLatency    metric.Int64Histogram
	deleteLatency metric.Int64Histogram
	loadLatency   metric.Int64Histogram
	hits          metric.Int64Counter
	misses        metric.Int64Counter
	evictions     metric.Int64Counter
	expirations   metric.Int64Counter
	loadSuccess   metric.Int64Counter
	loadFailure   metric.Int64Counter
}

// Options configures OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/keystonecache/keystone"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name, useful for distinguishing metrics
// from multiple cache instances.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates a metrics collector backed by provider.
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{MeterName: "github.com/keystonecache/keystone"}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	collector := &OTelMetricsCollector{}

	var err error
	collector.getLatency, err = meter.Int64Histogram(
		"keystone_get_latency_ns",
		metric.WithDescription("Latency of Get operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.setLatency, err = meter.Int64Histogram(
		"keystone_set_latency_ns",
		metric.WithDescription("Latency of Put operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.deleteLatency, err = meter.Int64Histogram(
		"keystone_delete_latency_ns",
		metric.WithDescription("Latency of Remove operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.loadLatency, err = meter.Int64Histogram(
		"keystone_load_latency_ns",
		metric.WithDescription("Latency of loader invocations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.hits, err = meter.Int64Counter(
		"keystone_get_hits_total",
		metric.WithDescription("Total number of cache hits"),
	)
	if err != nil {
		return nil, err
	}

	collector.misses, err = meter.Int64Counter(
		"keystone_get_misses_total",
		metric.WithDescription("Total number of cache misses"),
	)
	if err != nil {
		return nil, err
	}

	collector.evictions, err = meter.Int64Counter(
		"keystone_evictions_total",
		metric.WithDescription("Total number of evictions, labeled by reason"),
	)
	if err != nil {
		return nil, err
	}

	collector.expirations, err = meter.Int64Counter(
		"keystone_expirations_total",
		metric.WithDescription("Total number of TTL-based expirations"),
	)
	if err != nil {
		return nil, err
	}

	collector.loadSuccess, err = meter.Int64Counter(
		"keystone_load_success_total",
		metric.WithDescription("Total number of successful loader invocations"),
	)
	if err != nil {
		return nil, err
	}

	collector.loadFailure, err = meter.Int64Counter(
		"keystone_load_failure_total",
		metric.WithDescription("Total number of failed loader invocations"),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// RecordGet records a Get operation's latency and hit/miss outcome.
func (c *OTelMetricsCollector) RecordGet(latencyNs int64, hit bool) {
	ctx := context.Background()
	c.getLatency.Record(ctx, latencyNs)
	if hit {
		c.hits.Add(ctx, 1)
	} else {
		c.misses.Add(ctx, 1)
	}
}

// RecordSet records a Put operation's latency.
func (c *OTelMetricsCollector) RecordSet(latencyNs int64) {
	c.setLatency.Record(context.Background(), latencyNs)
}

// RecordDelete records a Remove operation's latency.
func (c *OTelMetricsCollector) RecordDelete(latencyNs int64) {
	c.deleteLatency.Record(context.Background(), latencyNs)
}

// RecordEviction records an eviction event, labeled by reason.
func (c *OTelMetricsCollector) RecordEviction(reason keystone.EvictionReason) {
	ctx := context.Background()
	c.evictions.Add(ctx, 1, metric.WithAttributes(
		reasonAttr(reason),
	))
}

// RecordExpiration records a TTL-based expiration event.
func (c *OTelMetricsCollector) RecordExpiration() {
	c.expirations.Add(context.Background(), 1)
}

// RecordLoad records a loader invocation's latency and outcome.
func (c *OTelMetricsCollector) RecordLoad(latencyNs int64, success bool) {
	ctx := context.Background()
	c.loadLatency.Record(ctx, latencyNs)
	if success {
		c.loadSuccess.Add(ctx, 1)
	} else {
		c.loadFailure.Add(ctx, 1)
	}
}

var _ keystone.MetricsCollector = (*OTelMetricsCollector)(nil)
