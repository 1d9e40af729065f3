// Package otel provides OpenTelemetry integration for keystone cache metrics.
//
// # Overview
//
// This package implements the keystone.MetricsCollector interface using
// OpenTelemetry, so histogram-based percentiles (p50/p95/p99) and export to
// any OTEL-compatible backend (Prometheus, Jaeger, DataDog, Grafana) are
// available without the core module depending on the OTEL SDK.
//
// It is a separate module: applications that don't configure a
// MetricsCollector never pull in the OTEL dependency tree.
//
// # Quick start
//
//	import (
//	    "github.com/keystonecache/keystone"
//	    keystoneotel "github.com/keystonecache/keystone/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	collector, _ := keystoneotel.NewOTelMetricsCollector(provider)
//
//	cache := keystone.NewCache(keystone.Config{
//	    MaxSize:          10_000,
//	    MetricsCollector: collector,
//	})
//
// # Metrics exposed
//
// Histograms (automatic percentiles):
//   - keystone_get_latency_ns
//   - keystone_set_latency_ns
//   - keystone_delete_latency_ns
//   - keystone_load_latency_ns
//
// Counters:
//   - keystone_get_hits_total / keystone_get_misses_total
//   - keystone_evictions_total (labeled by reason: SIZE, WEIGHT, EXPIRED, EXPLICIT)
//   - keystone_expirations_total
//   - keystone_load_success_total / keystone_load_failure_total
//
// All instruments are thread-safe. When MetricsCollector is left unset,
// Config.Validate substitutes NoOpMetricsCollector, whose methods do nothing.
package otel
