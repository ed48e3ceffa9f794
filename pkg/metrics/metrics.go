// Package metrics provides the centralized Prometheus registry reference
// for the gamepass proxy. All metrics are defined in their respective
// packages (roblox, cache, aggregate) to maintain modularity and avoid
// circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the service.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Cache Metrics (pkg/cache):
//   - gamepass_cache_hits_total (Counter): Reads served from an unexpired entry
//   - gamepass_cache_misses_total (Counter): Reads that fell through to a remote fetch, forced refreshes included
//   - gamepass_cache_entries (Gauge): Entries currently stored, expired entries included
//
// Upstream Metrics (pkg/roblox):
//   - roblox_requests_total{endpoint, status} (Counter): Requests by endpoint family and HTTP status
//   - roblox_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint family
//   - roblox_errors_total{kind} (Counter): Errors by kind (transport, remote, parse)
//
// Aggregation Metrics (pkg/aggregate):
//   - aggregate_children_total (Counter): Universes fanned out to across all aggregations
//   - aggregate_child_failures_total (Counter): Per-universe failures swallowed during aggregation
//   - aggregate_duration_seconds (Histogram): Wall time of full aggregation runs, cache hits excluded
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(gamepass_cache_hits_total[5m])) /
//   (sum(rate(gamepass_cache_hits_total[5m])) + sum(rate(gamepass_cache_misses_total[5m])))
//
//   # Per-Universe Failure Rate
//   rate(aggregate_child_failures_total[5m]) / rate(aggregate_children_total[5m])
//
//   # P95 Upstream Latency
//   histogram_quantile(0.95, rate(roblox_request_duration_seconds_bucket[5m]))
//
//   # Upstream Error Rate by Kind
//   rate(roblox_errors_total[5m])
