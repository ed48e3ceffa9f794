package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks reads served from an unexpired entry
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamepass_cache_hits_total",
			Help: "Total number of game pass cache hits",
		},
	)

	// CacheMisses tracks reads that fall through to a remote fetch,
	// forced refreshes included
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamepass_cache_misses_total",
			Help: "Total number of game pass cache misses, forced refreshes included",
		},
	)

	// CacheEntries tracks the number of entries currently stored
	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamepass_cache_entries",
			Help: "Current number of cache entries, expired entries included",
		},
	)
)
