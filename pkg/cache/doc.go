// Package cache provides the process-local TTL store for aggregated
// game pass results.
//
// The cache implements lazy invalidation with the following properties:
//
// - One entry per owner key, replaced wholesale on every Put
// - Expiry is checked on read; no background sweeper runs
// - Expired entries linger until overwritten or cleared (bounded by
//   owner cardinality, so lingering is not a leak concern)
// - A single process-wide TTL applies uniformly to all keys
// - The clock is injected so tests can drive expiry deterministically
// - Prometheus metrics for observability
//
// # Basic Usage
//
//	// Create the cache with a five minute freshness window
//	store := cache.New(5 * time.Minute)
//
//	// Read, honoring a caller-forced refresh
//	records, ok := store.Get(userID, forceRefresh)
//	if !ok {
//		// miss - aggregate from the remote API, then store
//		store.Put(userID, records)
//	}
//
// # Introspection
//
//	for _, info := range store.Info() {
//		// info.Key, info.RecordCount, info.AgeSeconds,
//		// info.ExpiresInSeconds (negative once stale), info.IsExpired
//	}
//
// # Metrics
//
// The package exports Prometheus metrics:
//
//   - gamepass_cache_hits_total - Cache hits
//   - gamepass_cache_misses_total - Cache misses, forced refreshes included
//   - gamepass_cache_entries - Entries currently stored
//
// # Concurrency
//
// All operations are safe for concurrent use. The get/fetch/put cycle
// around the cache is intentionally not transactional: two concurrent
// requests for the same expired key may both fetch and both store,
// last write wins. Results are idempotent reads of the same upstream
// truth, so this is an accepted inefficiency rather than a correctness
// bug.
package cache
