package aggregate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gamepass-proxy/pkg/cache"
	"gamepass-proxy/pkg/gamepass"
	"gamepass-proxy/pkg/roblox"
)

// MaxChildren caps how many universes one aggregation fans out to.
// Enumeration order decides which ones make the cut.
const MaxChildren = 10

// Prometheus metrics for aggregation runs.
var (
	aggregateChildrenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aggregate_children_total",
		Help: "Total universes fanned out to across all aggregations",
	})

	aggregateChildFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aggregate_child_failures_total",
		Help: "Total per-universe fetch failures swallowed during aggregation",
	})

	aggregateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "aggregate_duration_seconds",
		Help:    "Wall time of full aggregation runs, cache hits excluded",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	})
)

// Catalog is the slice of the Roblox client the aggregator needs.
// *roblox.Client satisfies it.
type Catalog interface {
	ListUserGames(ctx context.Context, userID string) ([]map[string]any, error)
	ListGamePasses(ctx context.Context, universeID string) ([]map[string]any, error)
}

// Aggregator merges the game passes of every game a user created.
type Aggregator struct {
	api    Catalog
	cache  *cache.Cache
	logger zerolog.Logger
}

// New creates an Aggregator backed by the given catalog and cache.
// The cache is shared with its owner; the aggregator never clears it.
func New(api Catalog, store *cache.Cache) *Aggregator {
	return &Aggregator{
		api:    api,
		cache:  store,
		logger: log.With().Str("component", "aggregator").Logger(),
	}
}

// GamePasses returns every game pass across the user's games, serving
// from cache when fresh unless forceRefresh bypasses it. Enumerating
// the user's games is mandatory: its failure fails the aggregation.
// Per-universe pass fetches degrade to empty contributions instead.
func (a *Aggregator) GamePasses(ctx context.Context, userID string, forceRefresh bool) ([]gamepass.GamePass, error) {
	if records, ok := a.cache.Get(userID, forceRefresh); ok {
		a.logger.Debug().
			Str("user_id", userID).
			Int("records", len(records)).
			Msg("Serving aggregation from cache")
		return records, nil
	}

	start := time.Now()
	defer func() {
		aggregateDuration.Observe(time.Since(start).Seconds())
	}()

	games, err := a.api.ListUserGames(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list games for user %s: %w", userID, err)
	}

	ids := universeIDs(games)
	a.logger.Info().
		Str("user_id", userID).
		Int("games", len(games)).
		Int("selected", len(ids)).
		Msg("Fanning out for game passes")

	records := a.fanOut(ctx, ids)
	a.cache.Put(userID, records)

	a.logger.Info().
		Str("user_id", userID).
		Int("records", len(records)).
		Dur("duration", time.Since(start)).
		Msg("Aggregation complete")

	return records, nil
}

// universeIDs extracts usable universe ids in enumeration order,
// dropping descriptors with no resolvable id and capping the result at
// MaxChildren.
func universeIDs(games []map[string]any) []string {
	ids := make([]string, 0, MaxChildren)
	for _, game := range games {
		id, ok := roblox.GameID(game)
		if !ok {
			continue
		}
		ids = append(ids, id)
		if len(ids) == MaxChildren {
			break
		}
	}
	return ids
}

// fanOut fetches every universe's passes concurrently and joins all of
// them. Each universe writes its own slot, so the flattened result
// follows enumeration order regardless of completion order.
func (a *Aggregator) fanOut(ctx context.Context, ids []string) []gamepass.GamePass {
	perChild := make([][]gamepass.GamePass, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(slot int, universeID string) {
			defer wg.Done()
			aggregateChildrenTotal.Inc()

			items, err := a.api.ListGamePasses(ctx, universeID)
			if err != nil {
				aggregateChildFailures.Inc()
				a.logger.Warn().
					Err(err).
					Str("universe_id", universeID).
					Msg("Game pass fetch failed, contributing no records")
				return
			}
			perChild[slot] = gamepass.NormalizeAll(items)
		}(i, id)
	}
	wg.Wait()

	records := make([]gamepass.GamePass, 0)
	for _, chunk := range perChild {
		records = append(records, chunk...)
	}
	return records
}
