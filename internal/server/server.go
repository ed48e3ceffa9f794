// Package server provides the HTTP surface of the gamepass proxy: the
// gin router, the JSON envelopes, and the environment configuration.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gamepass-proxy/pkg/cache"
	"gamepass-proxy/pkg/gamepass"
)

// Version is reported by the status endpoint.
const Version = "1.0.0"

// PassSource fetches one universe's game passes directly, bypassing the
// aggregator and cache. *roblox.Client satisfies it.
type PassSource interface {
	ListGamePasses(ctx context.Context, universeID string) ([]map[string]any, error)
}

// PassAggregator runs the cache-aware fan-out for one user.
// *aggregate.Aggregator satisfies it.
type PassAggregator interface {
	GamePasses(ctx context.Context, userID string, forceRefresh bool) ([]gamepass.GamePass, error)
}

// Handler serves the proxy's API endpoints.
type Handler struct {
	api        PassSource
	aggregator PassAggregator
	cache      *cache.Cache
	logger     zerolog.Logger
	started    time.Time
}

// NewHandler creates a Handler over the given collaborators. The cache
// is the same instance the aggregator writes to, so the clear and info
// endpoints operate on live state.
func NewHandler(api PassSource, aggregator PassAggregator, store *cache.Cache) *Handler {
	return &Handler{
		api:        api,
		aggregator: aggregator,
		cache:      store,
		logger:     log.With().Str("component", "server").Logger(),
		started:    time.Now(),
	}
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(h.logger))

	router.GET("/", h.status)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	h.RegisterRoutes(router.Group("/api"))

	return router
}

// RegisterRoutes mounts the API endpoints on a router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/gamepasses", h.gamePasses)
	rg.GET("/cache/clear", h.cacheClear)
	rg.GET("/cache/info", h.cacheInfo)
}

// gamePasses serves GET /api/gamepasses. A universeId queries that one
// universe directly with no caching; a userId runs the full aggregation,
// honoring the refresh flag. One of the two is required.
func (h *Handler) gamePasses(c *gin.Context) {
	if universeID := c.Query("universeId"); universeID != "" {
		items, err := h.api.ListGamePasses(c.Request.Context(), universeID)
		if err != nil {
			h.logger.Error().Err(err).Str("universe_id", universeID).Msg("Game pass fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		records := gamepass.NormalizeAll(items)
		c.JSON(http.StatusOK, gin.H{"success": true, "gamePasses": records, "count": len(records)})
		return
	}

	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "universeId or userId parameter is required",
		})
		return
	}

	refresh := c.Query("refresh")
	forceRefresh := refresh == "true" || refresh == "1"

	records, err := h.aggregator.GamePasses(c.Request.Context(), userID, forceRefresh)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("Aggregation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "gamePasses": records, "count": len(records)})
}

// cacheClear serves GET /api/cache/clear. With a userId it drops that
// one entry; without, it flushes everything.
func (h *Handler) cacheClear(c *gin.Context) {
	if userID := c.Query("userId"); userID != "" {
		h.cache.Clear(userID)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": fmt.Sprintf("Cache cleared for user %s", userID),
		})
		return
	}

	n := h.cache.ClearAll()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Cleared %d cache entries", n),
	})
}

// cacheInfo serves GET /api/cache/info with per-entry statistics,
// expired-but-lingering entries included.
func (h *Handler) cacheInfo(c *gin.Context) {
	entries := h.cache.Info()
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(entries),
		"ttlSeconds": int64(h.cache.TTL() / time.Second),
		"entries":    entries,
	})
}

// status serves GET / as the liveness payload.
func (h *Handler) status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"service":       "gamepass-proxy",
		"version":       Version,
		"status":        "ok",
		"uptimeSeconds": int64(time.Since(h.started) / time.Second),
		"cacheEntries":  h.cache.Len(),
		"ttlSeconds":    int64(h.cache.TTL() / time.Second),
	})
}
