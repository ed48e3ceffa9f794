// Package roblox provides the HTTP client for the Roblox games API:
// two GET operations with full-body reads, typed failures, and
// tolerance for the container shapes different API revisions return.
package roblox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for upstream Roblox calls.
var (
	robloxRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roblox_requests_total",
		Help: "Total Roblox API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	robloxRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roblox_request_duration_seconds",
		Help:    "Roblox API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	robloxErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roblox_errors_total",
		Help: "Total Roblox API errors by kind",
	}, []string{"kind"})
)

// DefaultBaseURL is the production games API host.
const DefaultBaseURL = "https://games.roblox.com"

// DefaultTimeout bounds each outbound request. There are no retries, so
// a slow upstream stalls only the one logical call that hit it.
const DefaultTimeout = 30 * time.Second

// Config holds the client configuration.
type Config struct {
	// BaseURL of the games API. Defaults to DefaultBaseURL.
	BaseURL string

	// UserAgent sent on every request so upstream can identify us.
	UserAgent string

	// Timeout for each outbound request. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Client is the Roblox games API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     zerolog.Logger
}

// New creates a Roblox API client. Zero-value config fields fall back
// to defaults.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "gamepass-proxy/1.0"
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		logger:     log.With().Str("component", "roblox-client").Logger(),
	}
}

// ListUserGames fetches the games created by one user. Descriptors are
// returned raw and in enumeration order; callers extract universe ids
// with GameID.
func (c *Client) ListUserGames(ctx context.Context, userID string) ([]map[string]any, error) {
	url := fmt.Sprintf("%s/v2/users/%s/games?accessFilter=Public&sortOrder=Asc&limit=50",
		c.baseURL, userID)

	payload, err := c.getJSON(ctx, "user_games", url)
	if err != nil {
		return nil, err
	}
	return unwrapItems(payload, gameContainers), nil
}

// ListGamePasses fetches the game passes of one universe, raw and
// unnormalized.
func (c *Client) ListGamePasses(ctx context.Context, universeID string) ([]map[string]any, error) {
	url := fmt.Sprintf("%s/v1/games/%s/game-passes?sortOrder=Asc&limit=100",
		c.baseURL, universeID)

	payload, err := c.getJSON(ctx, "game_passes", url)
	if err != nil {
		return nil, err
	}
	return unwrapItems(payload, passContainers), nil
}

// getJSON performs one GET, reads the whole body, and decodes it.
// Failures map onto the taxonomy: TransportError before a status line,
// RemoteError on non-2xx, ParseError on undecodable JSON.
func (c *Client) getJSON(ctx context.Context, endpoint, url string) (any, error) {
	start := time.Now()
	defer func() {
		robloxRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("url", url).
		Msg("Requesting Roblox API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		robloxErrorsTotal.WithLabelValues("transport").Inc()
		robloxRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		robloxErrorsTotal.WithLabelValues("transport").Inc()
		robloxRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, &TransportError{URL: url, Err: err}
	}

	robloxRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("Roblox API returned error status")
		robloxErrorsTotal.WithLabelValues("remote").Inc()
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		robloxErrorsTotal.WithLabelValues("parse").Inc()
		return nil, &ParseError{Err: err}
	}

	return payload, nil
}
