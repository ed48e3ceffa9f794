package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamepass-proxy/internal/server"
	"gamepass-proxy/pkg/aggregate"
	"gamepass-proxy/pkg/cache"
	"gamepass-proxy/pkg/logging"
	"gamepass-proxy/pkg/roblox"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	api := roblox.New(roblox.Config{
		BaseURL:   cfg.RobloxBaseURL,
		UserAgent: "gamepass-proxy/" + server.Version,
	})
	store := cache.New(cfg.CacheTTL())
	aggregator := aggregate.New(api, store)

	handler := server.NewHandler(api, aggregator, store)
	router := server.NewRouter(handler)

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Int("port", cfg.Port).
			Dur("cache_ttl", cfg.CacheTTL()).
			Str("upstream", cfg.RobloxBaseURL).
			Msg("Starting gamepass proxy")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-errCh:
		logger.Error().Err(err).Msg("Server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Shutdown error")
	}
	logger.Info().Msg("Server stopped")
}
