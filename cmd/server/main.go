// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

// Package main is the entry point for the Catalogus server.
//
// Catalogus serves a streaming media catalog over a REST API: title
// listing with filter criteria, per-title detail with derived
// presentation fields, similarity suggestions, genre tone analysis and
// a rating distribution summary.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Catalog: Load and normalize the CSV catalog into an in-memory store
//  3. Tone Analyzer: Optional sentiment classifier client behind a circuit breaker
//  4. HTTP Server: REST API plus Prometheus /metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (CATALOG_PATH, HTTP_PORT, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CATALOGUS_CONFIG)
//   - Built-in defaults
//
// Tone analysis is optional:
//   - CLASSIFIER_ENABLED=true
//   - CLASSIFIER_URL: classifier service URL (e.g. http://localhost:8000)
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM, draining
// in-flight requests for up to 10 seconds.
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

	"github.com/jmorley-dev/catalogus/internal/api"
	"github.com/jmorley-dev/catalogus/internal/catalog"
	"github.com/jmorley-dev/catalogus/internal/config"
	"github.com/jmorley-dev/catalogus/internal/logging"
	"github.com/jmorley-dev/catalogus/internal/tone"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	c, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}
	store := catalog.NewStore(c)
	logging.Info().Int("records", len(c)).Str("path", cfg.Catalog.Path).Msg("Catalog loaded")

	analyzer := buildAnalyzer(cfg)

	handler := api.NewHandler(cfg, store, analyzer)
	router := api.NewRouter(cfg, handler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		logging.Error().Err(err).Msg("HTTP server failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logging.Info().Msg("Server stopped")
}

// buildAnalyzer assembles the tone analyzer from config. A disabled
// classifier yields an analyzer that always reports ErrClassifierDisabled,
// which the API surfaces as tone unavailable.
func buildAnalyzer(cfg *config.Config) *tone.Analyzer {
	if !cfg.Classifier.Enabled {
		logging.Info().Msg("Tone classifier disabled")
		return tone.NewAnalyzer(nil)
	}

	client := tone.NewClient(tone.Config{
		BaseURL:        cfg.Classifier.URL,
		Timeout:        cfg.Classifier.Timeout,
		MaxRetries:     cfg.Classifier.MaxRetries,
		RetryBaseDelay: cfg.Classifier.RetryBaseDelay,
	})
	logging.Info().Str("url", cfg.Classifier.URL).Msg("Tone classifier enabled")
	return tone.NewAnalyzer(tone.NewCircuitBreakerClassifier(client))
}
