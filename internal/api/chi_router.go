// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmorley-dev/catalogus/internal/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router assembles the HTTP surface around a Handler.
type Router struct {
	handler *Handler
	cfg     *config.Config
}

// NewRouter creates a Router over the given handler.
func NewRouter(cfg *config.Config, handler *Handler) *Router {
	return &Router{handler: handler, cfg: cfg}
}

// Setup builds the chi route tree.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)    // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer) // Recover from panics
	r.Use(CORS(router.cfg.Security))

	// Health endpoint: no rate limit so probes never get throttled
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(SecurityHeaders)
		r.Get("/", router.handler.Health)
	})

	// Data endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimit(router.cfg.Security))
		r.Use(SecurityHeaders)
		r.Use(PrometheusMetrics)

		r.Get("/titles", router.handler.Titles)
		r.Get("/titles/detail", router.handler.TitleDetail)
		r.Get("/titles/similar", router.handler.Similar)
		r.Get("/titles/tone", router.handler.Tone)
		r.Get("/genres", router.handler.Genres)
		r.Get("/ratings/summary", router.handler.RatingSummary)
		r.Get("/countries/resolve", router.handler.CountriesResolve)
		r.Post("/catalog/reload", router.handler.CatalogReload)
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
