// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

// Package api exposes the catalog over HTTP: title listing with filter
// criteria, per-title detail, similarity suggestions, tone analysis,
// facets, the rating distribution and catalog reload. Every endpoint
// returns the APIResponse envelope.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jmorley-dev/catalogus/internal/catalog"
	"github.com/jmorley-dev/catalogus/internal/config"
	"github.com/jmorley-dev/catalogus/internal/countries"
	"github.com/jmorley-dev/catalogus/internal/explore"
	"github.com/jmorley-dev/catalogus/internal/logging"
	"github.com/jmorley-dev/catalogus/internal/models"
	"github.com/jmorley-dev/catalogus/internal/tone"
)

// Handler holds the dependencies shared by every endpoint.
type Handler struct {
	cfg      *config.Config
	store    *catalog.Store
	analyzer *tone.Analyzer
}

// NewHandler wires the endpoints to an explicit catalog store and tone
// analyzer. There are no ambient singletons: every collaborator arrives
// through this constructor.
func NewHandler(cfg *config.Config, store *catalog.Store, analyzer *tone.Analyzer) *Handler {
	return &Handler{cfg: cfg, store: store, analyzer: analyzer}
}

// Health reports service liveness and the loaded catalog size.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	c := h.store.Current()
	respondSuccess(w, map[string]interface{}{
		"status":          "ok",
		"catalog_records": len(c),
		"classifier":      h.analyzer.Enabled(),
	}, len(c), start)
}

// titleView is a catalog record enriched with derived presentation
// fields.
type titleView struct {
	models.TitleRecord
	CountriesResolved string `json:"countries_resolved"`
	Stars             string `json:"stars"`
	VotesDisplay      string `json:"votes_display"`
	IMDBURL           string `json:"imdb_url,omitempty"`
}

func newTitleView(rec models.TitleRecord) titleView {
	votes := "N/A"
	if rec.IMDBNumVotes != nil {
		votes = strconv.Itoa(*rec.IMDBNumVotes)
	}
	return titleView{
		TitleRecord:       rec,
		CountriesResolved: countries.Resolve(rec.AvailableCountries),
		Stars:             explore.RatingStars(rec.IMDBAverageRating),
		VotesDisplay:      votes,
		IMDBURL:           explore.IMDBURL(rec.IMDBID),
	}
}

// Titles lists catalog records matching the filter criteria, paginated.
//
// Query parameters: genres (comma-separated), year_min, year_max,
// min_rating, page, page_size.
func (h *Handler) Titles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	yearMin, err := queryInt(r, "year_min", 0)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), err)
		return
	}
	yearMax, err := queryInt(r, "year_max", 3000)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), err)
		return
	}
	minRating, err := queryFloat(r, "min_rating", 0)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), err)
		return
	}

	criteria := explore.Criteria{
		Genres:    queryList(r, "genres"),
		YearMin:   yearMin,
		YearMax:   yearMax,
		MinRating: minRating,
	}

	matched, err := explore.Apply(h.store.Current(), criteria)
	if err != nil {
		var ce *explore.CriteriaError
		if errors.As(err, &ce) {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", ce.Error(), err)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "filter evaluation failed", err)
		return
	}

	page, pageSize, err := h.pagination(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), err)
		return
	}

	total := len(matched)
	lo := (page - 1) * pageSize
	if lo > total {
		lo = total
	}
	hi := lo + pageSize
	if hi > total {
		hi = total
	}

	views := make([]titleView, 0, hi-lo)
	for _, rec := range matched[lo:hi] {
		views = append(views, newTitleView(rec))
	}

	respondSuccess(w, map[string]interface{}{
		"titles":    views,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	}, len(views), start)
}

// TitleDetail returns one record by exact title, enriched with resolved
// countries, a star rendering and the comparison against the catalog
// mean rating.
func (h *Handler) TitleDetail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	title := r.URL.Query().Get("title")
	if title == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "parameter title is required", nil)
		return
	}

	c := h.store.Current()
	rec, ok := c.ByTitle(title)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "title not found", nil)
		return
	}

	facets := explore.ExtractFacets(c)
	respondSuccess(w, map[string]interface{}{
		"title":          newTitleView(rec),
		"rating_vs_mean": explore.CompareToAverage(rec.IMDBAverageRating, facets.MeanRating),
		"catalog_mean":   facets.MeanRating,
	}, 1, start)
}

// Similar returns titles similar to the named anchor: exact genre match
// within the rating tolerance, in catalog order.
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	title := r.URL.Query().Get("title")
	if title == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "parameter title is required", nil)
		return
	}
	limit, err := queryInt(r, "limit", h.cfg.API.SimilarLimit)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), err)
		return
	}

	c := h.store.Current()
	anchor, ok := c.ByTitle(title)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "title not found", nil)
		return
	}

	matches := explore.FindSimilar(c, anchor, limit)
	views := make([]titleView, 0, len(matches))
	for _, rec := range matches {
		views = append(views, newTitleView(rec))
	}

	respondSuccess(w, map[string]interface{}{
		"anchor":  anchor.Title,
		"similar": views,
	}, len(views), start)
}

// Tone classifies the sentiment of the named title's genre text. When
// the classifier is disabled or fails, the response carries a null tone
// so "unavailable" is never mistaken for a genuine OTHER verdict.
func (h *Handler) Tone(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	title := r.URL.Query().Get("title")
	if title == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "parameter title is required", nil)
		return
	}

	rec, ok := h.store.Current().ByTitle(title)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "title not found", nil)
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), rec.Genres)
	if err != nil {
		if !errors.Is(err, tone.ErrClassifierDisabled) {
			logging.Warn().Str("title", sanitizeLogValue(title)).Err(err).Msg("Tone classification unavailable")
		}
		respondSuccess(w, map[string]interface{}{
			"title":     rec.Title,
			"genres":    rec.Genres,
			"tone":      nil,
			"available": false,
		}, 1, start)
		return
	}

	respondSuccess(w, map[string]interface{}{
		"title":     rec.Title,
		"genres":    rec.Genres,
		"tone":      result,
		"available": true,
	}, 1, start)
}

// Genres returns the catalog facets: distinct genre tags, year bounds
// and the mean rating.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	facets := explore.ExtractFacets(h.store.Current())
	respondSuccess(w, facets, len(facets.Genres), start)
}

// RatingSummary returns the rating distribution histogram.
func (h *Handler) RatingSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	buckets, err := queryInt(r, "buckets", h.cfg.API.SummaryBuckets)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), err)
		return
	}

	summary := explore.Summarize(h.store.Current(), buckets)
	respondSuccess(w, summary, summary.Total, start)
}

// CountriesResolve expands a comma-separated country code list into
// display names.
func (h *Handler) CountriesResolve(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	codes := r.URL.Query().Get("codes")
	if codes == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "parameter codes is required", nil)
		return
	}

	respondSuccess(w, map[string]interface{}{
		"codes":    codes,
		"resolved": countries.Resolve(codes),
	}, 1, start)
}

// CatalogReload reloads the catalog file from disk and atomically
// replaces the in-memory snapshot. In-flight requests keep the snapshot
// they started with.
func (h *Handler) CatalogReload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	c, err := catalog.Load(h.cfg.Catalog.Path)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "LOAD_ERROR", "catalog reload failed", err)
		return
	}
	h.store.Replace(c)

	logging.Info().Int("records", len(c)).Msg("Catalog reloaded")
	respondSuccess(w, map[string]interface{}{
		"records": len(c),
	}, len(c), start)
}

// pagination extracts and clamps the page and page_size parameters.
func (h *Handler) pagination(r *http.Request) (page, pageSize int, err error) {
	page, err = queryInt(r, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	if page < 1 {
		page = 1
	}
	pageSize, err = queryInt(r, "page_size", h.cfg.API.DefaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	if pageSize < 1 {
		pageSize = h.cfg.API.DefaultPageSize
	}
	if pageSize > h.cfg.API.MaxPageSize {
		pageSize = h.cfg.API.MaxPageSize
	}
	return page, pageSize, nil
}
