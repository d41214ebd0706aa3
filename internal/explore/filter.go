// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

// Package explore implements the content exploration engine: filter
// evaluation, similarity matching, catalog facets and the rating
// distribution summary. All operations are pure functions over an
// immutable catalog snapshot and return order-preserving subsequences.
package explore

import (
	"fmt"
	"strings"

	"github.com/jmorley-dev/catalogus/internal/metrics"
	"github.com/jmorley-dev/catalogus/internal/models"
	"github.com/jmorley-dev/catalogus/internal/validation"
)

// Criteria is the conjunction of constraints a caller applies to the
// catalog. It is transient: constructed per query, never persisted.
type Criteria struct {
	// Genres restricts results to records matching at least one entry.
	// Empty means no genre restriction (vacuously true), which is
	// distinct from "matches no genre".
	Genres []string `json:"genres"`

	// YearMin and YearMax bound the release year, inclusive on both ends.
	YearMin int `json:"year_min" validate:"min=0"`
	YearMax int `json:"year_max" validate:"min=0"`

	// MinRating is the minimum IMDb rating.
	MinRating float64 `json:"min_rating" validate:"gte=0,lte=10"`
}

// CriteriaError reports out-of-range filter criteria. It is recoverable:
// Apply pairs it with an empty result rather than failing the request.
type CriteriaError struct {
	Err error
}

func (e *CriteriaError) Error() string {
	return fmt.Sprintf("invalid filter criteria: %v", e.Err)
}

func (e *CriteriaError) Unwrap() error {
	return e.Err
}

// ErrInvertedYearRange indicates YearMin exceeds YearMax.
var ErrInvertedYearRange = fmt.Errorf("year range minimum exceeds maximum")

// Validate checks the criteria ranges. A nil return means Apply will
// evaluate the criteria as given.
func (c Criteria) Validate() error {
	if verr := validation.ValidateStruct(&c); verr != nil {
		return &CriteriaError{Err: verr}
	}
	if c.YearMin > c.YearMax {
		return &CriteriaError{Err: ErrInvertedYearRange}
	}
	return nil
}

// genreTokens returns the requested genres with surrounding whitespace
// trimmed and empty entries dropped. An empty token would match every
// record via substring containment, which is never what a caller means.
func (c Criteria) genreTokens() []string {
	tokens := make([]string, 0, len(c.Genres))
	for _, g := range c.Genres {
		if g = strings.TrimSpace(g); g != "" {
			tokens = append(tokens, g)
		}
	}
	return tokens
}

// Apply evaluates the criteria conjunction over the catalog and returns
// the matching records as a new, order-preserving subsequence. The input
// catalog is never mutated.
//
// Invalid criteria (inverted year range, rating outside [0,10]) degrade
// to an empty result paired with a *CriteriaError.
//
// Genre matching is a membership test on the raw comma-joined genre
// string, i.e. substring containment: requesting "Drama" also matches a
// record tagged "Melodrama". This mirrors the legacy behavior and is
// kept deliberately; see DESIGN.md before changing it.
func Apply(c models.Catalog, criteria Criteria) (models.Catalog, error) {
	metrics.RecordExploreQuery("filter")

	if err := criteria.Validate(); err != nil {
		return models.Catalog{}, err
	}

	genres := criteria.genreTokens()
	out := make(models.Catalog, 0, len(c))
	for _, rec := range c {
		if !matchesGenres(rec.Genres, genres) {
			continue
		}
		if rec.ReleaseYear < criteria.YearMin || rec.ReleaseYear > criteria.YearMax {
			continue
		}
		if rec.IMDBAverageRating < criteria.MinRating {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// matchesGenres reports whether the record's raw genre string contains at
// least one requested genre. An empty request is vacuously true.
func matchesGenres(recordGenres string, requested []string) bool {
	if len(requested) == 0 {
		return true
	}
	for _, g := range requested {
		if strings.Contains(recordGenres, g) {
			return true
		}
	}
	return false
}
