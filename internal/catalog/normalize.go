// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

// Package catalog loads and normalizes the raw title catalog.
//
// Normalization repairs missing and invalid fields instead of failing:
// string fields fall back to fixed sentinels, the release year to the
// catalog-wide median of present values (truncated to an integer) and the
// rating to the catalog-wide mean. Normalize never returns an error; only
// an entirely unreadable source (missing file, broken structure, missing
// columns) surfaces as a LoadError from Load.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jmorley-dev/catalogus/internal/models"
)

// RawRecord is one unnormalized source row keyed by canonical column name.
// Absent and empty values are equivalent.
type RawRecord map[string]string

// Column names of the catalog source.
const (
	ColTitle              = "title"
	ColType               = "type"
	ColGenres             = "genres"
	ColReleaseYear        = "releaseYear"
	ColIMDBAverageRating  = "imdbAverageRating"
	ColIMDBNumVotes       = "imdbNumVotes"
	ColAvailableCountries = "availableCountries"
	ColIMDBID             = "imdbId"
)

// RequiredColumns lists the header columns a catalog source must provide.
var RequiredColumns = []string{
	ColTitle,
	ColType,
	ColGenres,
	ColReleaseYear,
	ColIMDBAverageRating,
	ColIMDBNumVotes,
	ColAvailableCountries,
	ColIMDBID,
}

// Normalize converts raw rows into a canonical Catalog. It never fails:
// malformed values are treated as missing and repaired with defaults.
//
// Fallbacks are catalog-wide, computed over the present values of the
// input: the median release year (truncated) and the mean rating. When a
// column has no present values at all, the numeric fallback is zero.
//
// Normalize is idempotent: feeding a normalized catalog back through
// produces an identical catalog.
func Normalize(raw []RawRecord) models.Catalog {
	years := make([]float64, 0, len(raw))
	ratings := make([]float64, 0, len(raw))
	for _, row := range raw {
		if y, ok := parseFloat(row[ColReleaseYear]); ok {
			years = append(years, y)
		}
		if r, ok := parseFloat(row[ColIMDBAverageRating]); ok {
			ratings = append(ratings, r)
		}
	}

	// Truncation, not rounding: pandas' astype(int) semantics.
	yearFallback := int(median(years))
	ratingFallback := mean(ratings)

	out := make(models.Catalog, 0, len(raw))
	for _, row := range raw {
		rec := models.TitleRecord{
			Title:              stringOr(row[ColTitle], models.UnknownTitle),
			Type:               row[ColType],
			Genres:             stringOr(row[ColGenres], models.UnknownGenre),
			ReleaseYear:        yearFallback,
			IMDBAverageRating:  ratingFallback,
			AvailableCountries: stringOr(row[ColAvailableCountries], models.UnknownCountry),
			IMDBID:             strings.TrimSpace(row[ColIMDBID]),
		}

		if y, ok := parseFloat(row[ColReleaseYear]); ok {
			rec.ReleaseYear = int(y)
		}
		if r, ok := parseFloat(row[ColIMDBAverageRating]); ok {
			rec.IMDBAverageRating = r
		}
		if v, ok := parseFloat(row[ColIMDBNumVotes]); ok {
			votes := int(v)
			rec.IMDBNumVotes = &votes
		}

		out = append(out, rec)
	}
	return out
}

// stringOr returns the trimmed value, or fallback when it is empty.
func stringOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

// parseFloat parses a numeric cell. Empty or malformed cells report ok=false
// and are treated as missing values.
func parseFloat(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// median returns the median of values, averaging the two middle values for
// even-length input. Zero for empty input.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// mean returns the arithmetic mean of values, zero for empty input.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
