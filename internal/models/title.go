// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

// Package models defines the core data types shared across Catalogus:
// the Title Record, the Catalog, and the API response envelope.
package models

// Sentinel values substituted by normalization for missing string fields.
const (
	UnknownTitle   = "Unknown Title"
	UnknownGenre   = "Unknown Genre"
	UnknownCountry = "Unknown Country"
)

// TitleRecord is one media entry in the catalog.
//
// After normalization every field except IMDBNumVotes and IMDBID is
// guaranteed to be populated: string fields fall back to the Unknown*
// sentinels, ReleaseYear to the catalog median and IMDBAverageRating to
// the catalog mean.
type TitleRecord struct {
	// Title is the display title. Never empty after normalization.
	Title string `json:"title"`

	// Type is the content type (movie, tv, ...). Passed through as-is.
	Type string `json:"type"`

	// Genres is the raw comma-separated genre tag list.
	Genres string `json:"genres"`

	// ReleaseYear is the release year, always an integer after
	// normalization (median fallback is truncated, not rounded).
	ReleaseYear int `json:"release_year"`

	// IMDBAverageRating is the IMDb rating in [0,10].
	IMDBAverageRating float64 `json:"imdb_average_rating"`

	// IMDBNumVotes is the vote count, nil when the source had no value.
	IMDBNumVotes *int `json:"imdb_num_votes,omitempty"`

	// AvailableCountries is the raw comma-separated country code list.
	AvailableCountries string `json:"available_countries"`

	// IMDBID is the IMDb identifier (tt...), empty when absent.
	IMDBID string `json:"imdb_id,omitempty"`
}

// Catalog is an ordered collection of title records. Insertion order from
// the source is preserved and every derived view (filter results, similar
// titles) is an order-preserving subsequence.
//
// A Catalog is treated as immutable once built; a reload replaces it
// wholesale, never patches it in place.
type Catalog []TitleRecord

// IsEmpty reports whether the catalog holds no records.
func (c Catalog) IsEmpty() bool {
	return len(c) == 0
}

// ByTitle returns the first record whose title matches exactly, or false
// when no record matches. Duplicate-titled records are conflated by
// design; callers that need identity must track indices themselves.
func (c Catalog) ByTitle(title string) (TitleRecord, bool) {
	for _, rec := range c {
		if rec.Title == title {
			return rec, true
		}
	}
	return TitleRecord{}, false
}
