// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package explore

import (
	"github.com/jmorley-dev/catalogus/internal/metrics"
	"github.com/jmorley-dev/catalogus/internal/models"
)

// DefaultSimilarLimit is the number of suggestions returned when the
// caller does not specify a limit.
const DefaultSimilarLimit = 3

// RatingTolerance is how far below the anchor's rating a candidate may
// fall and still qualify as similar.
const RatingTolerance = 0.5

// FindSimilar returns titles similar to the anchor record, in catalog
// order, truncated to limit entries (DefaultSimilarLimit when limit <= 0).
// An empty result is a valid outcome, not an error.
//
// A candidate qualifies when its genre string equals the anchor's exactly
// (full string equality, not substring) and its rating is at least
// anchor's rating minus RatingTolerance.
//
// The anchor is excluded by title equality: two distinct records sharing
// a title are conflated and both excluded. Kept for compatibility with
// the legacy behavior; see DESIGN.md.
func FindSimilar(c models.Catalog, anchor models.TitleRecord, limit int) models.Catalog {
	metrics.RecordExploreQuery("similar")

	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	floor := anchor.IMDBAverageRating - RatingTolerance
	out := make(models.Catalog, 0, limit)
	for _, rec := range c {
		if rec.Title == anchor.Title {
			continue
		}
		if rec.Genres != anchor.Genres {
			continue
		}
		if rec.IMDBAverageRating < floor {
			continue
		}
		out = append(out, rec)
		if len(out) == limit {
			break
		}
	}
	return out
}
