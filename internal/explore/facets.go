// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package explore

import (
	"fmt"
	"math"
	"strings"

	"github.com/jmorley-dev/catalogus/internal/models"
)

// Facets summarizes the filterable dimensions of a catalog, used to
// build filter controls: the distinct genre tags, the observed year
// bounds and the catalog-wide mean rating.
type Facets struct {
	Genres     []string `json:"genres"`
	YearMin    int      `json:"year_min"`
	YearMax    int      `json:"year_max"`
	MeanRating float64  `json:"mean_rating"`
}

// ExtractFacets computes the facets of a catalog. Genre tags are split
// out of each record's comma-separated genre string, trimmed, and kept
// in first-encounter order.
func ExtractFacets(c models.Catalog) Facets {
	f := Facets{Genres: []string{}}
	if len(c) == 0 {
		return f
	}

	seen := make(map[string]struct{})
	var sum float64
	f.YearMin, f.YearMax = c[0].ReleaseYear, c[0].ReleaseYear
	for _, rec := range c {
		for _, tag := range strings.Split(rec.Genres, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			f.Genres = append(f.Genres, tag)
		}
		if rec.ReleaseYear < f.YearMin {
			f.YearMin = rec.ReleaseYear
		}
		if rec.ReleaseYear > f.YearMax {
			f.YearMax = rec.ReleaseYear
		}
		sum += rec.IMDBAverageRating
	}
	f.MeanRating = sum / float64(len(c))
	return f
}

// RatingStars renders a rating as a star string, one star per rounded
// point. Halves round to even, matching how the legacy view rounded.
// Non-positive ratings render as an empty string.
func RatingStars(rating float64) string {
	n := int(math.RoundToEven(rating))
	if n <= 0 {
		return ""
	}
	return strings.Repeat("⭐", n)
}

// CompareToAverage describes how a title's rating relates to the catalog
// mean, matching the phrasing shown alongside title details. A rating
// equal to the mean reads as below average, like the legacy view did.
func CompareToAverage(rating, mean float64) string {
	diff := rating - mean
	comparison := "below average"
	if diff > 0 {
		comparison = "above average"
	}
	return fmt.Sprintf("Rating is %.1f points %s compared to other titles.", math.Abs(diff), comparison)
}

// IMDBURL returns the public IMDb page for a title id, or an empty
// string when the id is absent.
func IMDBURL(imdbID string) string {
	if imdbID == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + imdbID
}
