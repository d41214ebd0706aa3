// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package explore

import (
	"errors"
	"testing"

	"github.com/jmorley-dev/catalogus/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() models.Catalog {
	return models.Catalog{
		{Title: "A", Genres: "Drama", ReleaseYear: 2010, IMDBAverageRating: 7.0},
		{Title: "B", Genres: "Drama", ReleaseYear: 2015, IMDBAverageRating: 6.8},
		{Title: "C", Genres: "Comedy", ReleaseYear: 2012, IMDBAverageRating: 8.0},
	}
}

func titles(c models.Catalog) []string {
	out := make([]string, 0, len(c))
	for _, rec := range c {
		out = append(out, rec.Title)
	}
	return out
}

func TestApplyDramaScenario(t *testing.T) {
	got, err := Apply(testCatalog(), Criteria{
		Genres:    []string{"Drama"},
		YearMin:   2000,
		YearMax:   2020,
		MinRating: 6.5,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles(got))
}

func TestApplyEmptyGenresIsVacuouslyTrue(t *testing.T) {
	c := testCatalog()
	got, err := Apply(c, Criteria{YearMin: 0, YearMax: 3000, MinRating: 0})
	require.NoError(t, err)
	assert.Equal(t, c, got, "full-range criteria must return the catalog unchanged in order")
}

func TestApplyYearBoundsInclusive(t *testing.T) {
	got, err := Apply(testCatalog(), Criteria{YearMin: 2010, YearMax: 2012, MinRating: 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, titles(got))
}

func TestApplyMinRatingInclusive(t *testing.T) {
	got, err := Apply(testCatalog(), Criteria{YearMin: 0, YearMax: 3000, MinRating: 6.8})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, titles(got), "records at exactly the minimum qualify")

	got, err = Apply(testCatalog(), Criteria{YearMin: 0, YearMax: 3000, MinRating: 6.9})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, titles(got))
}

func TestApplyGenreSubstringContainment(t *testing.T) {
	// Membership is tested on the raw joined string, so "Drama" also
	// matches "Melodrama". This behavior is load-bearing for
	// compatibility; see DESIGN.md.
	c := models.Catalog{
		{Title: "M", Genres: "Melodrama", ReleaseYear: 2011, IMDBAverageRating: 7.2},
		{Title: "D", Genres: "Drama, Crime", ReleaseYear: 2012, IMDBAverageRating: 7.5},
		{Title: "K", Genres: "Comedy", ReleaseYear: 2013, IMDBAverageRating: 6.0},
	}
	got, err := Apply(c, Criteria{Genres: []string{"Drama"}, YearMin: 0, YearMax: 3000})
	require.NoError(t, err)
	assert.Equal(t, []string{"M", "D"}, titles(got))
}

func TestApplyMultipleGenresIsDisjunction(t *testing.T) {
	got, err := Apply(testCatalog(), Criteria{
		Genres:  []string{"Comedy", "Drama"},
		YearMin: 0, YearMax: 3000,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, titles(got))
}

func TestApplyBlankGenreTokensIgnored(t *testing.T) {
	got, err := Apply(testCatalog(), Criteria{
		Genres:  []string{" ", "Comedy"},
		YearMin: 0, YearMax: 3000,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, titles(got))
}

func TestApplyInvertedYearRange(t *testing.T) {
	got, err := Apply(testCatalog(), Criteria{YearMin: 2020, YearMax: 2000})
	assert.True(t, got.IsEmpty())

	var ce *CriteriaError
	require.ErrorAs(t, err, &ce)
	assert.True(t, errors.Is(err, ErrInvertedYearRange))
}

func TestApplyOutOfRangeRating(t *testing.T) {
	got, err := Apply(testCatalog(), Criteria{YearMin: 0, YearMax: 3000, MinRating: 11})
	assert.True(t, got.IsEmpty())

	var ce *CriteriaError
	require.ErrorAs(t, err, &ce)
}

func TestApplyResultIsSubsequence(t *testing.T) {
	c := testCatalog()
	got, err := Apply(c, Criteria{YearMin: 0, YearMax: 3000, MinRating: 6.9})
	require.NoError(t, err)

	// Every result record appears in the input, in the same relative order.
	pos := 0
	for _, rec := range got {
		found := false
		for ; pos < len(c); pos++ {
			if c[pos].Title == rec.Title {
				found = true
				pos++
				break
			}
		}
		assert.True(t, found, "record %s out of order or missing", rec.Title)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	c := testCatalog()
	_, err := Apply(c, Criteria{Genres: []string{"Drama"}, YearMin: 0, YearMax: 3000})
	require.NoError(t, err)
	assert.Equal(t, testCatalog(), c)
}
