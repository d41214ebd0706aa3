// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package explore

import (
	"testing"

	"github.com/jmorley-dev/catalogus/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogWithRatings(ratings ...float64) models.Catalog {
	c := make(models.Catalog, 0, len(ratings))
	for i, r := range ratings {
		c = append(c, models.TitleRecord{Title: string(rune('A' + i)), IMDBAverageRating: r})
	}
	return c
}

func TestSummarizeCountsSumToTotal(t *testing.T) {
	c := catalogWithRatings(1.0, 2.5, 3.3, 4.9, 5.0, 6.1, 7.7, 8.2, 9.0, 9.9)
	s := Summarize(c, DefaultBucketCount)

	require.Len(t, s.Buckets, DefaultBucketCount)
	total := 0
	for _, b := range s.Buckets {
		total += b.Count
	}
	assert.Equal(t, len(c), total)
	assert.Equal(t, len(c), s.Total)
}

func TestSummarizeStatistics(t *testing.T) {
	c := catalogWithRatings(6.0, 7.0, 8.0)
	s := Summarize(c, 4)

	assert.InDelta(t, 7.0, s.Mean, 1e-9)
	assert.InDelta(t, 6.0, s.Min, 1e-9)
	assert.InDelta(t, 8.0, s.Max, 1e-9)
	assert.InDelta(t, 1.0, s.StdDev, 1e-9, "sample standard deviation, n-1 denominator")
}

func TestSummarizeBucketEdgesSpanRange(t *testing.T) {
	c := catalogWithRatings(2.0, 4.0, 6.0, 8.0)
	s := Summarize(c, 4)

	require.Len(t, s.Buckets, 4)
	assert.InDelta(t, 2.0, s.Buckets[0].RangeStart, 1e-9)
	assert.InDelta(t, 8.0, s.Buckets[3].RangeEnd, 1e-9)
	for i := 1; i < len(s.Buckets); i++ {
		assert.InDelta(t, s.Buckets[i-1].RangeEnd, s.Buckets[i].RangeStart, 1e-9)
	}
}

func TestSummarizeBoundaryFallsInLowerBucket(t *testing.T) {
	// Range [0, 4] with 4 buckets of width 1. A rating of exactly 2.0
	// sits on the boundary between buckets 1 and 2 and must be counted
	// in the lower one.
	c := catalogWithRatings(0.0, 2.0, 4.0)
	s := Summarize(c, 4)

	require.Len(t, s.Buckets, 4)
	assert.Equal(t, 1, s.Buckets[0].Count, "minimum lands in the first bucket")
	assert.Equal(t, 1, s.Buckets[1].Count, "interior boundary goes to the lower bucket")
	assert.Equal(t, 0, s.Buckets[2].Count)
	assert.Equal(t, 1, s.Buckets[3].Count, "maximum lands in the last bucket")
}

func TestSummarizeMaxInLastBucket(t *testing.T) {
	c := catalogWithRatings(1.0, 9.0)
	s := Summarize(c, DefaultBucketCount)
	assert.Equal(t, 1, s.Buckets[len(s.Buckets)-1].Count)
}

func TestSummarizeZeroWidthRange(t *testing.T) {
	c := catalogWithRatings(7.0, 7.0, 7.0)
	s := Summarize(c, 5)

	require.Len(t, s.Buckets, 5)
	assert.Equal(t, 3, s.Buckets[4].Count, "identical ratings collapse into the final bucket")
	assert.InDelta(t, 0.0, s.StdDev, 1e-9)
}

func TestSummarizeSingleRecord(t *testing.T) {
	s := Summarize(catalogWithRatings(6.6), 3)
	assert.Equal(t, 1, s.Total)
	assert.InDelta(t, 0.0, s.StdDev, 1e-9, "no deviation with one sample")
}

func TestSummarizeEmptyCatalog(t *testing.T) {
	s := Summarize(models.Catalog{}, DefaultBucketCount)
	assert.Zero(t, s.Total)
	assert.Empty(t, s.Buckets)
}

func TestSummarizeNonPositiveBucketCountUsesDefault(t *testing.T) {
	s := Summarize(catalogWithRatings(1.0, 2.0), 0)
	assert.Len(t, s.Buckets, DefaultBucketCount)
}
