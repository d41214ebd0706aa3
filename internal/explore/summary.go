// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package explore

import (
	"math"

	"github.com/jmorley-dev/catalogus/internal/metrics"
	"github.com/jmorley-dev/catalogus/internal/models"
)

// DefaultBucketCount is the histogram resolution used when the caller
// does not specify one.
const DefaultBucketCount = 20

// RatingBucket is one histogram bucket over the rating column.
type RatingBucket struct {
	RangeStart float64 `json:"range_start"`
	RangeEnd   float64 `json:"range_end"`
	Count      int     `json:"count"`
}

// RatingSummary is the distribution of the catalog's rating column.
type RatingSummary struct {
	Buckets []RatingBucket `json:"buckets"`
	Mean    float64        `json:"mean"`
	StdDev  float64        `json:"std_dev"`
	Min     float64        `json:"min"`
	Max     float64        `json:"max"`
	Total   int            `json:"total"`
}

// Summarize computes the rating distribution over the catalog:
// bucketCount (DefaultBucketCount when <= 0) equal-width buckets
// partitioning the observed [min, max] range, not a fixed [0, 10], plus
// the mean and sample standard deviation.
//
// Every record falls into exactly one bucket: boundary values belong to
// the lower-ranged bucket, except the maximum which belongs to the last
// bucket. Bucket counts therefore sum to the record count, and the
// result is deterministic for a fixed catalog and bucketCount.
func Summarize(c models.Catalog, bucketCount int) RatingSummary {
	metrics.RecordExploreQuery("summary")

	if bucketCount <= 0 {
		bucketCount = DefaultBucketCount
	}

	summary := RatingSummary{Buckets: []RatingBucket{}, Total: len(c)}
	if len(c) == 0 {
		return summary
	}

	minR, maxR := c[0].IMDBAverageRating, c[0].IMDBAverageRating
	var sum float64
	for _, rec := range c {
		r := rec.IMDBAverageRating
		sum += r
		if r < minR {
			minR = r
		}
		if r > maxR {
			maxR = r
		}
	}
	summary.Min = minR
	summary.Max = maxR
	summary.Mean = sum / float64(len(c))

	if len(c) > 1 {
		var sq float64
		for _, rec := range c {
			d := rec.IMDBAverageRating - summary.Mean
			sq += d * d
		}
		summary.StdDev = math.Sqrt(sq / float64(len(c)-1))
	}

	width := (maxR - minR) / float64(bucketCount)
	buckets := make([]RatingBucket, bucketCount)
	for i := range buckets {
		buckets[i].RangeStart = minR + width*float64(i)
		buckets[i].RangeEnd = minR + width*float64(i+1)
	}
	// The last bucket's end is the exact maximum, not a float product.
	buckets[bucketCount-1].RangeEnd = maxR

	for _, rec := range c {
		buckets[bucketIndex(rec.IMDBAverageRating, minR, width, bucketCount)].Count++
	}

	summary.Buckets = buckets
	return summary
}

// bucketIndex places a rating into its bucket. A value sitting exactly on
// a bucket boundary belongs to the lower-ranged bucket; the maximum lands
// on the final boundary and so belongs to the last bucket. A degenerate
// zero-width range puts everything in the last bucket, where the maximum
// belongs.
func bucketIndex(r, minR, width float64, bucketCount int) int {
	if width == 0 {
		return bucketCount - 1
	}
	pos := (r - minR) / width
	idx := int(math.Floor(pos))
	if pos == math.Floor(pos) && idx > 0 {
		idx--
	}
	if idx >= bucketCount {
		idx = bucketCount - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
