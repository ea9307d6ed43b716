package facet

import (
	"fmt"
	"math"

	"github.com/hearthside/homefinder/pkg/listing"
	"github.com/hearthside/homefinder/pkg/types"
)

type BucketCount struct {
	Bucket types.Bucket `json:"bucket"`
	Count  int          `json:"count"`
}

type FacetCounts struct {
	Facet   types.Facet   `json:"facet"`
	Buckets []BucketCount `json:"buckets"`
}

// ThresholdBuckets builds the "at least N" option table for a threshold
// facet, with the unconstrained option first.
func ThresholdBuckets(unit string, mins ...float64) []types.Bucket {
	buckets := make([]types.Bucket, 0, len(mins)+1)
	buckets = append(buckets, types.Bucket{Label: "Any", Min: 0, Max: math.Inf(1)})
	for _, m := range mins {
		buckets = append(buckets, types.Bucket{
			Label: fmt.Sprintf("%s+ %s", trimZero(m), unit),
			Min:   m,
			Max:   math.Inf(1),
		})
	}
	return buckets
}

func trimZero(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%g", v)
}

var (
	BedroomBuckets  = ThresholdBuckets("Beds", 1, 2, 3, 4, 5)
	BathroomBuckets = ThresholdBuckets("Baths", 1, 2, 3, 4)
	SqftBuckets     = ThresholdBuckets("Sq Ft", 1500, 2000, 2500, 3000, 3500)
	GarageBuckets   = ThresholdBuckets("Garages", 1, 2, 3)
)

// BucketsFor returns the option table for a numeric facet.
func BucketsFor(facet types.Facet) []types.Bucket {
	switch facet {
	case types.FacetPrice:
		return types.PriceBuckets
	case types.FacetBeds:
		return BedroomBuckets
	case types.FacetBaths:
		return BathroomBuckets
	case types.FacetSqft:
		return SqftBuckets
	case types.FacetGarages:
		return GarageBuckets
	}
	return nil
}

// CountsForFacet counts each candidate bucket of one facet against the
// remaining active filters. The counted facet's own selection is dropped
// first so a selected bucket never suppresses its siblings, and the "Any"
// bucket is always the size of the reduced set.
func CountsForFacet(records []types.ListingRecord, f *types.FilterState, facet types.Facet, buckets []types.Bucket) []BucketCount {
	reduced := listing.ApplyFilters(records, f.WithOut(facet))
	result := make([]BucketCount, len(buckets))
	for i, b := range buckets {
		if i == 0 {
			result[i] = BucketCount{Bucket: b, Count: len(reduced)}
			continue
		}
		count := 0
		for j := range reduced {
			if bucketMatches(&reduced[j], facet, b) {
				count++
			}
		}
		result[i] = BucketCount{Bucket: b, Count: count}
	}
	return result
}

// bucketMatches applies the same missing-data rule the filter engine uses:
// range facets pass records without a value, threshold facets reject them.
func bucketMatches(r *types.ListingRecord, facet types.Facet, b types.Bucket) bool {
	value := r.FacetValue(facet)
	if facet.IsRange() {
		if value == nil {
			return true
		}
		return b.Contains(*value)
	}
	return value != nil && *value >= b.Min
}

// CollectCounts computes counts for every numeric facet in display order.
func CollectCounts(records []types.ListingRecord, f *types.FilterState) []FacetCounts {
	facets := []types.Facet{types.FacetPrice, types.FacetBeds, types.FacetBaths, types.FacetSqft, types.FacetGarages}
	result := make([]FacetCounts, 0, len(facets))
	for _, facet := range facets {
		result = append(result, FacetCounts{
			Facet:   facet,
			Buckets: CountsForFacet(records, f, facet, BucketsFor(facet)),
		})
	}
	return result
}
