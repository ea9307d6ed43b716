package listing

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hearthside/homefinder/pkg/types"
)

func numberOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func compareNumbers(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// ApplySort returns a sorted copy of the records. Sorting is stable so
// equal keys keep their filtered order between renders. A missing price or
// square footage sorts as zero, which puts "contact for price" listings
// first ascending and last descending.
func ApplySort(records []types.ListingRecord, key types.SortKey) []types.ListingRecord {
	result := slices.Clone(records)
	switch key.Normalize() {
	case types.SortPriceAsc:
		slices.SortStableFunc(result, func(a, b types.ListingRecord) int {
			return compareNumbers(numberOrZero(a.Price), numberOrZero(b.Price))
		})
	case types.SortPriceDesc:
		slices.SortStableFunc(result, func(a, b types.ListingRecord) int {
			return compareNumbers(numberOrZero(b.Price), numberOrZero(a.Price))
		})
	case types.SortSqftAsc:
		slices.SortStableFunc(result, func(a, b types.ListingRecord) int {
			return compareNumbers(numberOrZero(a.SquareFeet), numberOrZero(b.SquareFeet))
		})
	case types.SortSqftDesc:
		slices.SortStableFunc(result, func(a, b types.ListingRecord) int {
			return compareNumbers(numberOrZero(b.SquareFeet), numberOrZero(a.SquareFeet))
		})
	case types.SortNameAsc:
		cl := collate.New(language.English)
		slices.SortStableFunc(result, func(a, b types.ListingRecord) int {
			return cl.CompareString(a.Name, b.Name)
		})
	case types.SortNewest:
		// No timestamp in the data model; reverse collection order is the
		// recency proxy and is kept as-is.
		slices.Reverse(result)
	}
	return result
}
