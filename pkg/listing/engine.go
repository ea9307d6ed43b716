package listing

import (
	"slices"

	"github.com/hearthside/homefinder/pkg/types"
)

// ApplyFilters returns the records passing every active facet constraint,
// in their incoming order. The source slice is never mutated.
func ApplyFilters(records []types.ListingRecord, f *types.FilterState) []types.ListingRecord {
	if f == nil {
		return slices.Clone(records)
	}
	result := make([]types.ListingRecord, 0, len(records))
	for i := range records {
		if Matches(&records[i], f) {
			result = append(result, records[i])
		}
	}
	return result
}

// Matches evaluates the conjunction of all per-facet predicates.
func Matches(r *types.ListingRecord, f *types.FilterState) bool {
	for _, facet := range types.AllFacets {
		if !PassesFacet(r, f, facet) {
			return false
		}
	}
	return true
}

// PassesFacet evaluates a single facet's predicate against one record.
// Range selectors let records without a value through, concrete thresholds
// do not.
func PassesFacet(r *types.ListingRecord, f *types.FilterState, facet types.Facet) bool {
	switch {
	case facet == types.FacetPrice:
		if f.PriceRange == 0 {
			return true
		}
		value := r.FacetValue(facet)
		if value == nil {
			return true
		}
		return types.PriceBuckets[f.PriceRange].Contains(*value)
	case facet.IsCategorical():
		selected := f.Categorical(facet)
		if selected == types.AnyCategory || selected == "" {
			return true
		}
		return r.CategoricalValue(facet) == selected
	default:
		return f.Threshold(facet).Passes(r.FacetValue(facet))
	}
}
