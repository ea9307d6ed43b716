package facet

import (
	"fmt"

	"github.com/hearthside/homefinder/pkg/types"
)

// Chip is one removable token for a non-default facet. Reset carries the
// facet's default value, which is what dismissing the chip restores.
type Chip struct {
	Key   types.Facet `json:"key"`
	Label string      `json:"label"`
	Reset string      `json:"reset"`
}

// Lookups resolves raw filter values to display labels.
type Lookups struct {
	CommunityNames map[types.ListingID]string
}

func defaultToken(facet types.Facet) string {
	switch {
	case facet == types.FacetPrice:
		return "0"
	case facet.IsCategorical():
		return types.AnyCategory
	}
	return "any"
}

func chipLabel(f *types.FilterState, facet types.Facet, lk Lookups) string {
	switch {
	case facet == types.FacetPrice:
		return types.PriceBuckets[f.PriceRange].Label
	case facet == types.FacetCommunity:
		if name, ok := lk.CommunityNames[f.Community]; ok {
			return name
		}
		return string(f.Community)
	case facet.IsCategorical():
		return f.Categorical(facet)
	}
	t := f.Threshold(facet)
	min, _ := t.Min()
	switch facet {
	case types.FacetBeds:
		return fmt.Sprintf("%s+ Beds", trimZero(min))
	case types.FacetBaths:
		return fmt.Sprintf("%s+ Baths", trimZero(min))
	case types.FacetSqft:
		return fmt.Sprintf("%s+ Sq Ft", trimZero(min))
	case types.FacetGarages:
		return fmt.Sprintf("%s+ Garages", trimZero(min))
	}
	return t.String()
}

// Summarize produces one chip per facet whose value differs from its
// default, in the fixed facet order. It is a pure function of the filter
// state plus lookup data.
func Summarize(f *types.FilterState, lk Lookups) []Chip {
	chips := make([]Chip, 0, len(types.AllFacets))
	for _, facet := range types.AllFacets {
		if f.IsDefault(facet) {
			continue
		}
		chips = append(chips, Chip{
			Key:   facet,
			Label: chipLabel(f, facet, lk),
			Reset: defaultToken(facet),
		})
	}
	return chips
}

// ClearAll resets every facet to its default simultaneously.
func ClearAll() *types.FilterState {
	return types.DefaultFilters()
}
