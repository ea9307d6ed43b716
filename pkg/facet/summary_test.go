package facet

import (
	"testing"

	"github.com/hearthside/homefinder/pkg/types"
)

func TestSummarize_NoChipsForDefaults(t *testing.T) {
	chips := Summarize(types.DefaultFilters(), Lookups{})
	if len(chips) != 0 {
		t.Errorf("default filters must yield no chips, got %+v", chips)
	}
}

func TestSummarize_OneChipPerActiveFacet(t *testing.T) {
	f := types.DefaultFilters()
	f.PriceRange = 2
	f.Beds = types.AtLeast(3)
	f.City = "Frisco"

	chips := Summarize(f, Lookups{})
	if len(chips) != 3 {
		t.Fatalf("expected 3 chips, got %d: %+v", len(chips), chips)
	}
	if chips[0].Key != types.FacetPrice || chips[0].Label != "$300,000 - $400,000" {
		t.Errorf("unexpected price chip %+v", chips[0])
	}
	if chips[1].Key != types.FacetBeds || chips[1].Label != "3+ Beds" {
		t.Errorf("unexpected beds chip %+v", chips[1])
	}
	if chips[2].Key != types.FacetCity || chips[2].Label != "Frisco" {
		t.Errorf("unexpected city chip %+v", chips[2])
	}
}

func TestSummarize_CommunityNameLookup(t *testing.T) {
	f := types.DefaultFilters()
	f.Community = "c42"

	chips := Summarize(f, Lookups{CommunityNames: map[types.ListingID]string{"c42": "Willow Creek"}})
	if len(chips) != 1 || chips[0].Label != "Willow Creek" {
		t.Errorf("expected community chip with display name, got %+v", chips)
	}

	noLookup := Summarize(f, Lookups{})
	if len(noLookup) != 1 || noLookup[0].Label != "c42" {
		t.Errorf("expected raw id fallback, got %+v", noLookup)
	}
}

func TestSummarize_DismissRestoresDefault(t *testing.T) {
	f := types.DefaultFilters()
	f.Beds = types.AtLeast(3)
	f.City = "Frisco"

	chips := Summarize(f, Lookups{})
	for _, chip := range chips {
		reset := f.WithReset(chip.Key)
		if !reset.IsDefault(chip.Key) {
			t.Errorf("dismissing chip %s must fully clear the facet", chip.Key)
		}
	}

	// Dismissing one chip leaves the other facet untouched.
	onlyCity := f.WithReset(types.FacetBeds)
	if onlyCity.City != "Frisco" {
		t.Errorf("dismissing beds must not touch city, got %q", onlyCity.City)
	}
	if !onlyCity.Beds.IsAny() {
		t.Errorf("beds not reset to any")
	}
}

func TestClearAll(t *testing.T) {
	f := ClearAll()
	for _, facet := range types.AllFacets {
		if !f.IsDefault(facet) {
			t.Errorf("facet %s not default after ClearAll", facet)
		}
	}
}

func TestSummarize_ResetTokens(t *testing.T) {
	f := types.DefaultFilters()
	f.PriceRange = 1
	f.Sqft = types.AtLeast(2000)
	f.County = "Collin"

	want := map[types.Facet]string{
		types.FacetPrice:  "0",
		types.FacetSqft:   "any",
		types.FacetCounty: "all",
	}
	for _, chip := range Summarize(f, Lookups{}) {
		if chip.Reset != want[chip.Key] {
			t.Errorf("chip %s reset = %q, want %q", chip.Key, chip.Reset, want[chip.Key])
		}
	}
}
