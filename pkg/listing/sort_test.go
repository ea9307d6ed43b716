package listing

import (
	"testing"

	"github.com/hearthside/homefinder/pkg/types"
)

func TestApplySort_PriceAscMissingSortsFirst(t *testing.T) {
	records := []types.ListingRecord{
		{ID: "a", Price: num(400000)},
		{ID: "b"},
		{ID: "c", Price: num(300000)},
	}
	got := ApplySort(records, types.SortPriceAsc)
	if !sameIds(got, "b", "c", "a") {
		t.Errorf("expected price-less as cheapest, got %v", ids(got))
	}
}

func TestApplySort_PriceDescMissingSortsLast(t *testing.T) {
	records := []types.ListingRecord{
		{ID: "a"},
		{ID: "b", Price: num(300000)},
		{ID: "c", Price: num(400000)},
	}
	got := ApplySort(records, types.SortPriceDesc)
	if !sameIds(got, "c", "b", "a") {
		t.Errorf("expected price-less last descending, got %v", ids(got))
	}
}

func TestApplySort_StableForEqualKeys(t *testing.T) {
	records := []types.ListingRecord{
		{ID: "a", Price: num(300000)},
		{ID: "b", Price: num(300000)},
		{ID: "c", Price: num(200000)},
		{ID: "d", Price: num(300000)},
	}
	got := ApplySort(records, types.SortPriceAsc)
	if !sameIds(got, "c", "a", "b", "d") {
		t.Errorf("equal prices must keep their relative order, got %v", ids(got))
	}
}

func TestApplySort_NameAsc(t *testing.T) {
	records := []types.ListingRecord{
		{ID: "a", Name: "Willow Creek"},
		{ID: "b", Name: "aspen Ridge"},
		{ID: "c", Name: "Bluff View"},
	}
	got := ApplySort(records, types.SortNameAsc)
	if !sameIds(got, "b", "c", "a") {
		t.Errorf("expected case-insensitive name order, got %v", ids(got))
	}
}

func TestApplySort_NewestIsReverseInputOrder(t *testing.T) {
	records := []types.ListingRecord{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	got := ApplySort(records, types.SortNewest)
	if !sameIds(got, "c", "b", "a") {
		t.Errorf("expected reverse input order, got %v", ids(got))
	}
}

func TestApplySort_UnknownKeyFallsBackToFeatured(t *testing.T) {
	records := []types.ListingRecord{
		{ID: "a", Price: num(900000)},
		{ID: "b", Price: num(100000)},
	}
	got := ApplySort(records, types.SortKey("bogus"))
	if !sameIds(got, "a", "b") {
		t.Errorf("unknown sort key must keep identity order, got %v", ids(got))
	}
}

func TestApplySort_SqftDesc(t *testing.T) {
	records := []types.ListingRecord{
		{ID: "a", SquareFeet: num(1800)},
		{ID: "b", SquareFeet: num(2600)},
		{ID: "c"},
	}
	got := ApplySort(records, types.SortSqftDesc)
	if !sameIds(got, "b", "a", "c") {
		t.Errorf("expected sqft descending with missing last, got %v", ids(got))
	}
}
