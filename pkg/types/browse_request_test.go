package types

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetBrowseQueryFromRequest_Query(t *testing.T) {
	r := httptest.NewRequest("GET", "/homes?price=2&beds=3&city=Frisco&sort=price-asc&page=2&size=12&utm_source=mail", nil)
	br, err := GetBrowseQueryFromRequest(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if br.PriceRange != 2 {
		t.Errorf("price = %d, want 2", br.PriceRange)
	}
	if min, set := br.Beds.Min(); !set || min != 3 {
		t.Errorf("beds = %v set=%v, want 3", min, set)
	}
	if br.City != "Frisco" {
		t.Errorf("city = %q", br.City)
	}
	if br.Sort != SortPriceAsc {
		t.Errorf("sort = %q", br.Sort)
	}
	if br.Page != 2 || br.PageSize != 12 {
		t.Errorf("paging = %d/%d", br.Page, br.PageSize)
	}
	if br.Community != AnyCategory {
		t.Errorf("untouched facets must keep their defaults, got %q", br.Community)
	}
}

func TestGetBrowseQueryFromRequest_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/homes", nil)
	br, err := GetBrowseQueryFromRequest(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if br.Sort != SortFeatured {
		t.Errorf("sort = %q, want featured", br.Sort)
	}
	if br.Page != 0 || br.PageSize != 24 {
		t.Errorf("paging = %d/%d, want 0/24", br.Page, br.PageSize)
	}
	if !br.Beds.IsAny() || br.PriceRange != 0 || br.City != AnyCategory {
		t.Errorf("filters not at defaults: %+v", br.FilterState)
	}
}

func TestGetBrowseQueryFromRequest_UnknownSortFallsBack(t *testing.T) {
	r := httptest.NewRequest("GET", "/homes?sort=cheapest-first", nil)
	br, err := GetBrowseQueryFromRequest(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if br.Sort != SortFeatured {
		t.Errorf("sort = %q, want featured fallback", br.Sort)
	}
}

func TestGetBrowseQueryFromRequest_ClampsPaging(t *testing.T) {
	r := httptest.NewRequest("GET", "/homes?page=9999&size=0", nil)
	br, err := GetBrowseQueryFromRequest(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if br.Page != 100 {
		t.Errorf("page = %d, want 100", br.Page)
	}
	if br.PageSize != 1 {
		t.Errorf("size = %d, want 1", br.PageSize)
	}
}

func TestGetBrowseQueryFromRequest_JSONBody(t *testing.T) {
	body := `{"priceRange":3,"baths":"2","county":"Collin","sort":"sqft-desc","pageSize":48}`
	r := httptest.NewRequest("POST", "/homes", strings.NewReader(body))
	br, err := GetBrowseQueryFromRequest(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if br.PriceRange != 3 || br.County != "Collin" {
		t.Errorf("unexpected filters: %+v", br.FilterState)
	}
	if min, set := br.Baths.Min(); !set || min != 2 {
		t.Errorf("baths = %v set=%v, want 2", min, set)
	}
	if br.Sort != SortSqftDesc {
		t.Errorf("sort = %q", br.Sort)
	}
	if br.PageSize != 48 {
		t.Errorf("size = %d", br.PageSize)
	}
}
