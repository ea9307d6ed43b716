package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hearthside/homefinder/pkg/index"
	"github.com/hearthside/homefinder/pkg/types"
)

func num(v float64) *float64 {
	return &v
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	idx := index.New()
	idx.Upsert(types.ListingRecord{
		ID: "c1", Kind: types.KindCommunity, Name: "Trinity Falls",
		City: "McKinney", Latitude: num(33.23), Longitude: num(-96.54),
	})
	idx.Upsert(types.ListingRecord{
		ID: "h1", Kind: types.KindHome, Name: "Plan 2100",
		Price: num(350000), Bedrooms: num(3), City: "McKinney", CommunityID: "c1",
		Latitude: num(33.22), Longitude: num(-96.55),
	})
	idx.Upsert(types.ListingRecord{
		ID: "h2", Kind: types.KindHome, Name: "Plan 2600",
		Price: num(475000), Bedrooms: num(4), City: "Frisco",
		Latitude: num(33.15), Longitude: num(-96.82),
	})
	idx.Upsert(types.ListingRecord{
		ID: "h3", Kind: types.KindHome, Name: "Plan 3000",
		Bedrooms: num(5), City: "Frisco",
	})

	ws := &WebServer{Index: idx}
	srv := httptest.NewServer(ws.ClientHandler())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return resp
}

func TestBrowseHandler_Unfiltered(t *testing.T) {
	srv := testServer(t)
	var response BrowseResponse
	resp := getJSON(t, srv.URL+"/homes", &response)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if response.TotalHits != 3 {
		t.Errorf("totalHits = %d, want 3", response.TotalHits)
	}
	if len(response.Items) != 3 {
		t.Errorf("items = %d, want 3", len(response.Items))
	}
	if response.Items[0].ID != "h1" {
		t.Errorf("featured order must follow the collection: %v", response.Items[0].ID)
	}
	if response.Sort != types.SortFeatured {
		t.Errorf("sort = %q", response.Sort)
	}
	if len(response.Chips) != 0 {
		t.Errorf("default filters must produce no chips: %+v", response.Chips)
	}
	if len(response.Facets) == 0 {
		t.Errorf("facet counts missing")
	}
}

func TestBrowseHandler_FilterAndSort(t *testing.T) {
	srv := testServer(t)
	var response BrowseResponse
	getJSON(t, srv.URL+"/homes?beds=4&sort=price-asc", &response)
	// the missing-price home sorts first under price-asc
	if response.TotalHits != 2 {
		t.Fatalf("totalHits = %d, want 2", response.TotalHits)
	}
	if response.Items[0].ID != "h3" || response.Items[1].ID != "h2" {
		t.Errorf("order = %v,%v want h3,h2", response.Items[0].ID, response.Items[1].ID)
	}
	if len(response.Chips) != 1 || response.Chips[0].Label != "4+ Beds" {
		t.Errorf("chips = %+v", response.Chips)
	}
}

func TestBrowseHandler_ChipUsesCommunityName(t *testing.T) {
	srv := testServer(t)
	var response BrowseResponse
	getJSON(t, srv.URL+"/homes?community=c1", &response)
	if response.TotalHits != 1 || response.Items[0].ID != "h1" {
		t.Fatalf("unexpected result: %+v", response.Items)
	}
	if len(response.Chips) != 1 || response.Chips[0].Label != "Trinity Falls" {
		t.Errorf("chips = %+v", response.Chips)
	}
}

func TestBrowseHandler_Pagination(t *testing.T) {
	srv := testServer(t)
	var response BrowseResponse
	getJSON(t, srv.URL+"/homes?size=2&page=1", &response)
	if response.TotalHits != 3 {
		t.Errorf("totalHits = %d, want 3", response.TotalHits)
	}
	if len(response.Items) != 1 || response.Items[0].ID != "h3" {
		t.Errorf("page 1 = %+v", response.Items)
	}
}

func TestMarkersHandler_SkipsCoordinatelessButCountsThem(t *testing.T) {
	srv := testServer(t)
	var response MarkerResponse
	getJSON(t, srv.URL+"/homes/markers", &response)
	if response.TotalHits != 3 {
		t.Errorf("totalHits = %d, want 3", response.TotalHits)
	}
	if len(response.Markers) != 2 {
		t.Fatalf("markers = %d, want 2", len(response.Markers))
	}
	for _, m := range response.Markers {
		if m.ID == "h3" {
			t.Errorf("coordinate-less record must not become a marker")
		}
	}
	// two points, framed on their midpoint
	if response.Viewport.Zoom < 8 || response.Viewport.Zoom > 12 {
		t.Errorf("viewport = %+v", response.Viewport)
	}
}

func TestFacetsHandler(t *testing.T) {
	srv := testServer(t)
	var counts []json.RawMessage
	getJSON(t, srv.URL+"/homes/facets", &counts)
	if len(counts) == 0 {
		t.Errorf("expected facet counts")
	}
}

func TestGetListing(t *testing.T) {
	srv := testServer(t)
	var record types.ListingRecord
	resp := getJSON(t, srv.URL+"/listing/c1", &record)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if record.Name != "Trinity Falls" {
		t.Errorf("record = %+v", record)
	}

	var failure map[string]string
	resp = getJSON(t, srv.URL+"/listing/nope", &failure)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
