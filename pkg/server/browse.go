package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hearthside/homefinder/pkg/common"
	"github.com/hearthside/homefinder/pkg/facet"
	"github.com/hearthside/homefinder/pkg/listing"
	"github.com/hearthside/homefinder/pkg/mapsync"
	"github.com/hearthside/homefinder/pkg/types"
)

var (
	noBrowses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "homefinder_browses_total",
		Help: "The total number of processed browse requests",
	})
	noFacetQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "homefinder_facet_queries_total",
		Help: "The total number of processed facet count requests",
	})
	noMarkerQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "homefinder_marker_queries_total",
		Help: "The total number of processed marker requests",
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "homefinder_browse_cache_hits_total",
		Help: "The total number of browse responses served from cache",
	})
)

type BrowseResponse struct {
	Items     []types.ListingRecord `json:"items"`
	TotalHits int                   `json:"totalHits"`
	Page      int                   `json:"page"`
	PageSize  int                   `json:"pageSize"`
	Sort      types.SortKey         `json:"sort"`
	Facets    []facet.FacetCounts   `json:"facets"`
	Chips     []facet.Chip          `json:"chips"`
}

type Marker struct {
	ID        types.ListingID `json:"id"`
	Name      string          `json:"name"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Price     *float64        `json:"price,omitempty"`
}

type MarkerResponse struct {
	Markers  []Marker         `json:"markers"`
	Viewport mapsync.Viewport `json:"viewport"`
	// TotalHits counts the filtered records including those without
	// coordinates, so the card list and the marker layer may disagree.
	TotalHits int `json:"totalHits"`
}

func paginate(records []types.ListingRecord, page, pageSize int) []types.ListingRecord {
	start := page * pageSize
	if start >= len(records) {
		return records[0:0]
	}
	end := min(len(records), start+pageSize)
	return records[start:end]
}

func (ws *WebServer) cacheKey(kind types.Kind, r *http.Request) string {
	return fmt.Sprintf("browse:%s:%s", kind, r.URL.RawQuery)
}

func (ws *WebServer) serveFromCache(w http.ResponseWriter, key string) bool {
	if ws.Cache == nil {
		return false
	}
	data, err := ws.Cache.GetRaw(key)
	if err != nil || len(data) == 0 {
		return false
	}
	cacheHits.Inc()
	common.DefaultHeaders(w, true, "120")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
	return true
}

// BrowseHandler serves the filtered, sorted page for one listing kind
// together with live facet counts and the active-filter chips.
func (ws *WebServer) BrowseHandler(kind types.Kind) http.HandlerFunc {
	return common.JsonHandler(ws.Tracking, func(w http.ResponseWriter, r *http.Request, sessionID int, enc *json.Encoder) error {
		noBrowses.Inc()
		key := ws.cacheKey(kind, r)
		if r.Method == http.MethodGet && ws.serveFromCache(w, key) {
			return nil
		}
		br, err := types.GetBrowseQueryFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return enc.Encode(map[string]string{"error": err.Error()})
		}

		records := ws.Index.All(kind)
		filtered := listing.ApplyFilters(records, &br.FilterState)
		sorted := listing.ApplySort(filtered, br.Sort)

		response := BrowseResponse{
			Items:     paginate(sorted, br.Page, br.PageSize),
			TotalHits: len(sorted),
			Page:      br.Page,
			PageSize:  br.PageSize,
			Sort:      br.Sort.Normalize(),
			Facets:    facet.CollectCounts(records, &br.FilterState),
			Chips: facet.Summarize(&br.FilterState, facet.Lookups{
				CommunityNames: ws.Index.CommunityNames(),
			}),
		}

		if ws.Tracking != nil {
			go ws.Tracking.TrackBrowse(uint32(sessionID), kind, br.FilterState.Values().Encode(), len(sorted))
		}

		common.DefaultHeaders(w, true, "120")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet && ws.Cache != nil {
			out, flush := MakeCacheWriter(w, key, ws.Cache.SetRaw)
			defer flush()
			return json.NewEncoder(out).Encode(response)
		}
		return enc.Encode(response)
	})
}

// FacetsHandler serves just the bucket counts for one listing kind.
func (ws *WebServer) FacetsHandler(kind types.Kind) http.HandlerFunc {
	return common.JsonHandler(ws.Tracking, func(w http.ResponseWriter, r *http.Request, sessionID int, enc *json.Encoder) error {
		noFacetQueries.Inc()
		br, err := types.GetBrowseQueryFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return enc.Encode(map[string]string{"error": err.Error()})
		}
		records := ws.Index.All(kind)
		common.DefaultHeaders(w, true, "120")
		w.WriteHeader(http.StatusOK)
		return enc.Encode(facet.CollectCounts(records, &br.FilterState))
	})
}

// MarkersHandler serves map markers for the filtered set plus its initial
// viewport framing. Records without coordinates stay out of the marker
// layer but are still counted.
func (ws *WebServer) MarkersHandler(kind types.Kind) http.HandlerFunc {
	return common.JsonHandler(ws.Tracking, func(w http.ResponseWriter, r *http.Request, sessionID int, enc *json.Encoder) error {
		noMarkerQueries.Inc()
		br, err := types.GetBrowseQueryFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return enc.Encode(map[string]string{"error": err.Error()})
		}
		filtered := listing.ApplyFilters(ws.Index.All(kind), &br.FilterState)
		markers := make([]Marker, 0, len(filtered))
		for i := range filtered {
			record := &filtered[i]
			if !record.HasCoordinates() {
				continue
			}
			markers = append(markers, Marker{
				ID:        record.ID,
				Name:      record.Name,
				Latitude:  *record.Latitude,
				Longitude: *record.Longitude,
				Price:     record.Price,
			})
		}
		common.DefaultHeaders(w, true, "120")
		w.WriteHeader(http.StatusOK)
		return enc.Encode(MarkerResponse{
			Markers:   markers,
			Viewport:  mapsync.Frame(filtered),
			TotalHits: len(filtered),
		})
	})
}

// GetListing looks a single listing up by id across every kind.
func (ws *WebServer) GetListing(w http.ResponseWriter, r *http.Request, sessionID int, enc *json.Encoder) error {
	id := types.ListingID(strings.TrimPrefix(r.URL.Path, "/listing/"))
	record, ok := ws.Index.Get(id)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return enc.Encode(map[string]string{"error": "listing not found"})
	}
	common.DefaultHeaders(w, true, "300")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(record)
}
