package mapsync

import (
	"testing"

	"github.com/hearthside/homefinder/pkg/types"
)

func TestFrame_NoCoordinatesFallsBackToDefault(t *testing.T) {
	records := []types.ListingRecord{{ID: "a"}, {ID: "b"}}
	if got := Frame(records); got != DefaultViewport {
		t.Errorf("expected the fixed default viewport, got %+v", got)
	}
}

func TestFrame_SinglePoint(t *testing.T) {
	records := []types.ListingRecord{
		{ID: "a", Latitude: num(33.15), Longitude: num(-96.82)},
		{ID: "b"},
	}
	got := Frame(records)
	if got.Latitude != 33.15 || got.Longitude != -96.82 {
		t.Errorf("expected centering on the single point, got %+v", got)
	}
	if got.Zoom != singlePointZoom {
		t.Errorf("expected single-point zoom %d, got %d", singlePointZoom, got.Zoom)
	}
}

func TestFrame_MultiplePointsCenterOnMidpoint(t *testing.T) {
	records := []types.ListingRecord{
		{ID: "a", Latitude: num(33.0), Longitude: num(-97.0)},
		{ID: "b", Latitude: num(33.2), Longitude: num(-96.6)},
	}
	got := Frame(records)
	if got.Latitude != 33.1 {
		t.Errorf("expected midpoint latitude 33.1, got %f", got.Latitude)
	}
	if got.Longitude != -96.8 {
		t.Errorf("expected midpoint longitude -96.8, got %f", got.Longitude)
	}
}

func TestZoomForSpan_Tiers(t *testing.T) {
	cases := []struct {
		span float64
		zoom int
	}{
		{2.5, 8},
		{1.5, 9},
		{0.7, 10},
		{0.3, 11},
		{0.1, 12},
		{2.0, 9},  // boundary: 2 is not greater than 2
		{0.2, 12}, // boundary: 0.2 is not greater than 0.2
	}
	for _, c := range cases {
		if got := zoomForSpan(c.span); got != c.zoom {
			t.Errorf("zoomForSpan(%v) = %d, want %d", c.span, got, c.zoom)
		}
	}
}

func TestFrame_UsesLargerSpan(t *testing.T) {
	// Narrow in latitude, wide in longitude: the wider span picks the tier.
	records := []types.ListingRecord{
		{ID: "a", Latitude: num(33.0), Longitude: num(-98.5)},
		{ID: "b", Latitude: num(33.1), Longitude: num(-96.0)},
	}
	if got := Frame(records); got.Zoom != 8 {
		t.Errorf("expected tier for a 2.5 degree span, got zoom %d", got.Zoom)
	}
}
