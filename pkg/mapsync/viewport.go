package mapsync

import "github.com/hearthside/homefinder/pkg/types"

// Viewport is an initial map framing: a center and a discrete zoom level.
type Viewport struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// DefaultViewport frames the builder's market area when no listing carries
// coordinates.
var DefaultViewport = Viewport{Latitude: 32.7767, Longitude: -96.797, Zoom: 9}

const singlePointZoom = 13

// zoomForSpan picks a zoom tier from the larger of the lat/lng spans. A
// step function, not a continuous fit; the breakpoints are part of the
// observable behavior.
func zoomForSpan(span float64) int {
	switch {
	case span > 2:
		return 8
	case span > 1:
		return 9
	case span > 0.5:
		return 10
	case span > 0.2:
		return 11
	default:
		return 12
	}
}

// Frame computes the initial viewport for a record set. Records without
// coordinates are skipped; zero eligible points falls back to the default,
// one point centers on it at a fixed zoom, more points center on the
// bounding-box midpoint at a tiered zoom.
func Frame(records []types.ListingRecord) Viewport {
	var minLat, maxLat, minLng, maxLng float64
	count := 0
	for i := range records {
		if !records[i].HasCoordinates() {
			continue
		}
		lat, lng := *records[i].Latitude, *records[i].Longitude
		if count == 0 {
			minLat, maxLat, minLng, maxLng = lat, lat, lng, lng
		} else {
			minLat = min(minLat, lat)
			maxLat = max(maxLat, lat)
			minLng = min(minLng, lng)
			maxLng = max(maxLng, lng)
		}
		count++
	}
	switch count {
	case 0:
		return DefaultViewport
	case 1:
		return Viewport{Latitude: minLat, Longitude: minLng, Zoom: singlePointZoom}
	}
	span := max(maxLat-minLat, maxLng-minLng)
	return Viewport{
		Latitude:  (minLat + maxLat) / 2,
		Longitude: (minLng + maxLng) / 2,
		Zoom:      zoomForSpan(span),
	}
}
