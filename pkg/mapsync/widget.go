package mapsync

import "github.com/hearthside/homefinder/pkg/types"

// Widget is the minimal capability surface of the third-party map
// provider. Keeping it this small lets the synchronizer's transitions run
// against a fake in tests, without a rendering engine.
type Widget interface {
	AddMarker(id types.ListingID, lat, lng float64)
	RemoveMarker(id types.ListingID)
	SetHighlight(id types.ListingID, highlighted bool)
	FlyTo(lat, lng float64)
	SetViewport(v Viewport)
	OpenPopup(id types.ListingID, lat, lng float64)
	ClosePopup()
	Release()
}
