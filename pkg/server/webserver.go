package server

import (
	"net/http"

	"github.com/hearthside/homefinder/pkg/common"
	"github.com/hearthside/homefinder/pkg/index"
	"github.com/hearthside/homefinder/pkg/tracking"
	"github.com/hearthside/homefinder/pkg/types"
)

// WebServer serves the browse API over the in-memory listing index.
type WebServer struct {
	Index    *index.Index
	Cache    *Cache
	Tracking tracking.Tracking
}

func kindPath(kind types.Kind) string {
	switch kind {
	case types.KindCommunity:
		return "communities"
	case types.KindFloorplan:
		return "floorplans"
	default:
		return "homes"
	}
}

// ClientHandler wires the browse endpoints for every listing kind plus the
// single-listing lookup.
func (ws *WebServer) ClientHandler() http.Handler {
	mux := http.NewServeMux()
	for _, kind := range types.Kinds {
		prefix := "/" + kindPath(kind)
		mux.HandleFunc(prefix, ws.BrowseHandler(kind))
		mux.HandleFunc(prefix+"/facets", ws.FacetsHandler(kind))
		mux.HandleFunc(prefix+"/markers", ws.MarkersHandler(kind))
	}
	mux.HandleFunc("/listing/", common.JsonHandler(ws.Tracking, ws.GetListing))
	return mux
}
