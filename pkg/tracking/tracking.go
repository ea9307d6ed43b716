package tracking

import (
	"net/http"

	"github.com/hearthside/homefinder/pkg/types"
)

// Tracking publishes browse analytics. A nil Tracking disables tracking
// everywhere it is consumed.
type Tracking interface {
	TrackSession(sessionID uint32, r *http.Request)
	TrackBrowse(sessionID uint32, kind types.Kind, query string, results int)
}
