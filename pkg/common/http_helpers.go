package common

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/hearthside/homefinder/pkg/tracking"
)

// JsonHandler wraps a handler with OPTIONS handling, session cookie
// management and a ready JSON encoder. Handler errors are logged, not
// surfaced; the browse surface degrades silently.
func JsonHandler(trk tracking.Tracking, fn func(w http.ResponseWriter, r *http.Request, sessionID int, enc *json.Encoder) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			RespondToOptions(w, r)
			return
		}
		sessionID := HandleSessionCookie(trk, w, r)

		if err := fn(w, r, sessionID, json.NewEncoder(w)); err != nil {
			log.Printf("Error handling request: %v", err)
		}
	}
}

func RespondToOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
	w.WriteHeader(http.StatusAccepted)
}

// DefaultHeaders sets the response headers shared by the browse endpoints.
func DefaultHeaders(w http.ResponseWriter, cors bool, maxAge string) {
	if cors {
		w.Header().Set("Access-Control-Allow-Origin", "*")
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age="+maxAge)
}
