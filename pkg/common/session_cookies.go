package common

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hearthside/homefinder/pkg/tracking"
)

func generateSessionID() int {
	return int(time.Now().UnixNano())
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, sessionID int) {
	http.SetCookie(w, &http.Cookie{
		Name:     "sid",
		Value:    fmt.Sprintf("%d", sessionID),
		Domain:   strings.TrimPrefix(r.Host, "."),
		SameSite: http.SameSiteNoneMode,
		HttpOnly: true,
		MaxAge:   2592000,
		Path:     "/",
	})
}

// HandleSessionCookie reads the session cookie, minting and tracking a new
// session when none exists.
func HandleSessionCookie(trk tracking.Tracking, w http.ResponseWriter, r *http.Request) int {
	sessionID := generateSessionID()
	c, err := r.Cookie("sid")
	if err != nil {
		if trk != nil {
			go trk.TrackSession(uint32(sessionID), r)
		}
		setSessionCookie(w, r, sessionID)
	} else {
		sessionID, err = strconv.Atoi(c.Value)
		if err != nil {
			setSessionCookie(w, r, sessionID)
		}
	}
	return sessionID
}
