package mapsync

import "github.com/hearthside/homefinder/pkg/types"

type coordinate struct {
	lat float64
	lng float64
}

// Synchronizer keeps hover/select state shared between a card list and the
// map-marker layer, and drives marker and camera state through the Widget.
// It is owned by a single UI scope and expects events in dispatch order;
// it is not safe for concurrent use.
type Synchronizer struct {
	widget      Widget
	coords      map[types.ListingID]coordinate
	hoveredID   types.ListingID
	selectedID  types.ListingID
	interacting bool
	ready       bool
	pending     []types.ListingRecord
}

func NewSynchronizer(widget Widget) *Synchronizer {
	return &Synchronizer{
		widget: widget,
		coords: map[types.ListingID]coordinate{},
	}
}

func (s *Synchronizer) HoveredID() types.ListingID  { return s.hoveredID }
func (s *Synchronizer) SelectedID() types.ListingID { return s.selectedID }

// Highlighted reports the marker visual state: highlighted iff the id is
// hovered or selected, one treatment for both.
func (s *Synchronizer) Highlighted(id types.ListingID) bool {
	return id != "" && (id == s.hoveredID || id == s.selectedID)
}

// SetRecords replaces the marker set with the given (typically filtered)
// records. Records without coordinates get no marker but stay in the card
// list, so the two views may disagree in count. Before the widget reports
// its load event the records are held back and applied on MapLoaded.
func (s *Synchronizer) SetRecords(records []types.ListingRecord) {
	if !s.ready {
		s.pending = records
		return
	}
	next := make(map[types.ListingID]coordinate, len(records))
	for i := range records {
		r := &records[i]
		if !r.HasCoordinates() {
			continue
		}
		next[r.ID] = coordinate{lat: *r.Latitude, lng: *r.Longitude}
	}
	for id := range s.coords {
		if _, keep := next[id]; !keep {
			s.widget.RemoveMarker(id)
			if id == s.selectedID {
				s.widget.ClosePopup()
				s.selectedID = ""
			}
			if id == s.hoveredID {
				s.hoveredID = ""
			}
		}
	}
	for id, c := range next {
		if _, exists := s.coords[id]; !exists {
			s.widget.AddMarker(id, c.lat, c.lng)
			if s.Highlighted(id) {
				s.widget.SetHighlight(id, true)
			}
		}
	}
	s.coords = next
}

// MapLoaded opens the ready gate: no marker placement or camera movement
// happens before the widget reports its load event.
func (s *Synchronizer) MapLoaded() {
	if s.ready {
		return
	}
	s.ready = true
	records := s.pending
	s.pending = nil
	s.SetRecords(records)
	s.widget.SetViewport(Frame(records))
}

func (s *Synchronizer) GestureStarted() { s.interacting = true }
func (s *Synchronizer) GestureEnded()   { s.interacting = false }

// Hover moves the hovered id and evaluates the camera-follow policy. The
// camera moves only when the id actually changed, nothing is selected, the
// map has loaded and no gesture is in progress.
func (s *Synchronizer) Hover(id types.ListingID) {
	if id == s.hoveredID {
		return
	}
	prev := s.hoveredID
	s.hoveredID = id
	if s.ready {
		if prev != "" && prev != s.selectedID {
			s.widget.SetHighlight(prev, false)
		}
		if id != "" && id != s.selectedID {
			s.widget.SetHighlight(id, true)
		}
	}
	if id == "" || s.selectedID != "" || !s.ready || s.interacting {
		return
	}
	if c, ok := s.coords[id]; ok {
		s.widget.FlyTo(c.lat, c.lng)
	}
}

// ClearHover handles the pointer leaving a card or marker.
func (s *Synchronizer) ClearHover() {
	s.Hover("")
}

// Select makes a record the selection, flies the camera to it
// unconditionally and opens the single detail popup, closing any previous
// one first. Selecting an empty id clears the selection.
func (s *Synchronizer) Select(id types.ListingID) {
	if s.selectedID != "" {
		if s.ready {
			s.widget.ClosePopup()
			if s.selectedID != s.hoveredID {
				s.widget.SetHighlight(s.selectedID, false)
			}
		}
		s.selectedID = ""
	}
	if id == "" {
		return
	}
	s.selectedID = id
	if !s.ready {
		return
	}
	s.widget.SetHighlight(id, true)
	if c, ok := s.coords[id]; ok {
		s.widget.FlyTo(c.lat, c.lng)
		s.widget.OpenPopup(id, c.lat, c.lng)
	}
}

// Deselect is the explicit close: popup removed, selection cleared.
func (s *Synchronizer) Deselect() {
	s.Select("")
}

// Close synchronously removes every marker and releases the widget handle
// so nothing leaks across page navigations.
func (s *Synchronizer) Close() {
	for id := range s.coords {
		s.widget.RemoveMarker(id)
	}
	s.coords = map[types.ListingID]coordinate{}
	if s.selectedID != "" {
		s.widget.ClosePopup()
		s.selectedID = ""
	}
	s.hoveredID = ""
	s.widget.Release()
}
