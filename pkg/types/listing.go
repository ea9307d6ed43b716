package types

type ListingID string

type Kind string

const (
	KindCommunity Kind = "community"
	KindHome      Kind = "home"
	KindFloorplan Kind = "floorplan"
)

var Kinds = []Kind{KindCommunity, KindHome, KindFloorplan}

// ListingRecord is the generalized browse record shared by communities,
// homes and floor plans. Numeric facets are pointers so an absent value can
// be told apart from zero; an absent value passes range filters but fails
// explicit thresholds.
type ListingRecord struct {
	ID          ListingID `json:"id"`
	Kind        Kind      `json:"kind,omitempty"`
	Name        string    `json:"name"`
	Status      string    `json:"status,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Bedrooms    *float64  `json:"bedrooms,omitempty"`
	Bathrooms   *float64  `json:"bathrooms,omitempty"`
	SquareFeet  *float64  `json:"squareFeet,omitempty"`
	Garages     *float64  `json:"garages,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	County      string    `json:"county,omitempty"`
	CommunityID ListingID `json:"communityId,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Images      []string  `json:"images,omitempty"`
}

func (r *ListingRecord) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// FacetValue returns the record's value for a numeric facet, nil when the
// record does not carry that facet or the facet is not numeric.
func (r *ListingRecord) FacetValue(f Facet) *float64 {
	switch f {
	case FacetPrice:
		return r.Price
	case FacetBeds:
		return r.Bedrooms
	case FacetBaths:
		return r.Bathrooms
	case FacetSqft:
		return r.SquareFeet
	case FacetGarages:
		return r.Garages
	}
	return nil
}

// CategoricalValue returns the record's value for a categorical facet.
func (r *ListingRecord) CategoricalValue(f Facet) string {
	switch f {
	case FacetCity:
		return r.City
	case FacetCommunity:
		return string(r.CommunityID)
	case FacetCounty:
		return r.County
	}
	return ""
}
