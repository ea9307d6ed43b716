package types

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
)

type Facet string

const (
	FacetPrice     Facet = "price"
	FacetBeds      Facet = "beds"
	FacetBaths     Facet = "baths"
	FacetSqft      Facet = "sqft"
	FacetGarages   Facet = "garages"
	FacetCity      Facet = "city"
	FacetCommunity Facet = "community"
	FacetCounty    Facet = "county"
)

// AllFacets is the fixed facet order used for chips and counts.
var AllFacets = []Facet{
	FacetPrice, FacetBeds, FacetBaths, FacetSqft, FacetGarages,
	FacetCity, FacetCommunity, FacetCounty,
}

// IsRange reports whether a numeric facet uses range-bucket semantics
// (missing value passes) instead of threshold semantics (missing value
// fails once a concrete minimum is chosen).
func (f Facet) IsRange() bool {
	return f == FacetPrice
}

func (f Facet) IsCategorical() bool {
	switch f {
	case FacetCity, FacetCommunity, FacetCounty:
		return true
	}
	return false
}

// AnyCategory is the sentinel for an unconstrained categorical facet.
const AnyCategory = "all"

// Threshold is a tagged "at least N" selector. The zero value is the
// unconstrained "any" state.
type Threshold struct {
	min float64
	set bool
}

func AnyThreshold() Threshold {
	return Threshold{}
}

func AtLeast(n float64) Threshold {
	return Threshold{min: n, set: true}
}

func (t Threshold) IsAny() bool {
	return !t.set
}

func (t Threshold) Min() (float64, bool) {
	return t.min, t.set
}

// Passes applies the asymmetric missing-data rule: "any" accepts every
// record, a concrete minimum rejects records without a value.
func (t Threshold) Passes(value *float64) bool {
	if !t.set {
		return true
	}
	return value != nil && *value >= t.min
}

func (t Threshold) String() string {
	if !t.set {
		return "any"
	}
	return strconv.FormatFloat(t.min, 'f', -1, 64)
}

func (t Threshold) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Threshold) UnmarshalText(data []byte) error {
	s := string(data)
	if s == "" || s == "any" {
		*t = Threshold{}
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("threshold %q: %w", s, err)
	}
	*t = Threshold{min: n, set: true}
	return nil
}

// Bucket is one named sub-range of a range-selector facet. An unbounded
// upper edge is represented as +Inf.
type Bucket struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

func (b Bucket) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

func (b Bucket) MarshalJSON() ([]byte, error) {
	if math.IsInf(b.Max, 1) {
		return []byte(fmt.Sprintf(`{"label":%q,"min":%s}`,
			b.Label, strconv.FormatFloat(b.Min, 'f', -1, 64))), nil
	}
	return []byte(fmt.Sprintf(`{"label":%q,"min":%s,"max":%s}`,
		b.Label,
		strconv.FormatFloat(b.Min, 'f', -1, 64),
		strconv.FormatFloat(b.Max, 'f', -1, 64))), nil
}

// PriceBuckets is the fixed price-range table. Index 0 is always the
// unconstrained "Any" bucket.
var PriceBuckets = []Bucket{
	{Label: "Any", Min: 0, Max: math.Inf(1)},
	{Label: "Under $300,000", Min: 0, Max: 300000},
	{Label: "$300,000 - $400,000", Min: 300000, Max: 400000},
	{Label: "$400,000 - $500,000", Min: 400000, Max: 500000},
	{Label: "$500,000 - $600,000", Min: 500000, Max: 600000},
	{Label: "$600,000 - $750,000", Min: 600000, Max: 750000},
	{Label: "$750,000+", Min: 750000, Max: math.Inf(1)},
}

// FilterState is the flat facet selection for one browse view. Instances
// are replaced wholesale on change, never mutated in place.
type FilterState struct {
	PriceRange int       `json:"priceRange" schema:"price"`
	Beds       Threshold `json:"beds" schema:"beds"`
	Baths      Threshold `json:"baths" schema:"baths"`
	Sqft       Threshold `json:"sqft" schema:"sqft"`
	Garages    Threshold `json:"garages" schema:"garages"`
	City       string    `json:"city" schema:"city"`
	Community  ListingID `json:"community" schema:"community"`
	County     string    `json:"county" schema:"county"`
}

func DefaultFilters() *FilterState {
	return &FilterState{
		City:      AnyCategory,
		Community: AnyCategory,
		County:    AnyCategory,
	}
}

func (f *FilterState) Sanitize() {
	if f.PriceRange < 0 || f.PriceRange >= len(PriceBuckets) {
		f.PriceRange = 0
	}
	if f.City == "" {
		f.City = AnyCategory
	}
	if f.Community == "" {
		f.Community = AnyCategory
	}
	if f.County == "" {
		f.County = AnyCategory
	}
}

// IsDefault reports whether one facet is in its unconstrained state.
func (f *FilterState) IsDefault(facet Facet) bool {
	switch facet {
	case FacetPrice:
		return f.PriceRange == 0
	case FacetBeds:
		return f.Beds.IsAny()
	case FacetBaths:
		return f.Baths.IsAny()
	case FacetSqft:
		return f.Sqft.IsAny()
	case FacetGarages:
		return f.Garages.IsAny()
	case FacetCity:
		return f.City == AnyCategory
	case FacetCommunity:
		return string(f.Community) == AnyCategory
	case FacetCounty:
		return f.County == AnyCategory
	}
	return true
}

// WithOut returns a copy with one facet reset to its default, used when
// counting that facet against the other active constraints.
func (f *FilterState) WithOut(facet Facet) *FilterState {
	result := *f
	switch facet {
	case FacetPrice:
		result.PriceRange = 0
	case FacetBeds:
		result.Beds = Threshold{}
	case FacetBaths:
		result.Baths = Threshold{}
	case FacetSqft:
		result.Sqft = Threshold{}
	case FacetGarages:
		result.Garages = Threshold{}
	case FacetCity:
		result.City = AnyCategory
	case FacetCommunity:
		result.Community = AnyCategory
	case FacetCounty:
		result.County = AnyCategory
	}
	return &result
}

// WithReset returns a copy with one facet reset, the chip-dismiss
// operation. It is the same transform as WithOut under a name that
// matches its caller's intent.
func (f *FilterState) WithReset(facet Facet) *FilterState {
	return f.WithOut(facet)
}

// Threshold returns the selector for a threshold facet.
func (f *FilterState) Threshold(facet Facet) Threshold {
	switch facet {
	case FacetBeds:
		return f.Beds
	case FacetBaths:
		return f.Baths
	case FacetSqft:
		return f.Sqft
	case FacetGarages:
		return f.Garages
	}
	return Threshold{}
}

// Categorical returns the selection for a categorical facet.
func (f *FilterState) Categorical(facet Facet) string {
	switch facet {
	case FacetCity:
		return f.City
	case FacetCommunity:
		return string(f.Community)
	case FacetCounty:
		return f.County
	}
	return AnyCategory
}

// Values serializes the non-default facets back to URL query parameters so
// filter state survives navigation and sharing.
func (f *FilterState) Values() url.Values {
	v := url.Values{}
	if f.PriceRange != 0 {
		v.Set("price", strconv.Itoa(f.PriceRange))
	}
	for _, facet := range []Facet{FacetBeds, FacetBaths, FacetSqft, FacetGarages} {
		if t := f.Threshold(facet); !t.IsAny() {
			v.Set(string(facet), t.String())
		}
	}
	for _, facet := range []Facet{FacetCity, FacetCommunity, FacetCounty} {
		if c := f.Categorical(facet); c != AnyCategory && c != "" {
			v.Set(string(facet), c)
		}
	}
	return v
}
