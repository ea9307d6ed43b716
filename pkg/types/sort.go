package types

// SortKey selects a comparator for the browse result. "featured" keeps
// the collection's own order.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortSqftAsc   SortKey = "sqft-asc"
	SortSqftDesc  SortKey = "sqft-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNewest    SortKey = "newest"
)

// Normalize degrades unrecognized keys to featured instead of failing.
func (k SortKey) Normalize() SortKey {
	switch k {
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortSqftAsc, SortSqftDesc, SortNameAsc, SortNewest:
		return k
	}
	return SortFeatured
}
