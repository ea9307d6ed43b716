package types

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
)

// BrowseRequest is one page-worth of browse parameters: the filter state,
// a sort key and pagination.
type BrowseRequest struct {
	FilterState
	Sort     SortKey `json:"sort" schema:"sort,default:featured"`
	Page     int     `json:"page" schema:"page"`
	PageSize int     `json:"pageSize" schema:"size,default:24"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func clamp[T int | float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func (b *BrowseRequest) Sanitize() {
	b.Page = clamp(b.Page, 0, 100)
	b.PageSize = clamp(b.PageSize, 1, 500)
	b.Sort = b.Sort.Normalize()
	b.FilterState.Sanitize()
}

func makeBaseBrowseRequest() *BrowseRequest {
	return &BrowseRequest{
		FilterState: *DefaultFilters(),
		Sort:        SortFeatured,
		Page:        0,
		PageSize:    24,
	}
}

// GetBrowseQueryFromRequest decodes a browse request from URL query
// parameters on GET and from a JSON body otherwise.
func GetBrowseQueryFromRequest(r *http.Request) (*BrowseRequest, error) {
	br := makeBaseBrowseRequest()
	var err error
	if r.Method == http.MethodGet {
		err = browseQueryFromValues(r.URL.Query(), br)
	} else {
		err = json.NewDecoder(r.Body).Decode(br)
	}
	br.Sanitize()
	return br, err
}

func browseQueryFromValues(query url.Values, result *BrowseRequest) error {
	return decoder.Decode(result, query)
}
