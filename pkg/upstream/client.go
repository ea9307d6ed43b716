package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/hearthside/homefinder/pkg/storage"
	"github.com/hearthside/homefinder/pkg/types"
)

// Client fetches the full listing collections from the backend content
// API. The API returns each collection wrapped in a data envelope.
type Client struct {
	baseURL string
	key     string
	http    *retryablehttp.Client
}

func NewClient(baseURL, apiKey string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 10 * time.Second
	rc.Logger = nil

	return &Client{
		baseURL: baseURL,
		key:     apiKey,
		http:    rc,
	}
}

type envelope struct {
	Data []types.ListingRecord `json:"data"`
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

// FetchKind pulls one collection. The kind is stamped onto each record
// since the API does not repeat it per item.
func (c *Client) FetchKind(ctx context.Context, kind types.Kind) ([]types.ListingRecord, error) {
	u := fmt.Sprintf("%s/api/%s", c.baseURL, kindPath(kind))
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")
	if c.key != "" {
		req.Header.Set("apikey", c.key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("upstream error %d fetching %s", resp.StatusCode, kindPath(kind))
	}
	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	for i := range body.Data {
		body.Data[i].Kind = kind
	}
	return body.Data, nil
}

// FetchAll pulls every collection into a snapshot.
func (c *Client) FetchAll(ctx context.Context) (storage.Snapshot, error) {
	s := storage.Snapshot{}
	for _, kind := range types.Kinds {
		records, err := c.FetchKind(ctx, kind)
		if err != nil {
			return nil, err
		}
		s[kind] = records
	}
	return s, nil
}
