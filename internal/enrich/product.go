// Package enrich implements the external lookup chain that turns a scanned
// barcode into a human-confirmable product candidate, plus recipe matching
// against the current inventory. None of the calls here retry: a failure
// surfaces once to the caller.
package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dukerupert/larder/internal/model"
)

// ErrProductNotFound marks an empty lookup result. It is a distinct,
// non-error outcome for the UI: "no such product", not "network error".
var ErrProductNotFound = errors.New("product not found")

// ProductClient resolves a UPC to product metadata.
type ProductClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewProductClient creates a product lookup client against the given API
// base URL.
func NewProductClient(baseURL string) *ProductClient {
	return &ProductClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

type productResponse struct {
	Items []struct {
		Title               string      `json:"title"`
		Brand               string      `json:"brand"`
		LowestRecordedPrice json.Number `json:"lowest_recorded_price"`
		Description         string      `json:"description"`
		Images              []string    `json:"images"`
	} `json:"items"`
}

// Lookup performs a single round trip for the UPC and returns the first
// matching candidate. An empty result list is ErrProductNotFound.
func (c *ProductClient) Lookup(ctx context.Context, upc string) (model.ProductCandidate, error) {
	reqURL := fmt.Sprintf("%s/lookup?upc=%s", c.baseURL, url.QueryEscape(upc))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return model.ProductCandidate{}, fmt.Errorf("create lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.ProductCandidate{}, fmt.Errorf("product lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.ProductCandidate{}, ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return model.ProductCandidate{}, fmt.Errorf("product lookup returned status %d", resp.StatusCode)
	}

	var pr productResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return model.ProductCandidate{}, fmt.Errorf("decode lookup response: %w", err)
	}
	if len(pr.Items) == 0 {
		return model.ProductCandidate{}, ErrProductNotFound
	}

	first := pr.Items[0]
	price, _ := first.LowestRecordedPrice.Float64()
	return model.ProductCandidate{
		UPC:                 upc,
		Title:               first.Title,
		Brand:               first.Brand,
		LowestRecordedPrice: price,
		Description:         first.Description,
		Images:              first.Images,
	}, nil
}
