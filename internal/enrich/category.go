package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dukerupert/larder/internal/model"
)

// CategoryClient classifies a product title into a grocery category,
// optionally with a USDA nutrition code. Keyed by title text, not UPC.
type CategoryClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewCategoryClient(baseURL, apiKey string) *CategoryClient {
	return &CategoryClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Classify performs a single round trip for the title. The API credential
// rides along as a query parameter.
func (c *CategoryClient) Classify(ctx context.Context, title string) (model.CategoryResult, error) {
	q := url.Values{}
	q.Set("title", title)
	q.Set("api_key", c.apiKey)
	reqURL := fmt.Sprintf("%s/classify?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return model.CategoryResult{}, fmt.Errorf("create classify request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.CategoryResult{}, fmt.Errorf("classify %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.CategoryResult{}, fmt.Errorf("classify returned status %d", resp.StatusCode)
	}

	var result model.CategoryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.CategoryResult{}, fmt.Errorf("decode classify response: %w", err)
	}
	return result, nil
}
