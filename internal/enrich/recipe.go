package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dukerupert/larder/internal/model"
)

// RecipeClient matches recipes against a set of on-hand ingredient names.
type RecipeClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	number     int
}

func NewRecipeClient(baseURL, apiKey string) *RecipeClient {
	return &RecipeClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		number:     10,
	}
}

// MatchRecipes performs a single round trip and returns recipes in the
// provider's ranking order, each with its used/missed ingredient
// breakdown.
func (c *RecipeClient) MatchRecipes(ctx context.Context, ingredients []string) ([]model.RecipeMatch, error) {
	q := url.Values{}
	q.Set("ingredients", strings.Join(ingredients, ","))
	q.Set("number", fmt.Sprintf("%d", c.number))
	q.Set("ranking", "1")
	q.Set("apiKey", c.apiKey)
	reqURL := fmt.Sprintf("%s/recipes/findByIngredients?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create recipe request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("match recipes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe match returned status %d", resp.StatusCode)
	}

	var matches []model.RecipeMatch
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, fmt.Errorf("decode recipe response: %w", err)
	}
	return matches, nil
}
