package enrich

import (
	"context"
	"log/slog"

	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/sync"
)

// ProductLookup resolves a UPC to a product candidate.
type ProductLookup interface {
	Lookup(ctx context.Context, upc string) (model.ProductCandidate, error)
}

// Classifier resolves a product title to a category annotation.
type Classifier interface {
	Classify(ctx context.Context, title string) (model.CategoryResult, error)
}

// RecipeMatcher ranks recipes against a set of ingredient names.
type RecipeMatcher interface {
	MatchRecipes(ctx context.Context, ingredients []string) ([]model.RecipeMatch, error)
}

// RecipeMemo caches recipe matches keyed by inventory snapshot identity.
// Satisfied by *sync.Controller.
type RecipeMemo interface {
	RememberRecipeMatches(key string, matches []model.RecipeMatch)
	CachedRecipeMatches(key string) ([]model.RecipeMatch, bool)
}

// Orchestrator drives the scan-to-candidate pipeline and the memoized
// recipe matching step.
type Orchestrator struct {
	products ProductLookup
	category Classifier
	recipes  RecipeMatcher
	logger   *slog.Logger
}

func NewOrchestrator(products ProductLookup, category Classifier, recipes RecipeMatcher, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		products: products,
		category: category,
		recipes:  recipes,
		logger:   logger,
	}
}

// Scan resolves a raw barcode into a candidate ready for user
// confirmation. A failed or empty lookup aborts the pipeline with no
// partial candidate; a failed classification does not, and the candidate
// proceeds uncategorized. Scan never persists anything: the confirmed
// candidate is written by the caller through the list repository.
func (o *Orchestrator) Scan(ctx context.Context, upc string) (model.ProductCandidate, error) {
	candidate, err := o.products.Lookup(ctx, upc)
	if err != nil {
		return model.ProductCandidate{}, err
	}

	result, err := o.category.Classify(ctx, candidate.Title)
	if err != nil {
		o.logger.Warn("classification failed, continuing without category",
			"title", candidate.Title, "error", err)
		return candidate, nil
	}
	candidate.Category = result.Category
	candidate.USDACode = result.USDACode
	return candidate, nil
}

// MatchRecipes returns recipes ranked against the given inventory
// projection. When the projection's identity matches the memo no external
// call is made; any change to the projection busts the memo. An empty
// inventory yields no matches and no call.
func (o *Orchestrator) MatchRecipes(ctx context.Context, inventory []model.InventoryItem, memo RecipeMemo) ([]model.RecipeMatch, error) {
	key := sync.SnapshotKey(inventory)
	if matches, ok := memo.CachedRecipeMatches(key); ok {
		return matches, nil
	}

	names := ingredientNames(inventory)
	if len(names) == 0 {
		memo.RememberRecipeMatches(key, nil)
		return nil, nil
	}

	matches, err := o.recipes.MatchRecipes(ctx, names)
	if err != nil {
		return nil, err
	}
	memo.RememberRecipeMatches(key, matches)
	return matches, nil
}

func ingredientNames(inventory []model.InventoryItem) []string {
	seen := make(map[string]struct{}, len(inventory))
	names := make([]string, 0, len(inventory))
	for _, item := range inventory {
		if item.Name == "" {
			continue
		}
		if _, ok := seen[item.Name]; ok {
			continue
		}
		seen[item.Name] = struct{}{}
		names = append(names, item.Name)
	}
	return names
}
