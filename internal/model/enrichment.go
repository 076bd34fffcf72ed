package model

// ProductCandidate is the transient result of a barcode lookup, optionally
// annotated with a category. It is never persisted; a confirmed candidate
// becomes a GroceryItem through the list repository.
type ProductCandidate struct {
	UPC                 string   `json:"upc"`
	Title               string   `json:"title"`
	Brand               string   `json:"brand,omitempty"`
	LowestRecordedPrice float64  `json:"lowest_recorded_price"`
	Description         string   `json:"description,omitempty"`
	Images              []string `json:"images,omitempty"`
	Category            string   `json:"category,omitempty"`
	USDACode            int      `json:"usda_code,omitempty"`
}

// CategoryResult is the transient result of classifying a product title.
type CategoryResult struct {
	Category string `json:"category"`
	USDACode int    `json:"usdaCode,omitempty"`
}

// Ingredient is one used or missed ingredient in a recipe match.
type Ingredient struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit,omitempty"`
	Name   string  `json:"name"`
}

// RecipeMatch is a recipe ranked by the provider against the current
// inventory, with the breakdown of ingredients the inventory already
// satisfies versus is missing.
type RecipeMatch struct {
	ID                    int64        `json:"id"`
	Title                 string       `json:"title"`
	Image                 string       `json:"image,omitempty"`
	UsedIngredientCount   int          `json:"usedIngredientCount"`
	MissedIngredientCount int          `json:"missedIngredientCount"`
	UsedIngredients       []Ingredient `json:"usedIngredients,omitempty"`
	MissedIngredients     []Ingredient `json:"missedIngredients,omitempty"`
}
