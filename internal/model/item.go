package model

// InventoryItem is an on-hand item under users/{userID}/inventory/{id}.
// ID is assigned by the realtime store on creation and never changes.
type InventoryItem struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	UPC      string `json:"upc,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// GroceryItem is a to-buy item under users/{userID}/groceryList/{id}.
type GroceryItem struct {
	ID             string  `json:"id,omitempty"`
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	EstimatedPrice float64 `json:"estimated_price"`
	UPC            string  `json:"upc,omitempty"`
	Category       string  `json:"category,omitempty"`
	Checked        bool    `json:"checked"`
	ImageURL       string  `json:"image_url,omitempty"`
}

// ValidUPC reports whether s is a plausible UPC: a non-empty digit string
// of at most 12 characters.
func ValidUPC(s string) bool {
	if s == "" || len(s) > 12 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ToInventory converts a checked grocery item into the inventory record
// created by a move-to-inventory transition. The returned item carries no
// ID; the store assigns a fresh one on creation.
func (g GroceryItem) ToInventory() InventoryItem {
	return InventoryItem{
		Name:     g.Name,
		Quantity: g.Quantity,
		UPC:      g.UPC,
		ImageURL: g.ImageURL,
	}
}
