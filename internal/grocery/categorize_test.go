package grocery

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"milk", "Dairy"},
		{"Milk", "Dairy"},
		{"  Milk  ", "Dairy"},
		{"almond milk", "Dairy"},
		{"greek yogurt", "Dairy"},
		{"bananas", "Produce"},
		{"sweet potato", "Produce"},
		{"ground beef", "Meat & Seafood"},
		{"chicken breast", "Meat & Seafood"},
		{"sourdough bread", "Bakery"},
		{"pasta sauce", "Pantry"},
		{"frozen peas", "Frozen"},
		{"sparkling water", "Beverages"},
		{"granola bar", "Snacks"},
		{"paper towels", "Household"},
		{"toothpaste", "Personal Care"},
		{"mystery item", "Other"},
		{"", "Other"},
	}

	for _, tt := range tests {
		if got := Categorize(tt.name); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCategorizeSpecificBeforeGeneric(t *testing.T) {
	// "ice cream" must win over the "cream" dairy keyword.
	if got := Categorize("vanilla ice cream"); got != "Frozen" {
		t.Errorf("Categorize(vanilla ice cream) = %q, want Frozen", got)
	}
	// "peanut butter" must win over the "butter" dairy keyword.
	if got := Categorize("crunchy peanut butter"); got != "Pantry" {
		t.Errorf("Categorize(crunchy peanut butter) = %q, want Pantry", got)
	}
}
