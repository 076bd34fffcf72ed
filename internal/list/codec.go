package list

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/realtime"
)

// DecodeInventory parses a children snapshot into inventory items. A child
// that fails to parse or carries no name is excluded from the result and
// reported in the second return value; one bad record never poisons the
// rest of the snapshot. Items are ordered by name, then identifier.
func DecodeInventory(snap realtime.Snapshot) ([]model.InventoryItem, []error) {
	items := make([]model.InventoryItem, 0, len(snap))
	var malformed []error
	for id, data := range snap {
		var item model.InventoryItem
		if err := json.Unmarshal(data, &item); err != nil {
			malformed = append(malformed, fmt.Errorf("inventory child %s: %w", id, err))
			continue
		}
		if item.Name == "" || item.Quantity < 0 {
			malformed = append(malformed, fmt.Errorf("inventory child %s: missing name or negative quantity", id))
			continue
		}
		item.ID = id
		items = append(items, item)
	}
	sortItems(items, func(i model.InventoryItem) (string, string) { return i.Name, i.ID })
	return items, malformed
}

// DecodeGrocery parses a children snapshot into grocery items with the
// same exclusion policy as DecodeInventory.
func DecodeGrocery(snap realtime.Snapshot) ([]model.GroceryItem, []error) {
	items := make([]model.GroceryItem, 0, len(snap))
	var malformed []error
	for id, data := range snap {
		var item model.GroceryItem
		if err := json.Unmarshal(data, &item); err != nil {
			malformed = append(malformed, fmt.Errorf("grocery child %s: %w", id, err))
			continue
		}
		if item.Name == "" || item.Quantity < 1 {
			malformed = append(malformed, fmt.Errorf("grocery child %s: missing name or non-positive quantity", id))
			continue
		}
		item.ID = id
		items = append(items, item)
	}
	sortItems(items, func(i model.GroceryItem) (string, string) { return i.Name, i.ID })
	return items, malformed
}

func sortItems[T any](items []T, key func(T) (string, string)) {
	sort.Slice(items, func(a, b int) bool {
		na, ia := key(items[a])
		nb, ib := key(items[b])
		if na != nb {
			return na < nb
		}
		return ia < ib
	})
}
