package list

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/realtime"
)

// Repository owns all create/update/delete operations against the realtime
// store for both collections. It never retries: a store failure surfaces
// once to the caller of the operation that hit it.
type Repository struct {
	store  realtime.Store
	logger *slog.Logger
}

func NewRepository(store realtime.Store, logger *slog.Logger) *Repository {
	return &Repository{store: store, logger: logger}
}

func inventoryPath(userID string) realtime.Path {
	return realtime.Path{UserID: userID, Collection: realtime.CollectionInventory}
}

func groceryPath(userID string) realtime.Path {
	return realtime.Path{UserID: userID, Collection: realtime.CollectionGroceryList}
}

// AddInventoryItem persists a new inventory record and returns a copy
// carrying the store-assigned identifier. The passed-in item is not
// mutated.
func (r *Repository) AddInventoryItem(ctx context.Context, userID string, item model.InventoryItem) (model.InventoryItem, error) {
	item.ID = r.store.NewKey()
	data, err := json.Marshal(item)
	if err != nil {
		return model.InventoryItem{}, fmt.Errorf("marshal inventory item: %w", err)
	}
	if err := r.store.Write(ctx, inventoryPath(userID), item.ID, data); err != nil {
		return model.InventoryItem{}, err
	}
	return item, nil
}

// UpdateInventoryItem overwrites the record by identifier. An item without
// an identifier is a no-op.
func (r *Repository) UpdateInventoryItem(ctx context.Context, userID string, item model.InventoryItem) error {
	if item.ID == "" {
		return nil
	}
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal inventory item: %w", err)
	}
	return r.store.Update(ctx, inventoryPath(userID), item.ID, data)
}

func (r *Repository) DeleteInventoryItem(ctx context.Context, userID, id string) error {
	return r.store.Delete(ctx, inventoryPath(userID), id)
}

// AddGroceryItem persists a new grocery-list record, same key-then-write
// pattern as AddInventoryItem.
func (r *Repository) AddGroceryItem(ctx context.Context, userID string, item model.GroceryItem) (model.GroceryItem, error) {
	item.ID = r.store.NewKey()
	data, err := json.Marshal(item)
	if err != nil {
		return model.GroceryItem{}, fmt.Errorf("marshal grocery item: %w", err)
	}
	if err := r.store.Write(ctx, groceryPath(userID), item.ID, data); err != nil {
		return model.GroceryItem{}, err
	}
	return item, nil
}

func (r *Repository) UpdateGroceryItem(ctx context.Context, userID string, item model.GroceryItem) error {
	if item.ID == "" {
		return nil
	}
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal grocery item: %w", err)
	}
	return r.store.Update(ctx, groceryPath(userID), item.ID, data)
}

func (r *Repository) DeleteGroceryItem(ctx context.Context, userID, id string) error {
	return r.store.Delete(ctx, groceryPath(userID), id)
}

// SetGroceryChecked flips the checked flag on one grocery record.
func (r *Repository) SetGroceryChecked(ctx context.Context, userID, id string, checked bool) (*model.GroceryItem, error) {
	items, err := r.ListGrocery(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID != id {
			continue
		}
		item.Checked = checked
		if err := r.UpdateGroceryItem(ctx, userID, item); err != nil {
			return nil, err
		}
		return &item, nil
	}
	return nil, nil
}

// MoveCheckedToInventory moves every checked grocery record into the
// inventory collection: for each, the inventory create and the grocery
// delete are issued back-to-back so the settled state holds exactly one
// inventory record and no grocery record per moved item. The visible
// commit order of the two store operations is not guaranteed to other
// subscribers.
func (r *Repository) MoveCheckedToInventory(ctx context.Context, userID string) (int, error) {
	items, err := r.ListGrocery(ctx, userID)
	if err != nil {
		return 0, err
	}

	moved := 0
	for _, item := range items {
		if !item.Checked {
			continue
		}
		if _, err := r.AddInventoryItem(ctx, userID, item.ToInventory()); err != nil {
			return moved, fmt.Errorf("move %q to inventory: %w", item.Name, err)
		}
		if err := r.DeleteGroceryItem(ctx, userID, item.ID); err != nil {
			return moved, fmt.Errorf("remove moved item %q from grocery list: %w", item.Name, err)
		}
		moved++
	}
	return moved, nil
}

// ClearChecked removes every checked grocery record without moving it,
// for discarding a finished or abandoned shopping trip. Returns the
// number of records removed.
func (r *Repository) ClearChecked(ctx context.Context, userID string) (int, error) {
	items, err := r.ListGrocery(ctx, userID)
	if err != nil {
		return 0, err
	}

	cleared := 0
	for _, item := range items {
		if !item.Checked {
			continue
		}
		if err := r.DeleteGroceryItem(ctx, userID, item.ID); err != nil {
			return cleared, fmt.Errorf("clear checked item %q: %w", item.Name, err)
		}
		cleared++
	}
	return cleared, nil
}

// ListInventory is a pull-based snapshot read for consumers without a live
// controller. Malformed children are excluded and logged.
func (r *Repository) ListInventory(ctx context.Context, userID string) ([]model.InventoryItem, error) {
	snap, err := r.store.Children(ctx, inventoryPath(userID))
	if err != nil {
		return nil, err
	}
	items, malformed := DecodeInventory(snap)
	r.logMalformed(userID, malformed)
	return items, nil
}

func (r *Repository) ListGrocery(ctx context.Context, userID string) ([]model.GroceryItem, error) {
	snap, err := r.store.Children(ctx, groceryPath(userID))
	if err != nil {
		return nil, err
	}
	items, malformed := DecodeGrocery(snap)
	r.logMalformed(userID, malformed)
	return items, nil
}

func (r *Repository) logMalformed(userID string, errs []error) {
	for _, err := range errs {
		r.logger.Warn("dropped malformed record", "user_id", userID, "error", err)
	}
}
