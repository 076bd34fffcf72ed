package list

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dukerupert/larder/internal/database"
	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/realtime"
)

const testUser = "user-1"

func setupRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	store := realtime.NewSQLiteStore(db, slog.Default())
	return NewRepository(store, slog.Default())
}

func TestAddInventoryItemAssignsID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	item := model.InventoryItem{Name: "Milk", Quantity: 2}
	created, err := repo.AddInventoryItem(ctx, testUser, item)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID == "" {
		t.Error("created item has no ID")
	}
	if item.ID != "" {
		t.Error("input item was mutated")
	}

	items, err := repo.ListInventory(ctx, testUser)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ID != created.ID {
		t.Fatalf("items = %+v", items)
	}
}

func TestUpdateInventoryItemWithoutIDIsNoop(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if err := repo.UpdateInventoryItem(ctx, testUser, model.InventoryItem{Name: "Milk", Quantity: 1}); err != nil {
		t.Fatalf("update without id: %v", err)
	}
	items, err := repo.ListInventory(ctx, testUser)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %+v, want none", items)
	}
}

func TestDeleteInventoryItem(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	created, err := repo.AddInventoryItem(ctx, testUser, model.InventoryItem{Name: "Milk", Quantity: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.DeleteInventoryItem(ctx, testUser, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	items, err := repo.ListInventory(ctx, testUser)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %+v, want none", items)
	}
}

func TestSetGroceryChecked(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	created, err := repo.AddGroceryItem(ctx, testUser, model.GroceryItem{Name: "Butter", Quantity: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	item, err := repo.SetGroceryChecked(ctx, testUser, created.ID, true)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if item == nil || !item.Checked {
		t.Fatalf("item = %+v, want checked", item)
	}

	missing, err := repo.SetGroceryChecked(ctx, testUser, "no-such-id", true)
	if err != nil {
		t.Fatalf("check missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing = %+v, want nil", missing)
	}
}

func TestMoveCheckedToInventory(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	checked, err := repo.AddGroceryItem(ctx, testUser, model.GroceryItem{
		Name: "Milk", Quantity: 2, Checked: true, UPC: "012345678905",
	})
	if err != nil {
		t.Fatalf("add checked: %v", err)
	}
	if _, err := repo.AddGroceryItem(ctx, testUser, model.GroceryItem{Name: "Eggs", Quantity: 1}); err != nil {
		t.Fatalf("add unchecked: %v", err)
	}

	moved, err := repo.MoveCheckedToInventory(ctx, testUser)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved != 1 {
		t.Fatalf("moved = %d, want 1", moved)
	}

	inventory, err := repo.ListInventory(ctx, testUser)
	if err != nil {
		t.Fatalf("list inventory: %v", err)
	}
	if len(inventory) != 1 {
		t.Fatalf("inventory = %+v, want 1 item", inventory)
	}
	got := inventory[0]
	if got.Name != "Milk" || got.Quantity != 2 || got.UPC != "012345678905" {
		t.Errorf("moved item = %+v", got)
	}
	if got.ID == checked.ID {
		t.Error("moved item kept its grocery identifier, want a fresh one")
	}

	grocery, err := repo.ListGrocery(ctx, testUser)
	if err != nil {
		t.Fatalf("list grocery: %v", err)
	}
	if len(grocery) != 1 || grocery[0].Name != "Eggs" {
		t.Fatalf("grocery = %+v, want only the unchecked item", grocery)
	}
}

func TestClearChecked(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if _, err := repo.AddGroceryItem(ctx, testUser, model.GroceryItem{Name: "Milk", Quantity: 1, Checked: true}); err != nil {
		t.Fatalf("add checked: %v", err)
	}
	if _, err := repo.AddGroceryItem(ctx, testUser, model.GroceryItem{Name: "Eggs", Quantity: 1}); err != nil {
		t.Fatalf("add unchecked: %v", err)
	}

	cleared, err := repo.ClearChecked(ctx, testUser)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if cleared != 1 {
		t.Fatalf("cleared = %d, want 1", cleared)
	}

	grocery, err := repo.ListGrocery(ctx, testUser)
	if err != nil {
		t.Fatalf("list grocery: %v", err)
	}
	if len(grocery) != 1 || grocery[0].Name != "Eggs" {
		t.Fatalf("grocery = %+v, want only the unchecked item", grocery)
	}

	inventory, err := repo.ListInventory(ctx, testUser)
	if err != nil {
		t.Fatalf("list inventory: %v", err)
	}
	if len(inventory) != 0 {
		t.Fatalf("inventory = %+v, cleared items must not be moved", inventory)
	}
}

func TestMoveCheckedToInventoryNothingChecked(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if _, err := repo.AddGroceryItem(ctx, testUser, model.GroceryItem{Name: "Eggs", Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	moved, err := repo.MoveCheckedToInventory(ctx, testUser)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved != 0 {
		t.Fatalf("moved = %d, want 0", moved)
	}
}
