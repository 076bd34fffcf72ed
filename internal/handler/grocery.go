package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/larder/internal/auth"
	"github.com/dukerupert/larder/internal/grocery"
	"github.com/dukerupert/larder/internal/list"
	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/push"
)

type GroceryHandler struct {
	repo   *list.Repository
	push   *push.Service
	logger *slog.Logger
}

func NewGroceryHandler(repo *list.Repository, pushSvc *push.Service, logger *slog.Logger) *GroceryHandler {
	return &GroceryHandler{repo: repo, push: pushSvc, logger: logger}
}

func (h *GroceryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	items, err := h.repo.ListGrocery(r.Context(), userID)
	if err != nil {
		h.logger.Error("list grocery", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list grocery items"})
		return
	}
	if items == nil {
		items = []model.GroceryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *GroceryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item model.GroceryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if msg := validateGroceryItem(&item); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}
	// Scanned items arrive with a classifier category; manual adds fall
	// back to local keyword matching.
	if item.Category == "" {
		item.Category = grocery.Categorize(item.Name)
	}

	userID := auth.UserID(r.Context())
	created, err := h.repo.AddGroceryItem(r.Context(), userID, item)
	if err != nil {
		h.logger.Error("create grocery item", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create item"})
		return
	}

	go h.push.Notify(context.Background(), userID, push.Payload{
		Title: "Grocery list updated",
		Body:  fmt.Sprintf("%s was added to the grocery list", created.Name),
		Tag:   model.NotifTypeGroceryAdded,
	})

	writeJSON(w, http.StatusCreated, created)
}

func (h *GroceryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var item model.GroceryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	item.ID = r.PathValue("id")
	if item.ID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id is required"})
		return
	}
	if msg := validateGroceryItem(&item); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	userID := auth.UserID(r.Context())
	if err := h.repo.UpdateGroceryItem(r.Context(), userID, item); err != nil {
		h.logger.Error("update grocery item", "user_id", userID, "id", item.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update item"})
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *GroceryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id is required"})
		return
	}

	userID := auth.UserID(r.Context())
	if err := h.repo.DeleteGroceryItem(r.Context(), userID, id); err != nil {
		h.logger.Error("delete grocery item", "user_id", userID, "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete item"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Check flips the checked flag on one grocery item and notifies the
// household's other devices.
func (h *GroceryHandler) Check(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id is required"})
		return
	}

	var req struct {
		Checked bool `json:"checked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	userID := auth.UserID(r.Context())
	item, err := h.repo.SetGroceryChecked(r.Context(), userID, id, req.Checked)
	if err != nil {
		h.logger.Error("check grocery item", "user_id", userID, "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update item"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	if req.Checked {
		go h.push.Notify(context.Background(), userID, push.Payload{
			Title: "Item checked off",
			Body:  fmt.Sprintf("%s was checked off the grocery list", item.Name),
			Tag:   model.NotifTypeItemChecked,
		})
	}

	writeJSON(w, http.StatusOK, item)
}

// MoveToInventory moves every checked grocery item into the inventory.
func (h *GroceryHandler) MoveToInventory(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	moved, err := h.repo.MoveCheckedToInventory(r.Context(), userID)
	if err != nil {
		h.logger.Error("move checked to inventory", "user_id", userID, "moved", moved, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to move items"})
		return
	}

	if moved > 0 {
		go h.push.Notify(context.Background(), userID, push.Payload{
			Title: "Shopping trip done",
			Body:  fmt.Sprintf("%d item(s) moved to inventory", moved),
			Tag:   model.NotifTypeItemsMoved,
		})
	}

	writeJSON(w, http.StatusOK, map[string]int{"moved": moved})
}

// ClearChecked discards every checked grocery item without moving it.
func (h *GroceryHandler) ClearChecked(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	cleared, err := h.repo.ClearChecked(r.Context(), userID)
	if err != nil {
		h.logger.Error("clear checked", "user_id", userID, "cleared", cleared, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to clear items"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"cleared": cleared})
}

func validateGroceryItem(item *model.GroceryItem) string {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return "name is required"
	}
	if item.Quantity < 1 || item.Quantity > maxQuantity {
		return "quantity must be between 1 and 99"
	}
	if item.EstimatedPrice < 0 {
		return "estimated_price cannot be negative"
	}
	if item.UPC != "" && !model.ValidUPC(item.UPC) {
		return "upc must be a digit string of at most 12 characters"
	}
	return ""
}
