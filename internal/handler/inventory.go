package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/larder/internal/auth"
	"github.com/dukerupert/larder/internal/list"
	"github.com/dukerupert/larder/internal/model"
)

const maxQuantity = 99

type InventoryHandler struct {
	repo   *list.Repository
	logger *slog.Logger
}

func NewInventoryHandler(repo *list.Repository, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{repo: repo, logger: logger}
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	items, err := h.repo.ListInventory(r.Context(), userID)
	if err != nil {
		h.logger.Error("list inventory", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list inventory"})
		return
	}
	if items == nil {
		items = []model.InventoryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item model.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if msg := validateInventoryItem(&item); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	userID := auth.UserID(r.Context())
	created, err := h.repo.AddInventoryItem(r.Context(), userID, item)
	if err != nil {
		h.logger.Error("create inventory item", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create item"})
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var item model.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	item.ID = r.PathValue("id")
	if item.ID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id is required"})
		return
	}
	if msg := validateInventoryItem(&item); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	userID := auth.UserID(r.Context())
	if err := h.repo.UpdateInventoryItem(r.Context(), userID, item); err != nil {
		h.logger.Error("update inventory item", "user_id", userID, "id", item.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update item"})
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id is required"})
		return
	}

	userID := auth.UserID(r.Context())
	if err := h.repo.DeleteInventoryItem(r.Context(), userID, id); err != nil {
		h.logger.Error("delete inventory item", "user_id", userID, "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete item"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func validateInventoryItem(item *model.InventoryItem) string {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return "name is required"
	}
	if item.Quantity < 0 || item.Quantity > maxQuantity {
		return "quantity must be between 0 and 99"
	}
	if item.UPC != "" && !model.ValidUPC(item.UPC) {
		return "upc must be a digit string of at most 12 characters"
	}
	return ""
}
