package handler

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/larder/internal/auth"
	"github.com/dukerupert/larder/internal/enrich"
	"github.com/dukerupert/larder/internal/list"
	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/sync"
)

type RecipesHandler struct {
	repo         *list.Repository
	memos        *sync.MemoRegistry
	orchestrator *enrich.Orchestrator
	logger       *slog.Logger
}

func NewRecipesHandler(repo *list.Repository, memos *sync.MemoRegistry, orchestrator *enrich.Orchestrator, logger *slog.Logger) *RecipesHandler {
	return &RecipesHandler{repo: repo, memos: memos, orchestrator: orchestrator, logger: logger}
}

// List ranks recipes against the user's current inventory. Results are
// memoized per user until the inventory changes.
func (h *RecipesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	inventory, err := h.repo.ListInventory(r.Context(), userID)
	if err != nil {
		h.logger.Error("recipes: list inventory", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read inventory"})
		return
	}

	matches, err := h.orchestrator.MatchRecipes(r.Context(), inventory, h.memos.ForUser(userID))
	if err != nil {
		h.logger.Error("recipes: match", "user_id", userID, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "recipe lookup failed"})
		return
	}
	if matches == nil {
		matches = []model.RecipeMatch{}
	}
	writeJSON(w, http.StatusOK, matches)
}
