package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukerupert/larder/internal/auth"
	"github.com/dukerupert/larder/internal/enrich"
	"github.com/dukerupert/larder/internal/model"
)

type ScanHandler struct {
	orchestrator *enrich.Orchestrator
	logger       *slog.Logger
}

func NewScanHandler(orchestrator *enrich.Orchestrator, logger *slog.Logger) *ScanHandler {
	return &ScanHandler{orchestrator: orchestrator, logger: logger}
}

// Scan resolves a barcode into a product candidate for the client to
// confirm. Nothing is persisted here; the confirmed candidate comes back
// through the grocery or inventory create endpoints.
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UPC string `json:"upc"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if !model.ValidUPC(req.UPC) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "upc must be a digit string of at most 12 characters"})
		return
	}

	candidate, err := h.orchestrator.Scan(r.Context(), req.UPC)
	if errors.Is(err, enrich.ErrProductNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product unavailable"})
		return
	}
	if err != nil {
		h.logger.Error("scan lookup", "user_id", auth.UserID(r.Context()), "upc", req.UPC, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "product lookup failed"})
		return
	}

	writeJSON(w, http.StatusOK, candidate)
}
