// Package handlers provides HTTP handlers for the fund catalog.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/fundplan/internal/modules/catalog"
	"github.com/rs/zerolog"
)

// Handler handles catalog HTTP requests
type Handler struct {
	service *catalog.Service
	log     zerolog.Logger
}

// NewHandler creates a new catalog handler
func NewHandler(service *catalog.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "catalog").Logger(),
	}
}

// HandleListCatalog handles GET /api/catalog
func (h *Handler) HandleListCatalog(w http.ResponseWriter, r *http.Request) {
	categories := h.service.Categories()

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"categories": categories,
			"count":      len(categories),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
