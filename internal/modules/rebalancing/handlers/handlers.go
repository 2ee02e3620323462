// Package handlers provides HTTP handlers for rebalancing operations.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/fundplan/internal/modules/rebalancing"
	"github.com/rs/zerolog"
)

// Handler handles rebalancing HTTP requests
type Handler struct {
	service *rebalancing.Service
	log     zerolog.Logger
}

// NewHandler creates a new rebalancing handler
func NewHandler(service *rebalancing.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "rebalancing").Logger(),
	}
}

// AnalyzeRequest represents a request to analyze portfolio drift
type AnalyzeRequest struct {
	CurrentValues     map[string]float64 `json:"current_values"`
	TargetAllocations map[string]float64 `json:"target_allocations"`
	DriftThreshold    float64            `json:"drift_threshold"`
}

// HandleAnalyze handles POST /api/rebalance/analyze
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.CurrentValues) == 0 {
		http.Error(w, "current_values is required and must not be empty", http.StatusBadRequest)
		return
	}

	if len(req.TargetAllocations) == 0 {
		http.Error(w, "target_allocations is required and must not be empty", http.StatusBadRequest)
		return
	}

	analysis, err := h.service.Analyze(req.CurrentValues, req.TargetAllocations, req.DriftThreshold)
	if err != nil {
		if errors.Is(err, rebalancing.ErrNonPositiveValue) {
			http.Error(w, "current_values must sum to a positive portfolio value", http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Failed to analyze portfolio")
		http.Error(w, "Failed to analyze portfolio", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"data": analysis,
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
