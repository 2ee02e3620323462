// Package handlers provides HTTP handlers for the tool launcher.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/fundplan/internal/modules/tools"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles tool launcher HTTP requests
type Handler struct {
	service *tools.Service
	log     zerolog.Logger
}

// NewHandler creates a new tools handler
func NewHandler(service *tools.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "tools").Logger(),
	}
}

// ToolListItem pairs a tool definition with its current launch status
type ToolListItem struct {
	tools.Tool
	Status tools.Status `json:"status"`
}

// HandleListTools returns all registered tools with their launch status
func (h *Handler) HandleListTools(w http.ResponseWriter, r *http.Request) {
	registered := h.service.Tools()
	items := make([]ToolListItem, 0, len(registered))
	for _, tool := range registered {
		status, err := h.service.Status(tool.Slug)
		if err != nil {
			continue
		}
		items = append(items, ToolListItem{Tool: tool, Status: status})
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"tools": items,
			"count": len(items),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// HandleLaunchTool starts a registered tool as a detached subprocess
func (h *Handler) HandleLaunchTool(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	status, err := h.service.Launch(slug)
	if err != nil {
		if errors.Is(err, tools.ErrUnknownTool) {
			http.Error(w, "Tool not found", http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Str("tool", slug).Msg("Failed to launch tool")
		http.Error(w, "Failed to launch tool", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"slug":   slug,
			"status": status,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// HandleToolStatus reports the lifecycle state of a tool's most recent launch
func (h *Handler) HandleToolStatus(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	status, err := h.service.Status(slug)
	if err != nil {
		http.Error(w, "Tool not found", http.StatusNotFound)
		return
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"slug":   slug,
			"status": status,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
