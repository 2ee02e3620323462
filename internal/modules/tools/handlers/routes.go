package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers tool launcher routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/tools", func(r chi.Router) {
		r.Get("/", h.HandleListTools)
		r.Post("/{slug}/launch", h.HandleLaunchTool)
		r.Get("/{slug}/status", h.HandleToolStatus)
	})
}
