package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all planning routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/plans", func(r chi.Router) {
		r.Post("/", h.HandleCreatePlan)
		r.Get("/", h.HandleListPlans)
		r.Post("/share", h.HandleSharePlan)
		r.Get("/shared/{code}", h.HandleResolveSharedPlan)

		r.Route("/{planID}", func(r chi.Router) {
			r.Get("/", h.HandleGetPlan)
			r.Delete("/", h.HandleDeletePlan)
			r.Get("/export", h.HandleExportPlan)
			r.Get("/export/csv", h.HandleExportCSV)
			r.Get("/summary", h.HandleGetSummary)
			r.Get("/projection", h.HandleGetProjection)
		})
	})
}
