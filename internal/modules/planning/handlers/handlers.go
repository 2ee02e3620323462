// Package handlers provides HTTP handlers for plan management.
package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aristath/fundplan/internal/domain"
	"github.com/aristath/fundplan/internal/modules/allocation"
	"github.com/aristath/fundplan/internal/modules/planning"
	"github.com/aristath/fundplan/pkg/currency"
	"github.com/aristath/fundplan/pkg/formulas"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles planning HTTP requests
type Handler struct {
	service *planning.Service
	log     zerolog.Logger
}

// NewHandler creates a new planning handler
func NewHandler(service *planning.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "planning").Logger(),
	}
}

// CreatePlanRequest carries an investor profile and planning options.
// The same shape backs plan creation and share code issuance.
type CreatePlanRequest struct {
	Profile domain.InvestorProfile `json:"profile"`
	Options allocation.PlanOptions `json:"options"`
}

// PlanListItem is the compact listing shape for stored plans
type PlanListItem struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	ExpiresAt        time.Time `json:"expires_at"`
	EquityPercentage float64   `json:"equity_percentage"`
	DebtPercentage   float64   `json:"debt_percentage"`
	Age              int       `json:"age"`
	FundCount        int       `json:"fund_count"`
}

// HandleCreatePlan handles POST /api/plans
func (h *Handler) HandleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	stored, err := h.service.CreatePlan(req.Profile, req.Options)
	if err != nil {
		h.respondPlanError(w, err)
		return
	}

	response := map[string]interface{}{
		"data": stored,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusCreated, response)
}

// HandleListPlans handles GET /api/plans
func (h *Handler) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	stored := h.service.Store().List()

	items := make([]PlanListItem, 0, len(stored))
	for _, plan := range stored {
		items = append(items, PlanListItem{
			ID:               plan.ID,
			CreatedAt:        plan.CreatedAt,
			ExpiresAt:        plan.ExpiresAt,
			EquityPercentage: plan.EquityPercentage,
			DebtPercentage:   plan.DebtPercentage,
			Age:              plan.Profile.Age,
			FundCount:        len(plan.EquityAllocations) + len(plan.DebtAllocations),
		})
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"plans": items,
			"count": len(items),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// HandleGetPlan handles GET /api/plans/{planID}
func (h *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "planID")
	stored, ok := h.service.Store().Get(id)
	if !ok {
		http.Error(w, "Plan not found", http.StatusNotFound)
		return
	}

	response := map[string]interface{}{
		"data": stored,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// HandleDeletePlan handles DELETE /api/plans/{planID}
func (h *Handler) HandleDeletePlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "planID")
	if !h.service.Store().Delete(id) {
		http.Error(w, "Plan not found", http.StatusNotFound)
		return
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"deleted": true,
			"plan_id": id,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// HandleExportPlan handles GET /api/plans/{planID}/export.
// The response body is the bare export document, not the usual envelope,
// so the downloaded file keeps its historical shape.
func (h *Handler) HandleExportPlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "planID")
	stored, ok := h.service.Store().Get(id)
	if !ok {
		http.Error(w, "Plan not found", http.StatusNotFound)
		return
	}

	filename := fmt.Sprintf("asset_allocation_plan_%s.json", stored.CreatedAt.Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stored.Export()); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// HandleExportCSV handles GET /api/plans/{planID}/export/csv
func (h *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "planID")
	stored, ok := h.service.Store().Get(id)
	if !ok {
		http.Error(w, "Plan not found", http.StatusNotFound)
		return
	}

	filename := fmt.Sprintf("sip_plan_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	records := [][]string{
		{"Fund Category", "Asset Type", "% of Portfolio", "Monthly SIP (₹)", "Annual Investment (₹)"},
	}

	all := stored.AllAllocations()
	for _, key := range allocation.OrderedKeys(all) {
		alloc := all[key]
		monthly := stored.MonthlySIPBreakdown[key]
		records = append(records, []string{
			alloc.Subcategory,
			alloc.Category,
			formatNumber(alloc.Percentage) + "%",
			formatNumber(monthly),
			formatNumber(monthly * 12),
		})
	}

	if err := csv.NewWriter(w).WriteAll(records); err != nil {
		h.log.Error().Err(err).Msg("Failed to write CSV response")
	}
}

// HandleGetSummary handles GET /api/plans/{planID}/summary
func (h *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "planID")
	stored, ok := h.service.Store().Get(id)
	if !ok {
		http.Error(w, "Plan not found", http.StatusNotFound)
		return
	}

	summary := stored.Summary()
	expectedReturn := formulas.ExpectedReturnForEquity(stored.EquityPercentage)
	corpus := formulas.EstimateCorpusAtRetirement(
		stored.Profile.MonthlyInvestment,
		stored.Profile.Age,
		formulas.DefaultRetirementAge,
		expectedReturn,
	)

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"summary":                        summary,
			"risk_return_profile":            allocation.RiskReturnProfile(stored.EquityPercentage),
			"expected_return":                expectedReturn,
			"estimated_corpus_at_retirement": corpus,
			"estimated_corpus_formatted":     currency.FormatINR(corpus),
			"monthly_sip_total_formatted":    currency.FormatINR(summary.MonthlySIPTotal),
			"lumpsum_total_formatted":        currency.FormatINR(summary.LumpsumTotal),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// HandleGetProjection handles GET /api/plans/{planID}/projection
func (h *Handler) HandleGetProjection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "planID")
	stored, ok := h.service.Store().Get(id)
	if !ok {
		http.Error(w, "Plan not found", http.StatusNotFound)
		return
	}

	retirementAge := formulas.DefaultRetirementAge
	if param := r.URL.Query().Get("retirement_age"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil || parsed <= 0 {
			http.Error(w, "retirement_age must be a positive integer", http.StatusBadRequest)
			return
		}
		retirementAge = parsed
	}

	projection := allocation.BuildGrowthProjection(
		stored.Profile.MonthlyInvestment,
		stored.Profile.Age,
		retirementAge,
		stored.EquityPercentage,
	)

	response := map[string]interface{}{
		"data": projection,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// HandleSharePlan handles POST /api/plans/share
func (h *Handler) HandleSharePlan(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	code, err := h.service.Share(planning.SharedPlanRequest{
		Profile: req.Profile,
		Options: req.Options,
	})
	if err != nil {
		h.respondPlanError(w, err)
		return
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"share_code":  code,
			"code_length": len(code),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// HandleResolveSharedPlan handles GET /api/plans/shared/{code}.
// The plan is recomputed from the code and returned without being stored.
func (h *Handler) HandleResolveSharedPlan(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	plan, err := h.service.Resolve(code)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to resolve share code")
		http.Error(w, "Invalid share code", http.StatusBadRequest)
		return
	}

	response := map[string]interface{}{
		"data": plan,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// respondPlanError maps plan generation failures to HTTP responses.
// Validation failures list every violated rule; anything else from the
// engine is a bad request with the engine's message.
func (h *Handler) respondPlanError(w http.ResponseWriter, err error) {
	var verrs allocation.ValidationErrors
	if errors.As(err, &verrs) {
		h.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": map[string]interface{}{
				"message": "Profile validation failed",
				"code":    "VALIDATION_FAILED",
				"details": verrs,
			},
		})
		return
	}

	http.Error(w, err.Error(), http.StatusBadRequest)
}

// formatNumber renders a float without trailing zeros
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
