// Package handlers provides HTTP handlers for strategy discovery.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/aristath/fundplan/internal/domain"
	"github.com/aristath/fundplan/internal/modules/allocation"
	"github.com/rs/zerolog"
)

// Handler handles strategy HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new strategy handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "strategies").Logger(),
	}
}

// StrategyPreview shows what the engine would pick for a given age when the
// investor states no preference.
type StrategyPreview struct {
	EquityStrategy   domain.EquityStrategy `json:"equity_strategy"`
	RiskLevel        domain.RiskLevel      `json:"risk_level"`
	Age              int                   `json:"age"`
	EquityPercentage float64               `json:"equity_percentage"`
	DebtPercentage   float64               `json:"debt_percentage"`
}

// HandleListStrategies returns the selectable equity and debt strategies with
// their category weights, plus the equity split each risk tolerance maps to.
// An optional age query parameter adds a preview of the age-based defaults.
func (h *Handler) HandleListStrategies(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"equity_strategies": allocation.EquityStrategies(),
		"debt_strategies":   allocation.DebtStrategies(),
		"risk_level_splits": map[string]float64{
			string(domain.RiskAggressive):   allocation.EquityForRiskLevel(domain.RiskAggressive),
			string(domain.RiskModerate):     allocation.EquityForRiskLevel(domain.RiskModerate),
			string(domain.RiskConservative): allocation.EquityForRiskLevel(domain.RiskConservative),
		},
	}

	if ageStr := r.URL.Query().Get("age"); ageStr != "" {
		age, err := strconv.Atoi(ageStr)
		if err != nil || age <= 0 {
			http.Error(w, "age must be a positive integer", http.StatusBadRequest)
			return
		}

		equityPct, debtPct := allocation.CalculateEquityDebtSplit(domain.InvestorProfile{Age: age})
		data["preview"] = StrategyPreview{
			Age:              age,
			EquityStrategy:   allocation.AgeBasedStrategy(age),
			RiskLevel:        allocation.RiskLevelFromAge(age),
			EquityPercentage: equityPct,
			DebtPercentage:   debtPct,
		}
	}

	response := map[string]interface{}{
		"data": data,
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
