package rebalancing

import (
	"github.com/aristath/fundplan/internal/events"
	"github.com/aristath/fundplan/internal/metrics"
	"github.com/rs/zerolog"
)

// Analysis is the outcome of a drift check against target allocations
type Analysis struct {
	CurrentAllocation map[string]float64 `json:"current_allocation"`
	Trades            map[string]float64 `json:"trades"`
	DriftedFunds      []string           `json:"drifted_funds"`
	TotalValue        float64            `json:"total_value"`
	DriftThreshold    float64            `json:"drift_threshold"`
	MaxDrift          float64            `json:"max_drift"`
	MeanDrift         float64            `json:"mean_drift"`
	RebalanceNeeded   bool               `json:"rebalance_needed"`
}

// Service runs rebalancing analyses and reports them on the event bus
type Service struct {
	bus *events.Bus
	log zerolog.Logger
}

// NewService creates a new rebalancing service. The bus may be nil when
// event reporting is not wanted.
func NewService(bus *events.Bus, log zerolog.Logger) *Service {
	return &Service{
		bus: bus,
		log: log.With().Str("service", "rebalancing").Logger(),
	}
}

// Analyze compares a portfolio's current fund values against target
// percentages, returning the current allocation, the trades needed and
// which funds have drifted past the threshold.
func (s *Service) Analyze(currentValues, targetPct map[string]float64, driftThreshold float64) (*Analysis, error) {
	if driftThreshold <= 0 {
		driftThreshold = DefaultDriftThreshold
	}

	trades, err := CalculateRebalanceTrades(currentValues, targetPct)
	if err != nil {
		return nil, err
	}

	var totalValue float64
	for _, value := range currentValues {
		totalValue += value
	}

	currentPct := CalculateCurrentAllocation(currentValues)
	needed, drifted := CheckRebalancingNeeded(currentPct, targetPct, driftThreshold)
	maxDrift, meanDrift := DriftStats(currentPct, targetPct)

	analysis := &Analysis{
		CurrentAllocation: currentPct,
		Trades:            trades,
		DriftedFunds:      drifted,
		TotalValue:        round(totalValue, 2),
		DriftThreshold:    driftThreshold,
		MaxDrift:          maxDrift,
		MeanDrift:         meanDrift,
		RebalanceNeeded:   needed,
	}

	metrics.RebalanceAnalyses.Inc()

	if s.bus != nil {
		s.bus.Emit(events.RebalanceAnalyzed, "rebalancing", &events.RebalanceAnalyzedData{
			FundsAnalyzed:    len(targetPct),
			DriftedFunds:     len(drifted),
			MaxDrift:         maxDrift,
			MeanDrift:        meanDrift,
			RebalanceNeeded:  needed,
			TradesRecommends: len(trades),
		})
	}

	s.log.Debug().
		Int("funds", len(targetPct)).
		Int("drifted", len(drifted)).
		Float64("max_drift", maxDrift).
		Bool("rebalance_needed", needed).
		Msg("Rebalance analysis complete")

	return analysis, nil
}
