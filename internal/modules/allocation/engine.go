// Package allocation implements the personalized asset allocation engine.
// It turns an investor profile into an equity/debt split, spreads each
// sleeve across fund categories using strategy templates, and attaches
// amounts, rebalancing bands, warnings and recommendations.
package allocation

import (
	"fmt"
	"math"
	"time"

	"github.com/aristath/fundplan/internal/domain"
	"github.com/rs/zerolog"
)

// Default planning knobs.
const (
	// DefaultDriftThreshold is the rebalancing band width in percent points
	DefaultDriftThreshold = 5.0

	internationalShare = 10.0
	maxSectorShare     = 15.0
)

// FundSource supplies recommended funds for an allocation row
type FundSource interface {
	RecommendedFunds(category, subcategory string) []string
}

// EquityForRiskLevel maps a risk tolerance to an equity percentage.
// Unknown values are treated as moderate.
func EquityForRiskLevel(risk domain.RiskLevel) float64 {
	switch risk {
	case domain.RiskAggressive:
		return 85
	case domain.RiskConservative:
		return 45
	default:
		return 65
	}
}

// RiskLevelFromAge recommends a risk tolerance for an investor's age
func RiskLevelFromAge(age int) domain.RiskLevel {
	switch {
	case age < 35:
		return domain.RiskAggressive
	case age < 55:
		return domain.RiskModerate
	default:
		return domain.RiskConservative
	}
}

// AgeBasedStrategy recommends an equity strategy for an investor's age
func AgeBasedStrategy(age int) domain.EquityStrategy {
	switch {
	case age < 35:
		return domain.StrategyAggressiveGrowth
	case age < 50:
		return domain.StrategyBalancedGrowth
	default:
		return domain.StrategyMarketWeighted
	}
}

// CalculateEquityDebtSplit determines the equity/debt percentages for a
// profile. A custom override wins over the stated risk tolerance, which in
// turn wins over the age heuristic (100 minus age, clamped to 20..80).
func CalculateEquityDebtSplit(profile domain.InvestorProfile) (float64, float64) {
	if profile.CustomEquityPercentage != nil {
		equityPct := math.Max(0, math.Min(100, *profile.CustomEquityPercentage))
		return equityPct, 100 - equityPct
	}

	if profile.RiskLevel.Valid() {
		equityPct := EquityForRiskLevel(profile.RiskLevel)
		return equityPct, 100 - equityPct
	}

	equityPct := math.Max(20, math.Min(80, float64(100-profile.Age)))
	return equityPct, 100 - equityPct
}

// FundAmounts computes the rupee amount for each allocation at a given total
func FundAmounts(allocations map[string]FundAllocation, totalAmount float64) map[string]float64 {
	breakdown := make(map[string]float64, len(allocations))
	for key, alloc := range allocations {
		breakdown[key] = round(alloc.Percentage/100*totalAmount, 2)
	}
	return breakdown
}

// TriggerBand bounds the acceptable drift range for one allocation
type TriggerBand struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// RebalancingTriggers derives the trigger band for each allocation, clamped
// to the 0..100 range
func RebalancingTriggers(allocations map[string]FundAllocation, driftThreshold float64) map[string]TriggerBand {
	triggers := make(map[string]TriggerBand, len(allocations))
	for key, alloc := range allocations {
		triggers[key] = TriggerBand{
			Lower: round(math.Max(0, alloc.Percentage-driftThreshold), 2),
			Upper: round(math.Min(100, alloc.Percentage+driftThreshold), 2),
		}
	}
	return triggers
}

// Engine builds personalized allocation plans
type Engine struct {
	validator *Validator
	funds     FundSource
	log       zerolog.Logger
}

// NewEngine creates a new allocation engine. The fund source may be nil, in
// which case plan rows carry no fund recommendations.
func NewEngine(funds FundSource, log zerolog.Logger) *Engine {
	return &Engine{
		validator: NewValidator(),
		funds:     funds,
		log:       log.With().Str("service", "allocation").Logger(),
	}
}

// AllocateEquity spreads the equity sleeve across fund categories using the
// strategy template. International exposure reserves a fixed 10% of the
// sleeve and sector exposure up to 15%, both carved out of the domestic base.
func (e *Engine) AllocateEquity(equityPct float64, strategy domain.EquityStrategy, addInternational bool, sectorAllocation float64) (map[string]FundAllocation, error) {
	template, ok := equityTemplates[strategy]
	if !ok {
		return nil, fmt.Errorf("unknown equity strategy: %q", strategy)
	}

	allocations := make(map[string]FundAllocation, len(template)+2)

	internationalPct := 0.0
	if addInternational {
		internationalPct = internationalShare
	}
	sectorPct := math.Min(maxSectorShare, math.Max(0, sectorAllocation))

	basePct := 100 - internationalPct - sectorPct

	for _, entry := range template {
		actualPct := (entry.Share / 100) * (equityPct * basePct / 100)
		allocations[entry.Key] = e.newAllocation("Equity", entry.Label, round(actualPct, 2))
	}

	if addInternational {
		allocations[keyInternational] = e.newAllocation("Equity", "International Equity", round(equityPct*internationalPct/100, 2))
	}

	if sectorPct > 0 {
		allocations[keySector] = e.newAllocation("Equity", "Sector/Thematic", round(equityPct*sectorPct/100, 2))
	}

	return allocations, nil
}

// AllocateDebt spreads the debt sleeve across fund categories using the
// timeframe template
func (e *Engine) AllocateDebt(debtPct float64, strategy domain.Timeframe) (map[string]FundAllocation, error) {
	template, ok := debtTemplates[strategy]
	if !ok {
		return nil, fmt.Errorf("unknown debt strategy: %q", strategy)
	}

	allocations := make(map[string]FundAllocation, len(template))
	for _, entry := range template {
		actualPct := (entry.Share / 100) * debtPct
		allocations[entry.Key] = e.newAllocation("Debt", entry.Label, round(actualPct, 2))
	}

	return allocations, nil
}

func (e *Engine) newAllocation(category, subcategory string, percentage float64) FundAllocation {
	alloc := FundAllocation{
		Category:         category,
		Subcategory:      subcategory,
		Percentage:       percentage,
		RecommendedFunds: []string{},
	}
	if e.funds != nil {
		if funds := e.funds.RecommendedFunds(category, subcategory); len(funds) > 0 {
			alloc.RecommendedFunds = funds
		}
	}
	return alloc
}

// PlanOptions tune how a plan is built. Zero values mean "use defaults":
// the equity strategy follows the investor's age, debt goes to long term
// products, and the drift threshold is DefaultDriftThreshold.
type PlanOptions struct {
	EquityStrategy   domain.EquityStrategy `json:"equity_strategy,omitempty"`
	DebtStrategy     domain.Timeframe      `json:"debt_strategy,omitempty"`
	SectorAllocation float64               `json:"sector_allocation,omitempty"`
	DriftThreshold   float64               `json:"drift_threshold,omitempty"`
	AddInternational bool                  `json:"add_international,omitempty"`
}

// CreatePlan validates the profile and builds a complete allocation plan
func (e *Engine) CreatePlan(profile domain.InvestorProfile, opts PlanOptions) (*Plan, error) {
	if err := e.validator.Validate(profile); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	equityPct, debtPct := CalculateEquityDebtSplit(profile)

	strategy := opts.EquityStrategy
	if strategy == "" {
		strategy = AgeBasedStrategy(profile.Age)
	}

	debtStrategy := opts.DebtStrategy
	if debtStrategy == "" {
		debtStrategy = domain.TimeframeLongTerm
	}

	driftThreshold := opts.DriftThreshold
	if driftThreshold <= 0 {
		driftThreshold = DefaultDriftThreshold
	}

	equityAllocs, err := e.AllocateEquity(equityPct, strategy, opts.AddInternational, opts.SectorAllocation)
	if err != nil {
		return nil, err
	}

	debtAllocs, err := e.AllocateDebt(debtPct, debtStrategy)
	if err != nil {
		return nil, err
	}

	all := make(map[string]FundAllocation, len(equityAllocs)+len(debtAllocs))
	for key, alloc := range equityAllocs {
		all[key] = alloc
	}
	for key, alloc := range debtAllocs {
		all[key] = alloc
	}

	monthlySIP := FundAmounts(all, profile.MonthlyInvestment)
	lumpsum := FundAmounts(all, profile.LumpSumInvestment)

	// Rows carry the lump sum figure so a rendered plan shows the one-time
	// deployment next to each percentage.
	for key, alloc := range equityAllocs {
		alloc.Amount = lumpsum[key]
		equityAllocs[key] = alloc
	}
	for key, alloc := range debtAllocs {
		alloc.Amount = lumpsum[key]
		debtAllocs[key] = alloc
	}

	plan := &Plan{
		Profile:             profile,
		EquityPercentage:    round(equityPct, 2),
		DebtPercentage:      round(debtPct, 2),
		EquityStrategy:      strategy,
		DebtStrategy:        debtStrategy,
		EquityAllocations:   equityAllocs,
		DebtAllocations:     debtAllocs,
		MonthlySIPBreakdown: monthlySIP,
		LumpsumBreakdown:    lumpsum,
		RebalancingTriggers: RebalancingTriggers(all, driftThreshold),
		Warnings:            GenerateWarnings(profile, equityPct),
		Recommendations:     GenerateRecommendations(profile, equityPct),
		CreatedAt:           time.Now(),
	}

	e.log.Debug().
		Float64("equity_pct", plan.EquityPercentage).
		Float64("debt_pct", plan.DebtPercentage).
		Str("strategy", string(strategy)).
		Int("funds", len(all)).
		Msg("Plan created")

	return plan, nil
}

// round rounds a float64 to n decimal places
func round(val float64, decimals int) float64 {
	multiplier := math.Pow(10, float64(decimals))
	return math.Round(val*multiplier) / multiplier
}
