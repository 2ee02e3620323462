package allocation

import (
	"time"

	"github.com/aristath/fundplan/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// FundAllocation represents the allocation for a single fund category
type FundAllocation struct {
	Category         string   `json:"category"`
	Subcategory      string   `json:"subcategory"`
	RecommendedFunds []string `json:"recommended_funds"`
	Percentage       float64  `json:"percentage"`
	Amount           float64  `json:"amount"`
}

// Plan represents a complete asset allocation plan
type Plan struct {
	CreatedAt           time.Time                 `json:"created_at"`
	EquityAllocations   map[string]FundAllocation `json:"equity_allocations"`
	DebtAllocations     map[string]FundAllocation `json:"debt_allocations"`
	MonthlySIPBreakdown map[string]float64        `json:"monthly_sip_breakdown"`
	LumpsumBreakdown    map[string]float64        `json:"lumpsum_breakdown"`
	RebalancingTriggers map[string]TriggerBand    `json:"rebalancing_triggers"`
	Warnings            []string                  `json:"warnings"`
	Recommendations     []string                  `json:"recommendations"`
	EquityStrategy      domain.EquityStrategy     `json:"equity_strategy"`
	DebtStrategy        domain.Timeframe          `json:"debt_strategy"`
	Profile             domain.InvestorProfile    `json:"profile"`
	EquityPercentage    float64                   `json:"equity_percentage"`
	DebtPercentage      float64                   `json:"debt_percentage"`
}

// AllAllocations merges the equity and debt rows into a single map
func (p *Plan) AllAllocations() map[string]FundAllocation {
	all := make(map[string]FundAllocation, len(p.EquityAllocations)+len(p.DebtAllocations))
	for key, alloc := range p.EquityAllocations {
		all[key] = alloc
	}
	for key, alloc := range p.DebtAllocations {
		all[key] = alloc
	}
	return all
}

// TargetPercentages returns the target percentage per allocation key
func (p *Plan) TargetPercentages() map[string]float64 {
	all := p.AllAllocations()
	targets := make(map[string]float64, len(all))
	for key, alloc := range all {
		targets[key] = alloc.Percentage
	}
	return targets
}

// AllocationSummary condenses a plan into headline numbers
type AllocationSummary struct {
	TotalFunds       int     `json:"total_funds"`
	EquityFunds      int     `json:"equity_funds"`
	DebtFunds        int     `json:"debt_funds"`
	EquityPercentage float64 `json:"equity_percentage"`
	DebtPercentage   float64 `json:"debt_percentage"`
	MonthlySIPTotal  float64 `json:"monthly_sip_total"`
	LumpsumTotal     float64 `json:"lumpsum_total"`
}

// Summary returns the headline numbers for a plan
func (p *Plan) Summary() AllocationSummary {
	return AllocationSummary{
		TotalFunds:       len(p.EquityAllocations) + len(p.DebtAllocations),
		EquityFunds:      len(p.EquityAllocations),
		DebtFunds:        len(p.DebtAllocations),
		EquityPercentage: p.EquityPercentage,
		DebtPercentage:   p.DebtPercentage,
		MonthlySIPTotal:  round(sumValues(p.MonthlySIPBreakdown), 2),
		LumpsumTotal:     round(sumValues(p.LumpsumBreakdown), 2),
	}
}

// ExportedPlan is the stable serialization shape produced by Export.
// It intentionally carries the investor's age rather than the full profile.
type ExportedPlan struct {
	EquityAllocations   map[string]FundAllocation `json:"equity_allocations"`
	DebtAllocations     map[string]FundAllocation `json:"debt_allocations"`
	MonthlySIPBreakdown map[string]float64        `json:"monthly_sip_breakdown"`
	LumpsumBreakdown    map[string]float64        `json:"lumpsum_breakdown"`
	Warnings            []string                  `json:"warnings"`
	Recommendations     []string                  `json:"recommendations"`
	CreatedAt           string                    `json:"created_at"`
	UserAge             int                       `json:"user_age"`
	EquityPercentage    float64                   `json:"equity_percentage"`
	DebtPercentage      float64                   `json:"debt_percentage"`
}

// Export converts the plan into its serialization shape
func (p *Plan) Export() ExportedPlan {
	return ExportedPlan{
		UserAge:             p.Profile.Age,
		EquityPercentage:    p.EquityPercentage,
		DebtPercentage:      p.DebtPercentage,
		EquityAllocations:   p.EquityAllocations,
		DebtAllocations:     p.DebtAllocations,
		MonthlySIPBreakdown: p.MonthlySIPBreakdown,
		LumpsumBreakdown:    p.LumpsumBreakdown,
		Warnings:            p.Warnings,
		Recommendations:     p.Recommendations,
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
	}
}

func sumValues(m map[string]float64) float64 {
	values := make([]float64, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return floats.Sum(values)
}
