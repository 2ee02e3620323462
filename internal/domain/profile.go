package domain

// FinancialGoal represents a specific goal the investor is saving towards
type FinancialGoal struct {
	Name              string  `json:"name"`
	TargetAmount      float64 `json:"target_amount"`
	MonthlyAllocation float64 `json:"monthly_allocation"`
	YearsToGoal       int     `json:"years_to_goal"`
	Priority          int     `json:"priority"` // 1 = highest, 5 = lowest
}

// Timeframe categorizes the goal by its horizon
func (g FinancialGoal) Timeframe() Timeframe {
	switch {
	case g.YearsToGoal <= 3:
		return TimeframeShortTerm
	case g.YearsToGoal <= 7:
		return TimeframeMediumTerm
	default:
		return TimeframeLongTerm
	}
}

// InvestorProfile represents an investor's financial situation and preferences.
// RiskLevel left empty means "derive from age", and a nil CustomEquityPercentage
// means "no manual override".
type InvestorProfile struct {
	Goals                  []FinancialGoal `json:"goals,omitempty"`
	RiskLevel              RiskLevel       `json:"risk_level,omitempty"`
	CustomEquityPercentage *float64        `json:"custom_equity_percentage,omitempty"`
	MonthlyIncome          float64         `json:"monthly_income"`
	MonthlyInvestment      float64         `json:"monthly_investment"`
	LumpSumInvestment      float64         `json:"lump_sum_investment"`
	Age                    int             `json:"age"`
	HasEmergencyFund       bool            `json:"has_emergency_fund"`
	HasAdequateInsurance   bool            `json:"has_adequate_insurance"`
}

// InvestmentRatio returns the share of monthly income being invested, as a
// percentage. Zero income yields zero to keep the ratio well defined.
func (p InvestorProfile) InvestmentRatio() float64 {
	if p.MonthlyIncome <= 0 {
		return 0
	}
	return p.MonthlyInvestment / p.MonthlyIncome * 100
}
