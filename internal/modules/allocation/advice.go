package allocation

import "github.com/aristath/fundplan/internal/domain"

// GenerateWarnings produces risk warnings for a profile at a given equity
// allocation. Order is stable: readiness gaps first, then allocation risk,
// then contribution hygiene.
func GenerateWarnings(profile domain.InvestorProfile, equityPct float64) []string {
	warnings := []string{}

	if !profile.HasEmergencyFund && equityPct > 50 {
		warnings = append(warnings,
			"⚠️ CRITICAL: Build 6 months of emergency fund before investing heavily in equity. "+
				"Keep this in liquid/savings accounts for immediate access.")
	}

	if !profile.HasAdequateInsurance {
		warnings = append(warnings,
			"⚠️ IMPORTANT: Ensure adequate term life insurance (10-15x annual income) and "+
				"comprehensive health insurance before aggressive equity allocation.")
	}

	if equityPct > 80 {
		warnings = append(warnings,
			"⚠️ Very high equity allocation (>80%). Expect significant volatility. "+
				"Only suitable for investors with 10+ year time horizon and high risk tolerance.")
	}

	if profile.Age > 60 && equityPct > 50 {
		warnings = append(warnings,
			"⚠️ At age 60+, consider reducing equity exposure for capital preservation. "+
				"Current allocation may be aggressive for typical retirement needs.")
	}

	if profile.MonthlyInvestment < 5000 {
		warnings = append(warnings,
			"💡 Consider increasing monthly investment gradually as income grows. "+
				"Even small increases compound significantly over time.")
	}

	if profile.InvestmentRatio() > 50 {
		warnings = append(warnings,
			"⚠️ Investing >50% of monthly income is aggressive. "+
				"Ensure you have adequate funds for living expenses and emergencies.")
	}

	return warnings
}

// GenerateRecommendations produces personalized guidance for a profile at a
// given equity allocation
func GenerateRecommendations(profile domain.InvestorProfile, equityPct float64) []string {
	recs := []string{}

	recs = append(recs, "📋 SIMPLICITY: Keep portfolio simple with 5-7 funds total.")

	recs = append(recs,
		"🔄 REBALANCING: Review portfolio annually. Rebalance when any allocation drifts "+
			"5-10% from target. Sell outperformers, buy underperformers to maintain risk profile.")

	recs = append(recs,
		"⏱️ NO MARKET TIMING: Never try to time the market. Use 'thali approach' - "+
			"maintain diversified portions matching your age, goals, and risk appetite.")

	if equityPct > 30 {
		recs = append(recs,
			"📊 INDEX FUNDS: Use low-cost index funds (Nifty 50/Sensex) as core equity holdings. "+
				"They provide market returns with minimal expense ratios (0.05-0.20%).")
	}

	if profile.MonthlyInvestment > 0 {
		recs = append(recs,
			"💰 SIP DISCIPLINE: Continue SIPs regardless of market conditions. "+
				"Rupee cost averaging works best over 10+ years. Increase SIPs with salary growth.")
	}

	recs = append(recs,
		"🎯 GOAL-BASED: Align investments with specific goals. "+
			"Short-term (<3 years) → Debt funds. Long-term (10+ years) → Equity funds.")

	if equityPct > 40 {
		recs = append(recs,
			"💸 TAX EFFICIENCY: Hold equity funds >1 year for LTCG tax benefits. "+
				"Consider ELSS for Section 80C deductions (3-year lock-in).")
	}

	recs = append(recs,
		"🔍 FUND SELECTION: Choose funds with consistent top-quartile performance over "+
			"10+ years. Prioritize low expense ratios and experienced fund managers.")

	recs = append(recs,
		"📅 REVIEW SCHEDULE: Review portfolio quarterly but rebalance only when portfolio "+
			"allocation across categories changes beyond 5-10% threshold.")

	return recs
}

// RiskReturnProfile classifies an equity allocation for display
func RiskReturnProfile(equityPct float64) string {
	switch {
	case equityPct >= 70:
		return "High Growth"
	case equityPct >= 50:
		return "Balanced"
	default:
		return "Conservative"
	}
}
