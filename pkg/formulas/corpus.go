// Package formulas provides financial math used by the planning modules.
package formulas

import "math"

// Default assumptions for retirement projections.
const (
	DefaultRetirementAge  = 60
	DefaultExpectedReturn = 12.0
)

// EstimateCorpusAtRetirement returns the future value of a monthly SIP
// compounded monthly from the current age until the retirement age. The
// expected return is an annual percentage, e.g. 12.0 for 12% p.a.
func EstimateCorpusAtRetirement(monthlySIP float64, currentAge, retirementAge int, expectedReturn float64) float64 {
	months := float64((retirementAge - currentAge) * 12)
	monthlyReturn := expectedReturn / 12 / 100

	if monthlyReturn == 0 {
		return monthlySIP * months
	}

	fv := monthlySIP * ((math.Pow(1+monthlyReturn, months) - 1) / monthlyReturn) * (1 + monthlyReturn)
	return math.Round(fv*100) / 100
}

// ExpectedReturnForEquity maps an equity allocation percentage to an assumed
// annual return between 8% (all debt) and 12% (all equity).
func ExpectedReturnForEquity(equityPct float64) float64 {
	return 8 + (equityPct/100)*4
}
