package allocation

import "github.com/aristath/fundplan/pkg/formulas"

// maxProjectionAge caps growth projections to keep charts readable.
const maxProjectionAge = 75

// ProjectionPoint is one step of a projected corpus growth series
type ProjectionPoint struct {
	Age    int     `json:"age"`
	Corpus float64 `json:"corpus"`
}

// Projection is a corpus growth estimate for a monthly SIP
type Projection struct {
	Points         []ProjectionPoint `json:"points"`
	ExpectedReturn float64           `json:"expected_return"`
	RetirementAge  int               `json:"retirement_age"`
}

// BuildGrowthProjection estimates corpus growth year by year from the
// current age until retirement (capped at 74). The assumed return scales
// with the equity share of the plan.
func BuildGrowthProjection(monthlySIP float64, currentAge, retirementAge int, equityPct float64) Projection {
	expectedReturn := formulas.ExpectedReturnForEquity(equityPct)

	points := []ProjectionPoint{}
	maxAge := retirementAge + 1
	if maxAge > maxProjectionAge {
		maxAge = maxProjectionAge
	}
	for age := currentAge + 1; age < maxAge; age++ {
		points = append(points, ProjectionPoint{
			Age:    age,
			Corpus: formulas.EstimateCorpusAtRetirement(monthlySIP, currentAge, age, expectedReturn),
		})
	}

	return Projection{
		Points:         points,
		ExpectedReturn: expectedReturn,
		RetirementAge:  retirementAge,
	}
}
