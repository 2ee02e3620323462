package allocation

import (
	"testing"

	"github.com/aristath/fundplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() domain.InvestorProfile {
	return domain.InvestorProfile{
		Age:               30,
		MonthlyIncome:     100000,
		MonthlyInvestment: 20000,
	}
}

func TestValidator_ValidProfile(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(validProfile()))
}

func TestValidator_SingleViolations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.InvestorProfile)
		expected string
	}{
		{
			name:     "age too low",
			mutate:   func(p *domain.InvestorProfile) { p.Age = 17 },
			expected: "Age must be between 18 and 100",
		},
		{
			name:     "age too high",
			mutate:   func(p *domain.InvestorProfile) { p.Age = 101 },
			expected: "Age must be between 18 and 100",
		},
		{
			name:     "negative income",
			mutate:   func(p *domain.InvestorProfile) { p.MonthlyIncome = -1; p.MonthlyInvestment = -1 },
			expected: "Monthly income cannot be negative",
		},
		{
			name:     "negative investment",
			mutate:   func(p *domain.InvestorProfile) { p.MonthlyInvestment = -500 },
			expected: "Monthly investment cannot be negative",
		},
		{
			name:     "investment above income",
			mutate:   func(p *domain.InvestorProfile) { p.MonthlyInvestment = p.MonthlyIncome + 1 },
			expected: "Monthly investment cannot exceed monthly income",
		},
		{
			name:     "negative lumpsum",
			mutate:   func(p *domain.InvestorProfile) { p.LumpSumInvestment = -100 },
			expected: "Lumpsum investment cannot be negative",
		},
		{
			name:     "custom equity above hundred",
			mutate:   func(p *domain.InvestorProfile) { p.CustomEquityPercentage = floatPtr(101) },
			expected: "Custom equity percentage must be between 0 and 100",
		},
		{
			name:     "custom equity below zero",
			mutate:   func(p *domain.InvestorProfile) { p.CustomEquityPercentage = floatPtr(-1) },
			expected: "Custom equity percentage must be between 0 and 100",
		},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			tt.mutate(&profile)

			err := v.Validate(profile)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestValidator_CollectsAllViolations(t *testing.T) {
	v := NewValidator()

	profile := domain.InvestorProfile{
		Age:                    12,
		MonthlyIncome:          -1000,
		MonthlyInvestment:      5000,
		LumpSumInvestment:      -50,
		CustomEquityPercentage: floatPtr(200),
	}

	err := v.Validate(profile)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 5)

	fields := make([]string, len(verrs))
	for i, ve := range verrs {
		fields[i] = ve.Field
	}
	assert.Contains(t, fields, "age")
	assert.Contains(t, fields, "monthly_income")
	assert.Contains(t, fields, "monthly_investment")
	assert.Contains(t, fields, "lump_sum_investment")
	assert.Contains(t, fields, "custom_equity_percentage")
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "age", Message: "Age must be between 18 and 100"}
	assert.Equal(t, "age: Age must be between 18 and 100", err.Error())
}

func TestValidationErrors_JoinsMessages(t *testing.T) {
	errs := ValidationErrors{
		{Field: "age", Message: "too young"},
		{Field: "monthly_income", Message: "negative"},
	}
	assert.Equal(t, "age: too young; monthly_income: negative", errs.Error())
}

func TestValidator_BoundaryValues(t *testing.T) {
	v := NewValidator()

	for _, age := range []int{18, 100} {
		profile := validProfile()
		profile.Age = age
		assert.NoError(t, v.Validate(profile), "age %d should be valid", age)
	}

	profile := validProfile()
	profile.CustomEquityPercentage = floatPtr(0)
	assert.NoError(t, v.Validate(profile))

	profile.CustomEquityPercentage = floatPtr(100)
	assert.NoError(t, v.Validate(profile))

	// Investing the entire income is allowed, just warned about later.
	profile = validProfile()
	profile.MonthlyInvestment = profile.MonthlyIncome
	assert.NoError(t, v.Validate(profile))
}
