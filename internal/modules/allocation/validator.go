package allocation

import (
	"fmt"
	"strings"

	"github.com/aristath/fundplan/internal/domain"
)

// ValidationError represents a single profile validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (e ValidationErrors) Error() string {
	messages := make([]string, len(e))
	for i, err := range e {
		messages[i] = err.Error()
	}
	return strings.Join(messages, "; ")
}

// Validator validates investor profiles before planning
type Validator struct{}

// NewValidator creates a new profile validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks an investor profile and reports every violation found.
// Returns nil when the profile is acceptable.
func (v *Validator) Validate(profile domain.InvestorProfile) error {
	var errors ValidationErrors

	if profile.Age < 18 || profile.Age > 100 {
		errors = append(errors, ValidationError{
			Field:   "age",
			Message: "Age must be between 18 and 100",
		})
	}

	if profile.MonthlyIncome < 0 {
		errors = append(errors, ValidationError{
			Field:   "monthly_income",
			Message: "Monthly income cannot be negative",
		})
	}

	if profile.MonthlyInvestment < 0 {
		errors = append(errors, ValidationError{
			Field:   "monthly_investment",
			Message: "Monthly investment cannot be negative",
		})
	}

	if profile.MonthlyInvestment > profile.MonthlyIncome {
		errors = append(errors, ValidationError{
			Field:   "monthly_investment",
			Message: "Monthly investment cannot exceed monthly income",
		})
	}

	if profile.LumpSumInvestment < 0 {
		errors = append(errors, ValidationError{
			Field:   "lump_sum_investment",
			Message: "Lumpsum investment cannot be negative",
		})
	}

	if profile.CustomEquityPercentage != nil {
		if pct := *profile.CustomEquityPercentage; pct < 0 || pct > 100 {
			errors = append(errors, ValidationError{
				Field:   "custom_equity_percentage",
				Message: "Custom equity percentage must be between 0 and 100",
			})
		}
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
