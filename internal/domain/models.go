// Package domain provides core domain models and types.
package domain

import "fmt"

// RiskLevel represents an investor's risk tolerance
type RiskLevel string

const (
	// RiskConservative favors capital preservation over growth
	RiskConservative RiskLevel = "conservative"
	// RiskModerate balances growth and stability
	RiskModerate RiskLevel = "moderate"
	// RiskAggressive favors maximum growth and accepts volatility
	RiskAggressive RiskLevel = "aggressive"
)

// ParseRiskLevel converts a string into a RiskLevel
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch RiskLevel(s) {
	case RiskConservative, RiskModerate, RiskAggressive:
		return RiskLevel(s), nil
	}
	return "", fmt.Errorf("unknown risk level: %q", s)
}

// Valid reports whether the risk level is one of the known values
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// EquityStrategy represents a named equity allocation strategy
type EquityStrategy string

const (
	// StrategyIndexCore puts the whole equity sleeve into index funds
	StrategyIndexCore EquityStrategy = "index_core"
	// StrategyMarketWeighted mirrors market-cap weights across fund sizes
	StrategyMarketWeighted EquityStrategy = "market_weighted"
	// StrategyBalancedGrowth balances large, mid and small cap exposure
	StrategyBalancedGrowth EquityStrategy = "balanced_growth"
	// StrategyAggressiveGrowth tilts heavily towards mid and small caps
	StrategyAggressiveGrowth EquityStrategy = "aggressive_growth"
)

// ParseEquityStrategy converts a string into an EquityStrategy
func ParseEquityStrategy(s string) (EquityStrategy, error) {
	switch EquityStrategy(s) {
	case StrategyIndexCore, StrategyMarketWeighted, StrategyBalancedGrowth, StrategyAggressiveGrowth:
		return EquityStrategy(s), nil
	}
	return "", fmt.Errorf("unknown equity strategy: %q", s)
}

// Valid reports whether the strategy is one of the known values
func (s EquityStrategy) Valid() bool {
	switch s {
	case StrategyIndexCore, StrategyMarketWeighted, StrategyBalancedGrowth, StrategyAggressiveGrowth:
		return true
	}
	return false
}

// Timeframe represents a goal horizon category. It doubles as the debt
// strategy key since debt products are picked by holding period.
type Timeframe string

const (
	// TimeframeShortTerm covers goals up to 3 years away
	TimeframeShortTerm Timeframe = "short_term"
	// TimeframeMediumTerm covers goals between 3 and 7 years away
	TimeframeMediumTerm Timeframe = "medium_term"
	// TimeframeLongTerm covers goals more than 7 years away
	TimeframeLongTerm Timeframe = "long_term"
)

// ParseTimeframe converts a string into a Timeframe
func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case TimeframeShortTerm, TimeframeMediumTerm, TimeframeLongTerm:
		return Timeframe(s), nil
	}
	return "", fmt.Errorf("unknown timeframe: %q", s)
}

// Valid reports whether the timeframe is one of the known values
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeShortTerm, TimeframeMediumTerm, TimeframeLongTerm:
		return true
	}
	return false
}
