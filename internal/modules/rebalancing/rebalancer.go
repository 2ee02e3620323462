// Package rebalancing provides portfolio drift analysis and trade
// calculation against a plan's target allocations.
package rebalancing

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultDriftThreshold is the drift in percent points that flags a fund
	DefaultDriftThreshold = 5.0

	// minTradeAmount filters out trades too small to be worth placing
	minTradeAmount = 100.0
)

// ErrNonPositiveValue reports a portfolio with no positive total value.
var ErrNonPositiveValue = errors.New("current portfolio value must be positive")

// CalculateCurrentAllocation converts fund values into percentage
// allocations. A portfolio with no positive total yields an empty map.
func CalculateCurrentAllocation(currentValues map[string]float64) map[string]float64 {
	var total float64
	for _, value := range currentValues {
		total += value
	}
	if total <= 0 {
		return map[string]float64{}
	}

	allocation := make(map[string]float64, len(currentValues))
	for fund, value := range currentValues {
		allocation[fund] = round(value/total*100, 2)
	}
	return allocation
}

// CalculateRebalanceTrades computes the buy (positive) or sell (negative)
// amount per fund needed to reach the target percentages. Funds appearing
// in either map are considered; trades at or below the minimum are dropped.
func CalculateRebalanceTrades(currentValues, targetPct map[string]float64) (map[string]float64, error) {
	var totalValue float64
	for _, value := range currentValues {
		totalValue += value
	}
	if totalValue <= 0 {
		return nil, ErrNonPositiveValue
	}

	funds := make(map[string]struct{}, len(currentValues)+len(targetPct))
	for fund := range currentValues {
		funds[fund] = struct{}{}
	}
	for fund := range targetPct {
		funds[fund] = struct{}{}
	}

	trades := make(map[string]float64)
	for fund := range funds {
		targetAmount := targetPct[fund] / 100 * totalValue
		tradeAmount := targetAmount - currentValues[fund]
		if math.Abs(tradeAmount) > minTradeAmount {
			trades[fund] = round(tradeAmount, 2)
		}
	}
	return trades, nil
}

// CheckRebalancingNeeded compares current against target percentages and
// reports funds whose drift meets the threshold. Funds absent from the
// current portfolio count as 0%. Messages are ordered by fund name.
func CheckRebalancingNeeded(currentPct, targetPct map[string]float64, driftThreshold float64) (bool, []string) {
	funds := make([]string, 0, len(targetPct))
	for fund := range targetPct {
		funds = append(funds, fund)
	}
	sort.Strings(funds)

	drifted := []string{}
	for _, fund := range funds {
		target := targetPct[fund]
		current := currentPct[fund]
		drift := math.Abs(current - target)

		if drift >= driftThreshold {
			drifted = append(drifted,
				fmt.Sprintf("%s: Target %v%%, Current %v%%, Drift %.1f%%", fund, target, current, drift))
		}
	}

	return len(drifted) > 0, drifted
}

// DriftStats summarizes the absolute drift across all target funds
func DriftStats(currentPct, targetPct map[string]float64) (maxDrift, meanDrift float64) {
	if len(targetPct) == 0 {
		return 0, 0
	}

	drifts := make([]float64, 0, len(targetPct))
	for fund, target := range targetPct {
		drifts = append(drifts, math.Abs(currentPct[fund]-target))
	}

	return round(floats.Max(drifts), 2), round(stat.Mean(drifts, nil), 2)
}

// round rounds a float64 to n decimal places
func round(val float64, decimals int) float64 {
	multiplier := math.Pow(10, float64(decimals))
	return math.Round(val*multiplier) / multiplier
}
