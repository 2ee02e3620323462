package allocation

import (
	"fmt"
	"math"
	"sort"

	"github.com/aristath/fundplan/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// TemplateEntry pairs a fund category key with its share of a sleeve.
// Shares within a template always sum to 100.
type TemplateEntry struct {
	Key   string
	Label string
	Share float64
}

// Keys for the optional equity rows added outside the strategy templates.
const (
	keyInternational = "international"
	keySector        = "sector"
	keyFixedDeposit  = "FD"
)

var equityTemplates = map[domain.EquityStrategy][]TemplateEntry{
	domain.StrategyIndexCore: {
		{Key: "index", Label: "Index", Share: 100},
	},
	domain.StrategyMarketWeighted: {
		{Key: "largecap", Label: "Largecap", Share: 70},
		{Key: "midcap", Label: "Midcap", Share: 20},
		{Key: "smallcap", Label: "Smallcap", Share: 10},
	},
	domain.StrategyBalancedGrowth: {
		{Key: "largecap", Label: "Largecap", Share: 45},
		{Key: "midcap", Label: "Midcap", Share: 30},
		{Key: "smallcap", Label: "Smallcap", Share: 25},
	},
	domain.StrategyAggressiveGrowth: {
		{Key: "largecap", Label: "Largecap", Share: 35},
		{Key: "midcap", Label: "Midcap", Share: 35},
		{Key: "smallcap", Label: "Smallcap", Share: 30},
	},
}

var debtTemplates = map[domain.Timeframe][]TemplateEntry{
	domain.TimeframeLongTerm: {
		{Key: keyFixedDeposit, Label: "FD", Share: 100},
	},
}

var equityStrategyDescriptions = map[domain.EquityStrategy]string{
	domain.StrategyIndexCore:        "Investment in 100% Largecap Index funds - Low cost, market returns (like Nifty 50/Sensex)",
	domain.StrategyMarketWeighted:   "Investment in 70% Largecap, 20% Midcap, 10% Smallcap - Conservative, mirrors market",
	domain.StrategyBalancedGrowth:   "Investment in 45% Largecap, 30% Midcap, 25% Smallcap - Balanced risk-return",
	domain.StrategyAggressiveGrowth: "Investment in 35% Largecap, 35% Midcap, 30% Smallcap - Maximum growth potential",
}

var debtStrategyDescriptions = map[domain.Timeframe]string{
	domain.TimeframeLongTerm: "FD for safe long-term low-risk returns",
}

// equityStrategyOrder fixes the listing order for API consumers.
var equityStrategyOrder = []domain.EquityStrategy{
	domain.StrategyIndexCore,
	domain.StrategyMarketWeighted,
	domain.StrategyBalancedGrowth,
	domain.StrategyAggressiveGrowth,
}

var debtStrategyOrder = []domain.Timeframe{
	domain.TimeframeLongTerm,
}

// displayOrder ranks allocation keys for stable rendering in exports.
var displayOrder = map[string]int{
	"index":          0,
	"largecap":       1,
	"midcap":         2,
	"smallcap":       3,
	keyInternational: 4,
	keySector:        5,
	keyFixedDeposit:  6,
}

func init() {
	for strategy, template := range equityTemplates {
		assertTemplateSum(fmt.Sprintf("equity template %q", strategy), template)
	}
	for strategy, template := range debtTemplates {
		assertTemplateSum(fmt.Sprintf("debt template %q", strategy), template)
	}
}

func assertTemplateSum(name string, template []TemplateEntry) {
	shares := make([]float64, len(template))
	for i, entry := range template {
		shares[i] = entry.Share
	}
	if total := floats.Sum(shares); math.Abs(total-100) > 1e-9 {
		panic(fmt.Sprintf("%s shares sum to %v, want 100", name, total))
	}
}

// StrategyInfo describes one selectable strategy for API consumers
type StrategyInfo struct {
	Weights     map[string]float64 `json:"weights"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
}

// EquityStrategies lists the known equity strategies in display order
func EquityStrategies() []StrategyInfo {
	infos := make([]StrategyInfo, 0, len(equityStrategyOrder))
	for _, strategy := range equityStrategyOrder {
		infos = append(infos, StrategyInfo{
			Name:        string(strategy),
			Description: equityStrategyDescriptions[strategy],
			Weights:     templateWeights(equityTemplates[strategy]),
		})
	}
	return infos
}

// DebtStrategies lists the known debt strategies in display order
func DebtStrategies() []StrategyInfo {
	infos := make([]StrategyInfo, 0, len(debtStrategyOrder))
	for _, strategy := range debtStrategyOrder {
		infos = append(infos, StrategyInfo{
			Name:        string(strategy),
			Description: debtStrategyDescriptions[strategy],
			Weights:     templateWeights(debtTemplates[strategy]),
		})
	}
	return infos
}

// StrategyDescription returns the description for an equity strategy
func StrategyDescription(strategy domain.EquityStrategy) string {
	return equityStrategyDescriptions[strategy]
}

func templateWeights(template []TemplateEntry) map[string]float64 {
	weights := make(map[string]float64, len(template))
	for _, entry := range template {
		weights[entry.Key] = entry.Share
	}
	return weights
}

// OrderedKeys returns allocation keys in canonical display order, with
// unknown keys sorted alphabetically at the end
func OrderedKeys(allocations map[string]FundAllocation) []string {
	keys := make([]string, 0, len(allocations))
	for key := range allocations {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iKnown := displayOrder[keys[i]]
		rj, jKnown := displayOrder[keys[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
