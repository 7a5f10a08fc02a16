// Package scenario evaluates how well the portfolio is positioned for
// each of the fixed market scenarios. The strength score rewards both
// how much of the portfolio is exposed to a scenario and how many
// independent asset categories provide that exposure, so a single
// concentrated position cannot appear fully hedged.
package scenario

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/simaogato/investment-tracker/internal/domain"
	"github.com/simaogato/investment-tracker/internal/usecase/valuation"
)

var (
	oneHundred     = decimal.NewFromInt(100)
	exposureWeight = decimal.RequireFromString("1.4")
	baseCap        = decimal.NewFromInt(70)
	bonusPerGroup  = decimal.NewFromInt(10)
	bonusCap       = decimal.NewFromInt(30)
)

// Tier is the qualitative bucket derived from a strength score
type Tier string

const (
	TierStrong   Tier = "Strong"
	TierModerate Tier = "Moderate"
	TierWeak     Tier = "Weak"
	TierNone     Tier = "None"
)

// Classify maps a strength score to its tier
func Classify(score int) Tier {
	switch {
	case score >= 70:
		return TierStrong
	case score >= 40:
		return TierModerate
	case score >= 15:
		return TierWeak
	default:
		return TierNone
	}
}

// Analyze computes a ScenarioAnalysis for every market scenario,
// sorted descending by strength score. The sort is stable, so ties keep
// the scenario enumeration order. An empty lot list yields an empty
// result: there is nothing to analyze before any data exists.
//
// Per scenario:
//  1. Collect the lots tagged for it
//  2. Exposure value = sum of their current values;
//     exposure % = share of total portfolio value, rounded to 2 places
//  3. Strength score = min(exposure% * 1.4, 70) plus 10 points per
//     distinct category among the relevant lots (capped at 30), the sum
//     rounded and capped at 100. Zero exposure scores 0.
//
// A zero-value portfolio produces all-zero exposures and scores; the
// analyzer never divides by zero.
func Analyze(investments []domain.Investment) []domain.ScenarioAnalysis {
	results := make([]domain.ScenarioAnalysis, 0, len(domain.MarketScenarios()))
	if len(investments) == 0 {
		return results
	}

	totalValue := valuation.TotalValue(investments)

	for _, s := range domain.MarketScenarios() {
		exposureValue := decimal.Zero
		count := 0
		categories := make(map[domain.Category]struct{})
		for _, inv := range investments {
			if !inv.ThrivesIn(s) {
				continue
			}
			exposureValue = exposureValue.Add(valuation.CurrentValue(inv))
			count++
			categories[inv.Category] = struct{}{}
		}

		exposure := decimal.Zero
		if totalValue.GreaterThan(decimal.Zero) {
			exposure = exposureValue.Div(totalValue).Mul(oneHundred)
		}

		info := s.Info()
		results = append(results, domain.ScenarioAnalysis{
			Scenario:        s,
			Label:           info.Label,
			Description:     info.Description,
			Exposure:        exposure.Round(2),
			ExposureValue:   exposureValue,
			InvestmentCount: count,
			StrengthScore:   strengthScore(exposure, len(categories)),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].StrengthScore > results[j].StrengthScore
	})

	return results
}

// strengthScore combines exposure magnitude and category diversity into
// a bounded 0-100 score. The exposure component saturates at 70 once
// half the portfolio is exposed; the diversity bonus saturates at 3
// distinct categories.
func strengthScore(exposure decimal.Decimal, distinctCategories int) int {
	if !exposure.GreaterThan(decimal.Zero) {
		return 0
	}

	base := exposure.Mul(exposureWeight)
	if base.GreaterThan(baseCap) {
		base = baseCap
	}

	bonus := decimal.NewFromInt(int64(distinctCategories)).Mul(bonusPerGroup)
	if bonus.GreaterThan(bonusCap) {
		bonus = bonusCap
	}

	score := base.Add(bonus).Round(0).IntPart()
	if score > 100 {
		score = 100
	}
	return int(score)
}
