// Package breakdown partitions the portfolio's current value by a
// single classifier (asset category or risk level).
package breakdown

import (
	"github.com/shopspring/decimal"

	"github.com/simaogato/investment-tracker/internal/domain"
	"github.com/simaogato/investment-tracker/internal/usecase/valuation"
)

var oneHundred = decimal.NewFromInt(100)

// Classifier maps an investment to its group key
type Classifier func(domain.Investment) string

// Breakdown is an insertion-ordered set of groups. Iteration order is
// the order of first occurrence in the input, which keeps output
// deterministic; callers needing a fixed display order re-sort against
// the domain enumerations.
type Breakdown struct {
	groups []domain.BreakdownGroup
	index  map[string]int
}

// Groups returns the groups in insertion order
func (b *Breakdown) Groups() []domain.BreakdownGroup {
	out := make([]domain.BreakdownGroup, len(b.groups))
	copy(out, b.groups)
	return out
}

// Get returns the group for the given key, if present
func (b *Breakdown) Get(key string) (domain.BreakdownGroup, bool) {
	i, ok := b.index[key]
	if !ok {
		return domain.BreakdownGroup{}, false
	}
	return b.groups[i], true
}

// Len returns the number of groups
func (b *Breakdown) Len() int {
	return len(b.groups)
}

// Compute aggregates the lot list by the classifier key.
// Logic:
//  1. Single pass accumulating value and count per group
//  2. Second pass dividing each group's value by the grand total to
//     produce its percentage (0 when the grand total is 0)
//
// Groups absent from the input are absent from the output; there are no
// zero-filled rows.
func Compute(investments []domain.Investment, classify Classifier) *Breakdown {
	b := &Breakdown{index: make(map[string]int)}

	total := decimal.Zero
	for _, inv := range investments {
		value := valuation.CurrentValue(inv)
		total = total.Add(value)

		key := classify(inv)
		i, ok := b.index[key]
		if !ok {
			i = len(b.groups)
			b.index[key] = i
			b.groups = append(b.groups, domain.BreakdownGroup{Key: key})
		}
		b.groups[i].Value = b.groups[i].Value.Add(value)
		b.groups[i].Count++
	}

	if total.GreaterThan(decimal.Zero) {
		for i := range b.groups {
			b.groups[i].Percentage = b.groups[i].Value.Div(total).Mul(oneHundred)
		}
	}

	return b
}

// ByCategory aggregates the lot list by asset category
func ByCategory(investments []domain.Investment) *Breakdown {
	return Compute(investments, func(inv domain.Investment) string {
		return string(inv.Category)
	})
}

// ByRiskLevel aggregates the lot list by risk level
func ByRiskLevel(investments []domain.Investment) *Breakdown {
	return Compute(investments, func(inv domain.Investment) string {
		return string(inv.RiskLevel)
	})
}
