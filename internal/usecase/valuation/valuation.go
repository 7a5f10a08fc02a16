// Package valuation provides the per-lot valuation primitives shared by
// every portfolio computation. A lot without an observed current price
// is valued at its purchase price; this fallback is a deliberate
// valuation policy, not an error state.
package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/simaogato/investment-tracker/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// CurrentValue returns the market value of a lot:
// quantity * currentPrice, falling back to the purchase price when no
// current price has been observed.
func CurrentValue(inv domain.Investment) decimal.Decimal {
	price := inv.PurchasePrice
	if inv.CurrentPrice != nil {
		price = *inv.CurrentPrice
	}
	return inv.Quantity.Mul(price)
}

// CostBasis returns the stored total cost of the lot
// (quantity * purchasePrice + fees, computed at creation/edit time)
func CostBasis(inv domain.Investment) decimal.Decimal {
	return inv.TotalCost
}

// GainLoss returns the absolute gain or loss of the lot
func GainLoss(inv domain.Investment) decimal.Decimal {
	return CurrentValue(inv).Sub(CostBasis(inv))
}

// GainLossPercent returns the gain/loss of the lot as a percentage of
// its cost basis. The second return value is false when the cost basis
// is not positive; callers must not display a percentage in that case.
func GainLossPercent(inv domain.Investment) (decimal.Decimal, bool) {
	cost := CostBasis(inv)
	if cost.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false
	}
	return GainLoss(inv).Div(cost).Mul(oneHundred), true
}

// TotalValue sums the current value of every lot in the list
func TotalValue(investments []domain.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(CurrentValue(inv))
	}
	return total
}
