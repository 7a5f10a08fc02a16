// Package history maintains the per-series historical value time
// series: date-deduplicated, date-ordered, and bounded.
package history

import (
	"sort"

	"github.com/simaogato/investment-tracker/internal/domain"
)

// PortfolioSeries is the series key for total portfolio value
const PortfolioSeries = "portfolio"

// maxPoints caps each series at the most recent 1000 points to prevent
// storage bloat; older points are dropped silently, oldest first.
const maxPoints = 1000

// Append merges a new point into the series without mutating the input.
// Logic:
//  1. Remove any existing point for the same calendar date
//     (same-day appends are last-write-wins)
//  2. Insert the new point and sort ascending by date
//  3. Truncate to the most recent maxPoints, dropping from the front
func Append(points []domain.HistoricalDataPoint, point domain.HistoricalDataPoint) []domain.HistoricalDataPoint {
	merged := make([]domain.HistoricalDataPoint, 0, len(points)+1)
	for _, p := range points {
		if p.Date != point.Date {
			merged = append(merged, p)
		}
	}
	merged = append(merged, point)

	// ISO dates sort chronologically as strings
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Date < merged[j].Date
	})

	if len(merged) > maxPoints {
		merged = merged[len(merged)-maxPoints:]
	}

	return merged
}
