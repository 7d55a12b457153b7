package pipeline

import (
	"time"

	"github.com/tapsave/tapsave/internal/model"
)

const (
	trendMonths   = 12
	quarterMonths = 3
	trendQuarters = trendMonths / quarterMonths
)

// AggregateQuarters splits the twelve months ending at ref into four
// consecutive quarters, oldest first, and fits a line through their totals.
// The last quarter includes ref itself. When no expense falls in the twelve
// months the result is empty and the fit degenerate.
func AggregateQuarters(expenses []model.Expense, ref time.Time) ([]model.QuarterlyAggregate, LinearFit) {
	start, ok := AddMonths(ref, -trendMonths)
	if !ok {
		return []model.QuarterlyAggregate{}, FitLine(nil)
	}

	quarters := make([]model.QuarterlyAggregate, trendQuarters)
	for i := range quarters {
		qs, _ := AddMonths(ref, -trendMonths+i*quarterMonths)
		quarters[i].QuarterStart = qs
	}

	found := false
	for _, e := range expenses {
		if e.Date.Before(start) || e.Date.After(ref) {
			continue
		}
		quarters[quarterIndex(quarters, e.Date)].Total += e.Amount
		found = true
	}
	if !found {
		return []model.QuarterlyAggregate{}, FitLine(nil)
	}

	totals := make([]float64, len(quarters))
	for i, q := range quarters {
		totals[i] = q.Total
	}
	fit := FitLine(totals)
	for i := range quarters {
		quarters[i].TrendValue = fit.At(float64(i))
	}
	return quarters, fit
}

func quarterIndex(quarters []model.QuarterlyAggregate, t time.Time) int {
	for i := len(quarters) - 1; i > 0; i-- {
		if !t.Before(quarters[i].QuarterStart) {
			return i
		}
	}
	return 0
}
