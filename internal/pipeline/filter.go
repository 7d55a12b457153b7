package pipeline

import (
	"strings"

	"github.com/tapsave/tapsave/internal/model"
)

// AmountRange is a closed amount interval used by list filters.
type AmountRange struct {
	Label string
	Min   float64
	Max   float64
}

// AmountRanges are the predefined amount filters offered by the list view.
var AmountRanges = []AmountRange{
	{Label: "0 - 50", Min: 0, Max: 50},
	{Label: "51 - 100", Min: 51, Max: 100},
	{Label: "101 - 500", Min: 101, Max: 500},
	{Label: "501+", Min: 501, Max: 10000},
}

// FilterByRange returns a new slice with the expenses dated within r (both ends included).
func FilterByRange(expenses []model.Expense, r model.DateRange) []model.Expense {
	result := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if r.Contains(e.Date) {
			result = append(result, e)
		}
	}
	return result
}

// FilterByCategory returns expenses whose category label matches, ignoring case.
// An empty label returns the input unchanged.
func FilterByCategory(expenses []model.Expense, label string) []model.Expense {
	if label == "" {
		return expenses
	}
	var result []model.Expense
	for _, e := range expenses {
		if strings.EqualFold(e.Category.Label(), label) {
			result = append(result, e)
		}
	}
	return result
}

// FilterByAmount returns expenses with min <= amount <= max.
func FilterByAmount(expenses []model.Expense, min, max float64) []model.Expense {
	var result []model.Expense
	for _, e := range expenses {
		if e.Amount >= min && e.Amount <= max {
			result = append(result, e)
		}
	}
	return result
}

// Total sums the amounts.
func Total(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}
