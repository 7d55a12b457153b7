package model

import "time"

// Budget is a spending ceiling for a period, optionally limited to one category.
// An Uncategorized Category means the budget covers every expense.
type Budget struct {
	ID        string
	Amount    float64
	Period    Period
	Category  Category
	StartDate time.Time
}

// BudgetLevel grades how much of a budget is used.
type BudgetLevel int

const (
	BudgetOK       BudgetLevel = iota // under 50%
	BudgetWarning                     // 50% up to 80%
	BudgetCritical                    // 80% and above
)

func (l BudgetLevel) String() string {
	switch l {
	case BudgetWarning:
		return "warning"
	case BudgetCritical:
		return "critical"
	default:
		return "ok"
	}
}

// BudgetStatus is a budget evaluated against the expenses of its current window.
type BudgetStatus struct {
	Budget    Budget
	Window    DateRange
	Spent     float64
	Remaining float64
	Progress  float64 // 0..1
	Level     BudgetLevel
	Exceeded  bool
}
