package pipeline

import (
	"math"
	"time"

	"github.com/tapsave/tapsave/internal/model"
)

const (
	budgetWarnAt     = 0.5
	budgetCriticalAt = 0.8
)

// EvaluateBudget measures spend against b over the current window of its
// period ending at ref. A categorized budget only counts its own category.
func EvaluateBudget(b model.Budget, expenses []model.Expense, ref time.Time) model.BudgetStatus {
	w := SelectWindow(b.Period, ref)
	inWindow := FilterByRange(expenses, w.Current)
	if name, ok := b.Category.Name(); ok {
		inWindow = FilterByCategory(inWindow, name)
	}

	st := model.BudgetStatus{
		Budget: b,
		Window: w.Current,
		Spent:  Total(inWindow),
	}
	st.Remaining = math.Max(b.Amount-st.Spent, 0)
	if b.Amount > 0 {
		st.Progress = math.Min(st.Spent/b.Amount, 1)
		st.Exceeded = st.Spent >= b.Amount
	}

	switch {
	case st.Progress >= budgetCriticalAt:
		st.Level = model.BudgetCritical
	case st.Progress >= budgetWarnAt:
		st.Level = model.BudgetWarning
	default:
		st.Level = model.BudgetOK
	}
	return st
}

// EvaluateBudgets evaluates every budget against the same expenses.
func EvaluateBudgets(budgets []model.Budget, expenses []model.Expense, ref time.Time) []model.BudgetStatus {
	statuses := make([]model.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		statuses = append(statuses, EvaluateBudget(b, expenses, ref))
	}
	return statuses
}

// SummarizeGoals totals saved and target amounts across goals.
func SummarizeGoals(goals []model.SavingGoal) model.GoalSummary {
	sum := model.GoalSummary{Count: len(goals)}
	for _, g := range goals {
		sum.TotalSaved += g.CurrentAmount
		sum.TotalTarget += g.TargetAmount
		if g.Completed {
			sum.Completed++
		}
	}
	if sum.TotalTarget > 0 {
		sum.OverallProgress = math.Min(sum.TotalSaved/sum.TotalTarget, 1)
	}
	return sum
}
