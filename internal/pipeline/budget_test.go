package pipeline

import (
	"testing"

	"github.com/tapsave/tapsave/internal/model"
)

func TestEvaluateBudget_Levels(t *testing.T) {
	ref := localDate(t, "2024-06-15")
	day := localDate(t, "2024-06-10")

	tests := []struct {
		spent    float64
		level    model.BudgetLevel
		progress float64
		exceeded bool
	}{
		{40, model.BudgetOK, 0.4, false},
		{50, model.BudgetWarning, 0.5, false},
		{80, model.BudgetCritical, 0.8, false},
		{120, model.BudgetCritical, 1, true},
	}
	for _, tt := range tests {
		b := model.Budget{Amount: 100, Period: model.PeriodMonth}
		st := EvaluateBudget(b, []model.Expense{expense(tt.spent, day, "Comida")}, ref)
		if st.Level != tt.level {
			t.Errorf("spent %v: Level = %v, want %v", tt.spent, st.Level, tt.level)
		}
		if !approx(st.Progress, tt.progress) {
			t.Errorf("spent %v: Progress = %v, want %v", tt.spent, st.Progress, tt.progress)
		}
		if st.Exceeded != tt.exceeded {
			t.Errorf("spent %v: Exceeded = %v, want %v", tt.spent, st.Exceeded, tt.exceeded)
		}
		if st.Remaining < 0 {
			t.Errorf("spent %v: Remaining = %v, want >= 0", tt.spent, st.Remaining)
		}
	}
}

func TestEvaluateBudget_CategoryAndWindow(t *testing.T) {
	ref := localDate(t, "2024-06-15")
	expenses := []model.Expense{
		expense(30, localDate(t, "2024-06-14"), "Comida"),
		expense(20, localDate(t, "2024-06-13"), "Casa"),
		expense(99, localDate(t, "2024-06-01"), "Comida"), // outside the week
	}
	b := model.Budget{Amount: 60, Period: model.PeriodWeek, Category: model.Labeled("comida")}

	st := EvaluateBudget(b, expenses, ref)
	if st.Spent != 30 {
		t.Errorf("Spent = %v, want 30", st.Spent)
	}
	if st.Remaining != 30 {
		t.Errorf("Remaining = %v, want 30", st.Remaining)
	}

	all := EvaluateBudgets([]model.Budget{b, {Amount: 60, Period: model.PeriodWeek}}, expenses, ref)
	if len(all) != 2 || all[1].Spent != 50 {
		t.Errorf("EvaluateBudgets = %+v, want second spent 50", all)
	}
}

func TestEvaluateBudget_ZeroAmount(t *testing.T) {
	st := EvaluateBudget(model.Budget{Period: model.PeriodMonth}, nil, localDate(t, "2024-06-15"))
	if st.Progress != 0 || st.Exceeded {
		t.Errorf("status = %+v, want zero progress and not exceeded", st)
	}
}

func TestSummarizeGoals(t *testing.T) {
	goals := []model.SavingGoal{
		{TargetAmount: 1000, CurrentAmount: 250},
		{TargetAmount: 500, CurrentAmount: 500, Completed: true},
	}
	sum := SummarizeGoals(goals)
	if sum.Count != 2 || sum.Completed != 1 {
		t.Errorf("Count/Completed = %d/%d, want 2/1", sum.Count, sum.Completed)
	}
	if !approx(sum.OverallProgress, 0.5) {
		t.Errorf("OverallProgress = %v, want 0.5", sum.OverallProgress)
	}
	if SummarizeGoals(nil).OverallProgress != 0 {
		t.Error("empty OverallProgress != 0")
	}
}
