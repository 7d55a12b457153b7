package pipeline

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tapsave/tapsave/internal/model"
)

func syntheticExpenses(n int) []model.Expense {
	rng := rand.New(rand.NewSource(1))
	cats := []string{"Comida", "Casa", "Salud", "Transporte", "Compras", ""}
	ref := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

	expenses := make([]model.Expense, n)
	for i := range expenses {
		expenses[i] = model.Expense{
			Amount:   float64(rng.Intn(100000)) / 100,
			Date:     ref.Add(-time.Duration(rng.Intn(365*24)) * time.Hour),
			Category: model.Labeled(cats[rng.Intn(len(cats))]),
		}
	}
	return expenses
}

func BenchmarkAggregateCategories(b *testing.B) {
	expenses := syntheticExpenses(50000)
	w := SelectWindow(model.PeriodYear, time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = AggregateCategories(expenses, w.Current)
	}
}

func BenchmarkForecastCategories(b *testing.B) {
	expenses := syntheticExpenses(50000)
	ref := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ForecastCategories(expenses, ref)
	}
}

func BenchmarkAggregateQuarters(b *testing.B) {
	expenses := syntheticExpenses(50000)
	ref := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = AggregateQuarters(expenses, ref)
	}
}
