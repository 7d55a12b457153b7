package pipeline

import (
	"testing"

	"github.com/tapsave/tapsave/internal/model"
)

func TestForecastCategories_ClampsAtZero(t *testing.T) {
	ref := localDate(t, "2024-06-15")
	expenses := []model.Expense{
		expense(300, localDate(t, "2024-04-10"), "Comida"),
		expense(100, localDate(t, "2024-05-10"), "Comida"),
		expense(10, localDate(t, "2024-06-10"), "Comida"),
	}

	fc := ForecastCategories(expenses, ref)
	if len(fc.Forecasts) != 1 {
		t.Fatalf("len = %d, want 1", len(fc.Forecasts))
	}
	f := fc.Forecasts[0]
	if f.PredictedNextPeriodTotal != 0 {
		t.Errorf("PredictedNextPeriodTotal = %v, want 0", f.PredictedNextPeriodTotal)
	}
	if f.CurrentPeriodTotal != 10 {
		t.Errorf("CurrentPeriodTotal = %v, want 10", f.CurrentPeriodTotal)
	}
	if f.Months != 3 {
		t.Errorf("Months = %d, want 3", f.Months)
	}
}

func TestForecastCategories_NeedsThreeMonths(t *testing.T) {
	ref := localDate(t, "2024-06-15")
	expenses := []model.Expense{
		expense(50, localDate(t, "2024-04-10"), "Salud"),
		expense(70, localDate(t, "2024-06-02"), "Salud"),
		expense(20, localDate(t, "2024-06-03"), "Salud"),
		expense(10, localDate(t, "2023-11-01"), "Salud"), // outside the window
		expense(0, localDate(t, "2024-05-01"), "Salud"),  // zero months are not history
	}

	fc := ForecastCategories(expenses, ref)
	if len(fc.Forecasts) != 0 {
		t.Errorf("forecasts = %+v, want none", fc.Forecasts)
	}
}

func TestForecastCategories_FlatSeriesConfidence(t *testing.T) {
	ref := localDate(t, "2024-06-15")
	expenses := []model.Expense{
		expense(100, localDate(t, "2024-04-05"), "Casa"),
		expense(100, localDate(t, "2024-05-05"), "Casa"),
		expense(100, localDate(t, "2024-06-05"), "Casa"),
	}

	fc := ForecastCategories(expenses, ref)
	if len(fc.Forecasts) != 1 {
		t.Fatalf("len = %d, want 1", len(fc.Forecasts))
	}
	f := fc.Forecasts[0]
	if f.Confidence != 1 {
		t.Errorf("Confidence = %v, want 1", f.Confidence)
	}
	if !approx(f.PredictedNextPeriodTotal, 100) {
		t.Errorf("PredictedNextPeriodTotal = %v, want 100", f.PredictedNextPeriodTotal)
	}
	if fc.AverageConfidence != 1 {
		t.Errorf("AverageConfidence = %v, want 1", fc.AverageConfidence)
	}
}

func TestForecastCategories_OrderedByChange(t *testing.T) {
	ref := localDate(t, "2024-06-15")
	var expenses []model.Expense
	for i, d := range []string{"2024-04-05", "2024-05-05", "2024-06-05"} {
		expenses = append(expenses,
			expense(100, localDate(t, d), "Estable"),
			expense(float64(100*(i+1)), localDate(t, d), "Creciente"),
		)
	}

	fc := ForecastCategories(expenses, ref)
	if len(fc.Forecasts) != 2 {
		t.Fatalf("len = %d, want 2", len(fc.Forecasts))
	}
	if fc.Forecasts[0].Category != "Creciente" {
		t.Errorf("first forecast = %s, want Creciente", fc.Forecasts[0].Category)
	}
	if !approx(fc.Forecasts[0].PredictedNextPeriodTotal, 400) {
		t.Errorf("Creciente predicted = %v, want 400", fc.Forecasts[0].PredictedNextPeriodTotal)
	}
	if !approx(fc.TotalPredicted, 500) {
		t.Errorf("TotalPredicted = %v, want 500", fc.TotalPredicted)
	}
	if !approx(fc.TotalCurrent, 400) {
		t.Errorf("TotalCurrent = %v, want 400", fc.TotalCurrent)
	}
}

func TestConfidence_Bounds(t *testing.T) {
	for _, series := range [][]float64{{1, 1000, 3}, {0, 0, 0}, {5, 5, 5, 5, 5, 5}} {
		c := confidence(series)
		if c < 0 || c > 1 {
			t.Errorf("confidence(%v) = %v, want within [0, 1]", series, c)
		}
	}
}
