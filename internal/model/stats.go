package model

import "time"

// CategoryAggregate holds the total spent in one category.
// Share is Total over the grand total of the same range, 0 when that is 0.
type CategoryAggregate struct {
	Category string
	Total    float64
	Share    float64
}

// DailyAggregate holds the total for a single local calendar day.
type DailyAggregate struct {
	Day   time.Time
	Total float64
}

// WeekdayAggregate holds the total for one weekday name.
type WeekdayAggregate struct {
	Weekday string
	Total   float64
}

// QuarterlyAggregate holds a 3-month total and its fitted trend value.
type QuarterlyAggregate struct {
	QuarterStart time.Time
	Total        float64
	TrendValue   float64
}

// CategoryForecast is a next-month projection for one category.
type CategoryForecast struct {
	Category                 string
	CurrentPeriodTotal       float64
	PredictedNextPeriodTotal float64
	Confidence               float64
	Months                   int // months of history the fit used
}

// PercentChange returns (predicted - current) / current, or 0 when current is 0.
func (f CategoryForecast) PercentChange() float64 {
	if f.CurrentPeriodTotal == 0 {
		return 0
	}
	return (f.PredictedNextPeriodTotal - f.CurrentPeriodTotal) / f.CurrentPeriodTotal
}

// ForecastSummary aggregates the per-category forecasts.
type ForecastSummary struct {
	Forecasts         []CategoryForecast
	TotalPredicted    float64
	TotalCurrent      float64
	AverageConfidence float64
}

// PeriodComparison holds current and previous window totals.
type PeriodComparison struct {
	Window        Window
	CurrentTotal  float64
	PreviousTotal float64
	Difference    float64
	PercentChange float64 // in percent, 0 when PreviousTotal is 0
}
