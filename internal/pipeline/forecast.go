package pipeline

import (
	"math"
	"sort"
	"time"

	"github.com/tapsave/tapsave/internal/model"
)

const (
	// ForecastWindowMonths is how far back monthly history is collected.
	ForecastWindowMonths = 6
	// MinForecastMonths is the least number of non-empty months a category needs.
	MinForecastMonths = 3

	maxDataBonus      = 0.2
	dataBonusPerMonth = 0.02
)

// ForecastCategories projects next month's spend per category from the
// monthly totals of the six months ending at ref. Categories with fewer than
// MinForecastMonths non-empty months are left out. Forecasts are ordered by
// the size of their relative change, largest first.
func ForecastCategories(expenses []model.Expense, ref time.Time) model.ForecastSummary {
	start, ok := AddMonths(ref, -ForecastWindowMonths)
	if !ok {
		start = ref
	}
	window := model.DateRange{Start: start, End: ref}

	byCategory := make(map[string]map[int]float64)
	var order []string
	for _, e := range FilterByRange(expenses, window) {
		key := e.Category.Label()
		months, ok := byCategory[key]
		if !ok {
			months = make(map[int]float64)
			byCategory[key] = months
			order = append(order, key)
		}
		months[monthIndex(e.Date)] += e.Amount
	}

	summary := model.ForecastSummary{Forecasts: []model.CategoryForecast{}}
	current := monthIndex(ref)

	for _, key := range order {
		series := monthlySeries(byCategory[key])
		if len(series) < MinForecastMonths {
			continue
		}
		fit := FitLine(series)
		summary.Forecasts = append(summary.Forecasts, model.CategoryForecast{
			Category:                 key,
			CurrentPeriodTotal:       byCategory[key][current],
			PredictedNextPeriodTotal: math.Max(fit.At(float64(len(series))), 0),
			Confidence:               confidence(series),
			Months:                   len(series),
		})
	}

	sort.SliceStable(summary.Forecasts, func(i, j int) bool {
		return math.Abs(summary.Forecasts[i].PercentChange()) > math.Abs(summary.Forecasts[j].PercentChange())
	})

	var confSum float64
	for _, f := range summary.Forecasts {
		summary.TotalPredicted += f.PredictedNextPeriodTotal
		summary.TotalCurrent += f.CurrentPeriodTotal
		confSum += f.Confidence
	}
	if n := len(summary.Forecasts); n > 0 {
		summary.AverageConfidence = confSum / float64(n)
	}
	return summary
}

// monthlySeries returns the non-zero monthly totals in chronological order.
func monthlySeries(months map[int]float64) []float64 {
	keys := make([]int, 0, len(months))
	for k, v := range months {
		if v > 0 {
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)

	series := make([]float64, len(keys))
	for i, k := range keys {
		series[i] = months[k]
	}
	return series
}

// confidence scores a series in [0, 1]: the inverse of one plus its
// coefficient of variation, plus a bonus for the number of points.
func confidence(values []float64) float64 {
	mean, stdDev := meanStdDev(values)
	cv := 1.0
	if mean != 0 {
		cv = stdDev / mean
	}
	base := 1 / (1 + cv)
	bonus := math.Min(maxDataBonus, dataBonusPerMonth*float64(len(values)))
	return math.Min(1, base+bonus)
}

// meanStdDev returns the mean and population standard deviation.
func meanStdDev(values []float64) (mean, stdDev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	n := float64(len(values))
	for _, v := range values {
		mean += v
	}
	mean /= n

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(sq / n)
}
