// Package pipeline computes expense statistics and forecasts, and imports expense files.
//
// The aggregation functions are pure: they never modify their input and return
// freshly allocated results, so they are safe to call from several goroutines.
package pipeline

import (
	"iter"
	"sort"
	"time"

	"github.com/tapsave/tapsave/internal/model"
)

// weekdayOrder is the canonical Monday-first bucket order.
var weekdayOrder = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// AggregateCategories totals expenses in r per category, sorted by total
// descending. Equal totals keep the order in which categories first appear.
func AggregateCategories(expenses []model.Expense, r model.DateRange) []model.CategoryAggregate {
	filtered := FilterByRange(expenses, r)

	catMap := make(map[string]*model.CategoryAggregate)
	var order []string
	var grandTotal float64

	for _, e := range filtered {
		key := e.Category.Label()
		ca, ok := catMap[key]
		if !ok {
			ca = &model.CategoryAggregate{Category: key}
			catMap[key] = ca
			order = append(order, key)
		}
		ca.Total += e.Amount
		grandTotal += e.Amount
	}

	categories := make([]model.CategoryAggregate, 0, len(order))
	for _, key := range order {
		ca := catMap[key]
		if grandTotal > 0 {
			ca.Share = ca.Total / grandTotal
		}
		categories = append(categories, *ca)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Total > categories[j].Total
	})

	return categories
}

// AggregateDays totals expenses in r per local calendar day, oldest first.
// Days without expenses are not included.
func AggregateDays(expenses []model.Expense, r model.DateRange) []model.DailyAggregate {
	filtered := FilterByRange(expenses, r)

	dayMap := make(map[string]*model.DailyAggregate)
	for _, e := range filtered {
		day := startOfDay(e.Date)
		dayKey := day.Format("2006-01-02")
		da, ok := dayMap[dayKey]
		if !ok {
			da = &model.DailyAggregate{Day: day}
			dayMap[dayKey] = da
		}
		da.Total += e.Amount
	}

	days := make([]model.DailyAggregate, 0, len(dayMap))
	for _, da := range dayMap {
		days = append(days, *da)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day.Before(days[j].Day)
	})

	return days
}

// DailySeq yields the same values as AggregateDays. Each iteration recomputes
// from expenses, so the sequence can be ranged over any number of times.
func DailySeq(expenses []model.Expense, r model.DateRange) iter.Seq[model.DailyAggregate] {
	return func(yield func(model.DailyAggregate) bool) {
		for _, d := range AggregateDays(expenses, r) {
			if !yield(d) {
				return
			}
		}
	}
}

// AggregateWeekdays totals expenses in r by local weekday.
// It always returns seven buckets, Monday through Sunday.
func AggregateWeekdays(expenses []model.Expense, r model.DateRange) []model.WeekdayAggregate {
	weekdays := make([]model.WeekdayAggregate, len(weekdayOrder))
	for i, wd := range weekdayOrder {
		weekdays[i].Weekday = wd.String()
	}

	for _, e := range FilterByRange(expenses, r) {
		idx := (int(e.Date.Local().Weekday()) + 6) % 7 // Monday = 0
		weekdays[idx].Total += e.Amount
	}
	return weekdays
}

// ComparePeriods totals the current and previous windows of p ending at ref.
func ComparePeriods(expenses []model.Expense, p model.Period, ref time.Time) model.PeriodComparison {
	w := SelectWindow(p, ref)
	cmp := model.PeriodComparison{
		Window:        w,
		CurrentTotal:  Total(FilterByRange(expenses, w.Current)),
		PreviousTotal: Total(FilterByRange(expenses, w.Previous)),
	}
	cmp.Difference = cmp.CurrentTotal - cmp.PreviousTotal
	if cmp.PreviousTotal > 0 {
		cmp.PercentChange = cmp.Difference / cmp.PreviousTotal * 100
	}
	return cmp
}
