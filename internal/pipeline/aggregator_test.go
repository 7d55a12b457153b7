package pipeline

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tapsave/tapsave/internal/model"
)

func TestAggregateCategories_Scenario(t *testing.T) {
	day := localDate(t, "2024-06-10")
	expenses := []model.Expense{
		expense(50, day, "Food"),
		expense(30, day, "Food"),
		expense(20, day, "Transport"),
	}

	got := AggregateCategories(expenses, model.DateRange{Start: day.Add(-time.Hour), End: day.Add(time.Hour)})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Category != "Food" || !approx(got[0].Total, 80) || !approx(got[0].Share, 0.8) {
		t.Errorf("got[0] = %+v, want Food 80 (0.8)", got[0])
	}
	if got[1].Category != "Transport" || !approx(got[1].Total, 20) || !approx(got[1].Share, 0.2) {
		t.Errorf("got[1] = %+v, want Transport 20 (0.2)", got[1])
	}
}

func TestAggregateCategories_PartitionAndShares(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := localDate(t, "2024-01-01")
	cats := []string{"Comida", "Casa", "", "Salud", "Transporte"}

	var expenses []model.Expense
	for i := 0; i < 500; i++ {
		expenses = append(expenses, expense(
			float64(rng.Intn(50000))/100,
			base.AddDate(0, 0, rng.Intn(365)),
			cats[rng.Intn(len(cats))],
		))
	}

	r := model.DateRange{Start: localDate(t, "2024-03-01"), End: localDate(t, "2024-09-30")}
	aggs := AggregateCategories(expenses, r)

	var sumAgg, sumShare float64
	for i, a := range aggs {
		sumAgg += a.Total
		sumShare += a.Share
		if i > 0 && aggs[i-1].Total < a.Total {
			t.Errorf("aggregates not sorted at %d: %v < %v", i, aggs[i-1].Total, a.Total)
		}
	}
	want := Total(FilterByRange(expenses, r))
	if !approx(sumAgg, want) {
		t.Errorf("sum of category totals = %v, want %v", sumAgg, want)
	}
	if !approx(sumShare, 1) {
		t.Errorf("sum of shares = %v, want 1", sumShare)
	}
}

func TestAggregateCategories_UncategorizedBucket(t *testing.T) {
	day := localDate(t, "2024-06-10")
	expenses := []model.Expense{
		{Amount: 10, Date: day},
		expense(5, day, "   "),
	}
	got := AggregateCategories(expenses, model.DateRange{Start: day, End: day})
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Category != model.UncategorizedLabel || got[0].Total != 15 {
		t.Errorf("got %+v, want %s 15", got[0], model.UncategorizedLabel)
	}
}

func TestAggregateCategories_ZeroTotalShares(t *testing.T) {
	day := localDate(t, "2024-06-10")
	expenses := []model.Expense{expense(0, day, "A"), expense(0, day, "B")}
	for _, a := range AggregateCategories(expenses, model.DateRange{Start: day, End: day}) {
		if a.Share != 0 {
			t.Errorf("%s share = %v, want 0", a.Category, a.Share)
		}
	}
}

func TestAggregateCategories_TiesKeepFirstSeenOrder(t *testing.T) {
	day := localDate(t, "2024-06-10")
	expenses := []model.Expense{expense(10, day, "B"), expense(10, day, "A"), expense(10, day, "C")}
	got := AggregateCategories(expenses, model.DateRange{Start: day, End: day})
	for i, want := range []string{"B", "A", "C"} {
		if got[i].Category != want {
			t.Errorf("got[%d] = %s, want %s", i, got[i].Category, want)
		}
	}
}

func TestAggregators_EmptyInput(t *testing.T) {
	ref := localDate(t, "2024-06-15")
	for _, p := range model.Periods {
		w := SelectWindow(p, ref)
		if got := AggregateCategories(nil, w.Current); len(got) != 0 {
			t.Errorf("%s: categories = %v, want empty", p, got)
		}
		if got := AggregateDays(nil, w.Current); len(got) != 0 {
			t.Errorf("%s: days = %v, want empty", p, got)
		}
	}
	if q, _ := AggregateQuarters(nil, ref); len(q) != 0 {
		t.Errorf("quarters = %v, want empty", q)
	}
	fc := ForecastCategories(nil, ref)
	if len(fc.Forecasts) != 0 {
		t.Errorf("forecasts = %v, want empty", fc.Forecasts)
	}
	if fc.AverageConfidence != 0 {
		t.Errorf("AverageConfidence = %v, want 0", fc.AverageConfidence)
	}
}

func TestAggregateDays_GroupsByLocalDay(t *testing.T) {
	d1 := localDate(t, "2024-06-12")
	d2 := localDate(t, "2024-06-10")
	expenses := []model.Expense{
		expense(5, d1, "A"),
		expense(7, d2.Add(-11*time.Hour), "A"),
		expense(3, d2.Add(11*time.Hour), "B"),
	}
	days := AggregateDays(expenses, model.DateRange{Start: localDate(t, "2024-06-01"), End: localDate(t, "2024-06-30")})
	if len(days) != 2 {
		t.Fatalf("len = %d, want 2", len(days))
	}
	if got := days[0].Day.Format("2006-01-02"); got != "2024-06-10" {
		t.Errorf("days[0].Day = %s, want 2024-06-10", got)
	}
	if days[0].Total != 10 {
		t.Errorf("days[0].Total = %v, want 10", days[0].Total)
	}
	if days[1].Total != 5 {
		t.Errorf("days[1].Total = %v, want 5", days[1].Total)
	}
}

func TestDailySeq_Restartable(t *testing.T) {
	day := localDate(t, "2024-06-10")
	expenses := []model.Expense{expense(1, day, "A"), expense(2, day.AddDate(0, 0, 1), "A")}
	seq := DailySeq(expenses, model.DateRange{Start: day, End: day.AddDate(0, 0, 1)})

	for pass := 0; pass < 2; pass++ {
		n := 0
		for range seq {
			n++
		}
		if n != 2 {
			t.Errorf("pass %d yielded %d days, want 2", pass, n)
		}
	}

	for d := range seq {
		if d.Total != 1 {
			t.Errorf("first day total = %v, want 1", d.Total)
		}
		break
	}
}

func TestAggregateWeekdays_AlwaysSeven(t *testing.T) {
	monday := localDate(t, "2024-06-10")
	expenses := []model.Expense{
		expense(4, monday, "A"),
		expense(6, monday.AddDate(0, 0, 6), "A"),
	}
	r := model.DateRange{Start: monday.AddDate(0, 0, -1), End: monday.AddDate(0, 0, 7)}

	for _, input := range [][]model.Expense{nil, expenses} {
		got := AggregateWeekdays(input, r)
		if len(got) != 7 {
			t.Fatalf("len = %d, want 7", len(got))
		}
		for i, wd := range weekdayOrder {
			if got[i].Weekday != wd.String() {
				t.Errorf("bucket %d = %s, want %s", i, got[i].Weekday, wd)
			}
		}
	}

	got := AggregateWeekdays(expenses, r)
	if got[0].Total != 4 {
		t.Errorf("Monday = %v, want 4", got[0].Total)
	}
	if got[6].Total != 6 {
		t.Errorf("Sunday = %v, want 6", got[6].Total)
	}
}

func TestComparePeriods(t *testing.T) {
	ref := localDate(t, "2024-06-15")
	expenses := []model.Expense{
		expense(150, localDate(t, "2024-06-01"), "A"),
		expense(100, localDate(t, "2024-04-20"), "A"),
	}
	cmp := ComparePeriods(expenses, model.PeriodMonth, ref)
	if cmp.CurrentTotal != 150 || cmp.PreviousTotal != 100 {
		t.Fatalf("totals = %v / %v, want 150 / 100", cmp.CurrentTotal, cmp.PreviousTotal)
	}
	if !approx(cmp.PercentChange, 50) {
		t.Errorf("PercentChange = %v, want 50", cmp.PercentChange)
	}

	cmp = ComparePeriods(expenses[:1], model.PeriodMonth, ref)
	if cmp.PercentChange != 0 {
		t.Errorf("PercentChange with no previous spend = %v, want 0", cmp.PercentChange)
	}
}

func TestFilters(t *testing.T) {
	day := localDate(t, "2024-06-10")
	expenses := []model.Expense{
		expense(10, day, "Comida"),
		expense(75, day, "casa"),
		expense(501, day, "Casa"),
	}
	if got := FilterByCategory(expenses, "CASA"); len(got) != 2 {
		t.Errorf("FilterByCategory len = %d, want 2", len(got))
	}
	if got := FilterByCategory(expenses, ""); len(got) != 3 {
		t.Errorf("FilterByCategory(\"\") len = %d, want 3", len(got))
	}
	r := AmountRanges[1]
	if got := FilterByAmount(expenses, r.Min, r.Max); len(got) != 1 || got[0].Amount != 75 {
		t.Errorf("FilterByAmount(%s) = %v, want [75]", r.Label, got)
	}
}
