package pipeline

import (
	"time"

	"github.com/tapsave/tapsave/internal/model"
)

// SelectWindow returns the current and previous look-back windows ending at ref.
//
//	week:  current [ref-7d, ref],  previous [ref-14d, ref-7d]
//	month: current [ref-1mo, ref], previous [ref-2mo, ref-1mo]
//	year:  current [ref-1y, ref],  previous [ref-2y, ref-1y]
//
// Month and year steps clamp to the last valid day of the target month.
// When a boundary cannot be computed it collapses onto ref, leaving a
// zero-width window instead of an error.
func SelectWindow(p model.Period, ref time.Time) model.Window {
	currentStart := stepBack(p, ref, 1)
	previousStart := stepBack(p, ref, 2)
	return model.Window{
		Period:   p,
		Current:  model.DateRange{Start: currentStart, End: ref},
		Previous: model.DateRange{Start: previousStart, End: currentStart},
	}
}

func stepBack(p model.Period, ref time.Time, n int) time.Time {
	var (
		t  time.Time
		ok bool
	)
	switch p {
	case model.PeriodWeek:
		t, ok = addDays(ref, -7*n)
	case model.PeriodMonth:
		t, ok = AddMonths(ref, -n)
	case model.PeriodYear:
		t, ok = AddMonths(ref, -12*n)
	}
	if !ok {
		return ref
	}
	return t
}

// AddMonths shifts t by a number of calendar months, keeping the time of day
// and clamping the day to the length of the target month (Mar 31 - 1 month
// is Feb 28, or Feb 29 in a leap year). ok is false for a zero t or when the
// result leaves years 1..9999.
func AddMonths(t time.Time, months int) (time.Time, bool) {
	if t.IsZero() {
		return t, false
	}
	y, m, d := t.Date()
	total := int(m) - 1 + months
	year := y + floorDiv(total, 12)
	month := time.Month(total - floorDiv(total, 12)*12 + 1)
	if year < 1 || year > 9999 {
		return t, false
	}
	if last := daysIn(year, month, t.Location()); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(year, month, d, hh, mm, ss, t.Nanosecond(), t.Location()), true
}

func addDays(t time.Time, days int) (time.Time, bool) {
	if t.IsZero() {
		return t, false
	}
	r := t.AddDate(0, 0, days)
	if r.Year() < 1 || r.Year() > 9999 {
		return t, false
	}
	return r, true
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// startOfDay truncates t to local midnight.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// monthIndex numbers local calendar months so consecutive months differ by one.
func monthIndex(t time.Time) int {
	y, m, _ := t.Local().Date()
	return y*12 + int(m) - 1
}
