package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidPeriod is returned when a period name cannot be parsed.
var ErrInvalidPeriod = errors.New("invalid period")

// Period is the look-back window unit.
type Period int

const (
	PeriodWeek Period = iota
	PeriodMonth
	PeriodYear
)

// Periods lists every period in display order.
var Periods = []Period{PeriodWeek, PeriodMonth, PeriodYear}

func (p Period) String() string {
	switch p {
	case PeriodWeek:
		return "week"
	case PeriodMonth:
		return "month"
	case PeriodYear:
		return "year"
	default:
		return fmt.Sprintf("Period(%d)", int(p))
	}
}

// ParsePeriod accepts week, month or year (and the budget spellings weekly, monthly, yearly).
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "weekly", "w":
		return PeriodWeek, nil
	case "month", "monthly", "m":
		return PeriodMonth, nil
	case "year", "yearly", "y":
		return PeriodYear, nil
	}
	return PeriodMonth, fmt.Errorf("%w: %q (want week, month or year)", ErrInvalidPeriod, s)
}

// DateRange is a closed interval [Start, End].
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies within the range, both ends included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Window holds the current and previous comparison ranges for a period.
// Current.End is the reference date and Previous.End equals Current.Start.
type Window struct {
	Period   Period
	Current  DateRange
	Previous DateRange
}
