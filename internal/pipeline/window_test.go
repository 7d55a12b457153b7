package pipeline

import (
	"testing"
	"time"

	"github.com/tapsave/tapsave/internal/model"
)

func TestSelectWindow_Week(t *testing.T) {
	ref := localDate(t, "2024-06-15")
	w := SelectWindow(model.PeriodWeek, ref)

	if want := localDate(t, "2024-06-08"); !w.Current.Start.Equal(want) {
		t.Errorf("Current.Start = %v, want %v", w.Current.Start, want)
	}
	if !w.Current.End.Equal(ref) {
		t.Errorf("Current.End = %v, want %v", w.Current.End, ref)
	}
	if want := localDate(t, "2024-06-01"); !w.Previous.Start.Equal(want) {
		t.Errorf("Previous.Start = %v, want %v", w.Previous.Start, want)
	}
	if !w.Previous.End.Equal(w.Current.Start) {
		t.Errorf("Previous.End = %v, want %v", w.Previous.End, w.Current.Start)
	}
}

func TestSelectWindow_MonthClampsEndOfMonth(t *testing.T) {
	tests := []struct {
		ref, cur, prev string
	}{
		{"2024-03-31", "2024-02-29", "2024-01-31"},
		{"2023-03-31", "2023-02-28", "2023-01-31"},
		{"2024-05-31", "2024-04-30", "2024-03-31"},
		{"2024-01-15", "2023-12-15", "2023-11-15"},
	}
	for _, tt := range tests {
		w := SelectWindow(model.PeriodMonth, localDate(t, tt.ref))
		if want := localDate(t, tt.cur); !w.Current.Start.Equal(want) {
			t.Errorf("ref %s: Current.Start = %v, want %v", tt.ref, w.Current.Start, want)
		}
		if want := localDate(t, tt.prev); !w.Previous.Start.Equal(want) {
			t.Errorf("ref %s: Previous.Start = %v, want %v", tt.ref, w.Previous.Start, want)
		}
	}
}

func TestSelectWindow_YearFromLeapDay(t *testing.T) {
	w := SelectWindow(model.PeriodYear, localDate(t, "2024-02-29"))
	if want := localDate(t, "2023-02-28"); !w.Current.Start.Equal(want) {
		t.Errorf("Current.Start = %v, want %v", w.Current.Start, want)
	}
	if want := localDate(t, "2022-02-28"); !w.Previous.Start.Equal(want) {
		t.Errorf("Previous.Start = %v, want %v", w.Previous.Start, want)
	}
}

func TestSelectWindow_ZeroReferenceFallsBack(t *testing.T) {
	for _, p := range model.Periods {
		w := SelectWindow(p, time.Time{})
		if !w.Current.Start.IsZero() || !w.Previous.Start.IsZero() {
			t.Errorf("%s: window = %+v, want zero-width at reference", p, w)
		}
	}
}

func TestSelectWindow_OutOfRangeFallsBack(t *testing.T) {
	ref := time.Date(1, time.February, 1, 0, 0, 0, 0, time.UTC)
	w := SelectWindow(model.PeriodYear, ref)
	if !w.Current.Start.Equal(ref) {
		t.Errorf("Current.Start = %v, want %v", w.Current.Start, ref)
	}
}

func TestAddMonths_AcrossYears(t *testing.T) {
	got, ok := AddMonths(localDate(t, "2024-01-31"), -13)
	if !ok {
		t.Fatal("AddMonths returned !ok")
	}
	if want := localDate(t, "2022-12-31"); !got.Equal(want) {
		t.Errorf("AddMonths = %v, want %v", got, want)
	}

	got, _ = AddMonths(localDate(t, "2024-11-30"), 3)
	if want := localDate(t, "2025-02-28"); !got.Equal(want) {
		t.Errorf("AddMonths = %v, want %v", got, want)
	}
}
