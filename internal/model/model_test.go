package model

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"week", PeriodWeek},
		{"Monthly", PeriodMonth},
		{" y ", PeriodYear},
	}
	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if err != nil {
			t.Fatalf("ParsePeriod(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParsePeriod("fortnight"); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("ParsePeriod(fortnight) err = %v, want ErrInvalidPeriod", err)
	}
}

func TestCategoryVariant(t *testing.T) {
	if !Labeled("  ").IsUncategorized() {
		t.Error("blank label should be uncategorized")
	}
	if got := Uncategorized.Label(); got != UncategorizedLabel {
		t.Errorf("Uncategorized.Label() = %q, want %q", got, UncategorizedLabel)
	}
	name, ok := Labeled(" Comida ").Name()
	if !ok || name != "Comida" {
		t.Errorf("Name() = %q, %v, want Comida, true", name, ok)
	}
	if _, ok := Uncategorized.Name(); ok {
		t.Error("Uncategorized.Name() ok = true, want false")
	}
}

func TestDateRangeContains_Inclusive(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	r := DateRange{Start: start, End: end}
	if !r.Contains(start) || !r.Contains(end) {
		t.Error("range should include both ends")
	}
	if r.Contains(end.Add(time.Nanosecond)) {
		t.Error("range should exclude times after End")
	}
}

func TestSavingGoal(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(72 * time.Hour)
	g := SavingGoal{TargetAmount: 200, CurrentAmount: 250, Deadline: &deadline}

	if got := g.Progress(); got != 1 {
		t.Errorf("Progress() = %v, want 1", got)
	}
	if got := g.Remaining(); got != 0 {
		t.Errorf("Remaining() = %v, want 0", got)
	}
	if days, ok := g.DaysRemaining(now); !ok || days != 3 {
		t.Errorf("DaysRemaining() = %d, %v, want 3, true", days, ok)
	}
	if g.IsOverdue(now) {
		t.Error("IsOverdue() = true before deadline")
	}
	if !g.IsOverdue(deadline.Add(time.Hour)) {
		t.Error("IsOverdue() = false after deadline")
	}

	g.Completed = true
	if g.IsOverdue(deadline.Add(time.Hour)) {
		t.Error("completed goal reported overdue")
	}
	if (SavingGoal{}).Progress() != 0 {
		t.Error("zero-target Progress() != 0")
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12.50", 12.5},
		{"12,34", 12.34},
		{" 7 ", 7},
		{"0", 0},
		{"1.005", 1.01},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "-3", "abc", "1.2.3", "1e400", "2e17", "92233720368547758.08"} {
		if _, err := ParseAmount(bad); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q) err = %v, want ErrInvalidAmount", bad, err)
		}
	}
}

func TestCentsRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.1, 12.34, 999999.99} {
		cents, err := ToCents(v)
		if err != nil {
			t.Fatalf("ToCents(%v): %v", v, err)
		}
		if got := FromCents(cents); got != v {
			t.Errorf("FromCents(ToCents(%v)) = %v", v, got)
		}
	}
	if got, _ := ToCents(0.29); got != 29 {
		t.Errorf("ToCents(0.29) = %d, want 29", got)
	}
}

func TestToCents_RejectsOutOfRange(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), 2e17, -2e17} {
		if _, err := ToCents(v); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ToCents(%v) err = %v, want ErrInvalidAmount", v, err)
		}
	}
}
