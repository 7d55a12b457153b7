package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/tapsave/tapsave/internal/config"
	"github.com/tapsave/tapsave/internal/model"
)

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{0: "0", 999: "999", 1000: "1,000", -1234567: "-1,234,567"}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatChange(t *testing.T) {
	if got := FormatChange(12.34); got != "+12.3%" {
		t.Errorf("FormatChange(12.34) = %q, want +12.3%%", got)
	}
	if got := FormatChange(-5); got != "-5.0%" {
		t.Errorf("FormatChange(-5) = %q, want -5.0%%", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(80, 100, config.DefaultCurrency); got != "-$20.00" {
		t.Errorf("FormatDelta = %q, want -$20.00", got)
	}
	if got := FormatDelta(100, 80, config.DefaultCurrency); got != "+$20.00" {
		t.Errorf("FormatDelta = %q, want +$20.00", got)
	}
}

func TestFormatDay(t *testing.T) {
	d := time.Date(2024, 6, 10, 15, 0, 0, 0, time.Local)
	if got := FormatDay(d); got != "Mon 10 Jun 2024" {
		t.Errorf("FormatDay = %q, want Mon 10 Jun 2024", got)
	}
	if got := ShortWeekday("Wednesday"); got != "Wed" {
		t.Errorf("ShortWeekday = %q, want Wed", got)
	}
}

func TestRenderTable_SeparatorAndWidths(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Categoría", "Total"},
		Rows: [][]string{
			{model.UncategorizedLabel, "$10.00"},
			{"---"},
			{"Total", "$10.00"},
		},
	})
	if !strings.Contains(out, model.UncategorizedLabel) {
		t.Errorf("table missing row label:\n%s", out)
	}
	if n := strings.Count(out, "\n"); n != 7 {
		t.Errorf("table has %d lines, want 7:\n%s", n, out)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 1}); got != "▁█" {
		t.Errorf("RenderSparkline = %q, want ▁█", got)
	}
	if RenderSparkline(nil) != "" {
		t.Error("empty sparkline should be empty")
	}
}

func TestRenderBudgetBar_ClampsProgress(t *testing.T) {
	bar := RenderBudgetBar(1.5, model.BudgetCritical, 10)
	if strings.Contains(bar, "░") {
		t.Errorf("overfull bar has empty cells: %q", bar)
	}
	if n := strings.Count(RenderBudgetBar(0, model.BudgetOK, 10), "░"); n != 10 {
		t.Errorf("empty bar has %d empty cells, want 10", n)
	}
}
