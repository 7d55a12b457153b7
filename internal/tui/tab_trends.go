package tui

import (
	"fmt"
	"strings"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/tui/components"
	"github.com/tapsave/tapsave/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTrendsTab(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	if len(a.quarters) == 0 {
		return components.ContentCard("Quarterly Trend",
			muted.Render("No expenses in the twelve months before "+a.ref.Format("02 Jan 2006")+"."), cw)
	}

	var b strings.Builder

	// Row 1: trend metrics
	direction := "Flat"
	switch {
	case a.trend.Slope > 0:
		direction = "Rising"
	case a.trend.Slope < 0:
		direction = "Falling"
	}
	fitNote := fmt.Sprintf("R² %.2f", a.trend.RSquared)
	if a.trend.Degenerate {
		fitNote = "not enough quarters"
	}
	var yearTotal float64
	for _, q := range a.quarters {
		yearTotal += q.Total
	}
	next := a.trend.At(float64(len(a.quarters)))

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Last 12 months", Value: a.money(yearTotal), Delta: a.money(yearTotal/12) + " per month"},
		{Label: "Trend", Value: direction, Delta: cli.FormatDelta(a.trend.Slope, 0, a.currency) + " per quarter", Change: a.trend.Slope},
		{Label: "Fit", Value: fmt.Sprintf("%.0f%%", a.trend.RSquared*100), Delta: fitNote},
		{Label: "Next quarter (trend)", Value: a.money(max(next, 0))},
	}, cw))
	b.WriteString("\n")

	// Row 2: quarter chart | table
	values := make([]float64, len(a.quarters))
	labels := make([]string, len(a.quarters))
	var rows []string
	for i, q := range a.quarters {
		values[i] = q.Total
		labels[i] = q.QuarterStart.Format("Jan 06")
		gap := q.Total - q.TrendValue
		gapStyle := lipgloss.NewStyle().Foreground(t.ForChange(gap)).Background(t.Surface)
		rows = append(rows,
			muted.Render(fmt.Sprintf("Q%d %s ", i+1, q.QuarterStart.Format("Jan 06")))+
				value.Render(fmt.Sprintf("%12s", a.money(q.Total)))+
				muted.Render(fmt.Sprintf(" trend %12s ", a.money(q.TrendValue)))+
				gapStyle.Render(cli.FormatDelta(q.Total, q.TrendValue, a.currency)))
	}

	halves := components.LayoutRow(cw, 2)
	chartW := halves[0]
	if a.isCompactLayout() {
		chartW = cw
	}
	chart := components.ContentCard("Quarterly Totals",
		components.BarChart(values, labels, t.Accent, components.CardInnerWidth(chartW), 8), chartW)

	if a.isCompactLayout() {
		b.WriteString(chart)
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Quarters vs Trend", strings.Join(rows, "\n"), cw))
	} else {
		b.WriteString(components.CardRow([]string{
			chart,
			components.ContentCard("Quarters vs Trend", strings.Join(rows, "\n"), halves[1]),
		}))
	}
	return b.String()
}
