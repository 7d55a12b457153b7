package tui

import (
	"fmt"
	"strings"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/pipeline"
	"github.com/tapsave/tapsave/internal/tui/components"
	"github.com/tapsave/tapsave/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderForecastTab(cw int) string {
	t := theme.Active
	fs := a.forecast
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(fs.Forecasts) == 0 {
		return components.ContentCard("Forecast", muted.Render(fmt.Sprintf(
			"Not enough history: a category needs spending in %d of the %d months before %s.",
			pipeline.MinForecastMonths, pipeline.ForecastWindowMonths, a.ref.Format("Jan 2006"))), cw)
	}

	var b strings.Builder
	change := fs.TotalPredicted - fs.TotalCurrent
	changeNote := "nothing spent yet this month"
	if fs.TotalCurrent > 0 {
		changeNote = cli.FormatChange(change / fs.TotalCurrent * 100)
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "This month", Value: a.money(fs.TotalCurrent), Delta: a.ref.Format("Jan 2006")},
		{Label: "Predicted next month", Value: a.money(fs.TotalPredicted), Delta: changeNote, Change: change},
		{Label: "Confidence", Value: cli.FormatPercent(fs.AverageConfidence), Delta: fmt.Sprintf("%d categories", len(fs.Forecasts))},
	}, cw))
	b.WriteString("\n")

	header := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	row := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	const nameW, moneyW, pctW, confW = 18, 14, 9, 10
	confBarW := max(components.CardInnerWidth(cw)-nameW-2*moneyW-pctW-confW-8, 5)

	var body strings.Builder
	body.WriteString(header.Render(fmt.Sprintf("%-*s %*s %*s %*s %*s", nameW, "Category", moneyW, "This Month",
		moneyW, "Predicted", pctW, "Change", confW, "Confidence")))
	body.WriteString("\n")
	for _, f := range fs.Forecasts {
		pct := "n/a"
		if f.CurrentPeriodTotal > 0 {
			pct = cli.FormatChange(f.PercentChange() * 100)
		}
		delta := f.PredictedNextPeriodTotal - f.CurrentPeriodTotal
		changeStyle := lipgloss.NewStyle().Foreground(t.ForChange(delta)).Background(t.Surface)

		body.WriteString(row.Render(fmt.Sprintf("%-*s %*s %*s ", nameW, truncStr(f.Category, nameW),
			moneyW, a.money(f.CurrentPeriodTotal), moneyW, a.money(f.PredictedNextPeriodTotal))))
		body.WriteString(changeStyle.Render(fmt.Sprintf("%*s ", pctW, pct)))
		body.WriteString(row.Render(fmt.Sprintf("%*s ", confW, cli.FormatPercent(f.Confidence))))
		body.WriteString(components.HBar(f.Confidence, 1, confBarW, t.Cyan))
		body.WriteString("\n")
	}
	body.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(fmt.Sprintf(
		"Linear fit over up to %d months of non-zero spending per category.", pipeline.ForecastWindowMonths)))

	b.WriteString(components.ContentCard("Next Month by Category", body.String(), cw))
	return b.String()
}
