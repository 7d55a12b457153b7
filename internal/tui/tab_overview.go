package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/model"
	"github.com/tapsave/tapsave/internal/pipeline"
	"github.com/tapsave/tapsave/internal/tui/components"
	"github.com/tapsave/tapsave/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const overviewTopCategories = 6

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	cmp := a.comparison
	var b strings.Builder

	// Row 1: metric cards
	count := len(pipeline.FilterByRange(a.filtered, a.window.Current))
	spanDays := max(windowDays(a.window.Current), 1)

	spentDelta := "no previous spending"
	if cmp.PreviousTotal > 0 {
		spentDelta = fmt.Sprintf("%s (%s)",
			cli.FormatDelta(cmp.CurrentTotal, cmp.PreviousTotal, a.currency),
			cli.FormatChange(cmp.PercentChange))
	}
	avgPerExpense := "-"
	if count > 0 {
		avgPerExpense = a.money(cmp.CurrentTotal/float64(count)) + " each"
	}
	top := model.CategoryAggregate{Category: "-"}
	if len(a.categories) > 0 {
		top = a.categories[0]
	}

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Spent this " + a.period.String(), Value: a.money(cmp.CurrentTotal), Delta: spentDelta, Change: cmp.Difference},
		{Label: "Expenses", Value: cli.FormatNumber(int64(count)), Delta: avgPerExpense},
		{Label: "Per day", Value: a.money(cmp.CurrentTotal / float64(spanDays)), Delta: fmt.Sprintf("over %d days", spanDays)},
		{Label: "Top category", Value: top.Category, Delta: cli.FormatPercent(top.Share) + " of spending"},
	}, cw))
	b.WriteString("\n")

	// Row 2: daily spending chart
	chartH := 10
	if a.isCompactLayout() {
		chartH = 7
	}
	values, labels := dailySeries(a.days, a.window.Current)
	b.WriteString(components.ContentCard(
		"Daily Spending",
		components.BarChart(values, labels, t.Accent, components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	// Row 3: top categories | weekdays
	catBody := a.renderCategoryBars(overviewTopCategories, components.CardInnerWidth(cw/2))
	weekBody := a.renderWeekdayBars(components.CardInnerWidth(cw / 2))
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Top Categories", catBody, cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("By Weekday", weekBody, cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Top Categories", catBody, halves[0]),
			components.ContentCard("By Weekday", weekBody, halves[1]),
		}))
	}
	return b.String()
}

// renderCategoryBars lists up to limit categories with share bars.
func (a App) renderCategoryBars(limit, innerW int) string {
	t := theme.Active
	if len(a.categories) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("No expenses in this period.")
	}
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	const labelW, valueW = 16, 14
	barW := max(innerW-labelW-valueW-8, 5)
	peak := a.categories[0].Total

	var lines []string
	for i, c := range a.categories {
		if i >= limit {
			lines = append(lines, valueStyle.Render(fmt.Sprintf("+%d more", len(a.categories)-limit)))
			break
		}
		lines = append(lines,
			labelStyle.Render(fmt.Sprintf("%-*s ", labelW, truncStr(c.Category, labelW)))+
				components.HBar(c.Total, peak, barW, t.Accent)+
				valueStyle.Render(fmt.Sprintf(" %*s %6s", valueW, a.money(c.Total), cli.FormatPercent(c.Share))))
	}
	return strings.Join(lines, "\n")
}

// renderWeekdayBars draws the Monday..Sunday buckets with the peak highlighted.
func (a App) renderWeekdayBars(innerW int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	peak := 0
	for i, d := range a.weekdays {
		if d.Total > a.weekdays[peak].Total {
			peak = i
		}
	}
	const valueW = 14
	barW := max(innerW-4-valueW-2, 5)

	lines := make([]string, 0, len(a.weekdays))
	for i, d := range a.weekdays {
		color := t.Cyan
		if i == peak && d.Total > 0 {
			color = t.AccentBright
		}
		lines = append(lines,
			labelStyle.Render(cli.ShortWeekday(d.Weekday)+" ")+
				components.HBar(d.Total, a.weekdays[peak].Total, barW, color)+
				valueStyle.Render(fmt.Sprintf(" %*s", valueW, a.money(d.Total))))
	}
	return strings.Join(lines, "\n")
}

// dailySeries expands the sparse day aggregates into one value per calendar
// day of r, oldest first, with matching x labels.
func dailySeries(days []model.DailyAggregate, r model.DateRange) ([]float64, []string) {
	if r.End.Before(r.Start) {
		return nil, nil
	}
	byDay := make(map[string]float64, len(days))
	for _, d := range days {
		byDay[d.Day.Format("2006-01-02")] = d.Total
	}

	var dates []time.Time
	var values []float64
	start := r.Start.Local()
	end := r.End.Local()
	for d := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local); !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
		values = append(values, byDay[d.Format("2006-01-02")])
	}
	return values, chartDateLabels(dates)
}

// chartDateLabels builds compact x labels for consecutive dates: the month
// abbreviation at the start and at month boundaries, otherwise the day number.
func chartDateLabels(dates []time.Time) []string {
	labels := make([]string, len(dates))
	prev := time.Month(0)
	for i, d := range dates {
		if i == 0 || d.Month() != prev {
			labels[i] = d.Format("Jan")
		} else {
			labels[i] = strconv.Itoa(d.Day())
		}
		prev = d.Month()
	}
	return labels
}

// windowDays counts the calendar days touched by r.
func windowDays(r model.DateRange) int {
	if r.End.Before(r.Start) {
		return 0
	}
	s := r.Start.Local()
	e := r.End.Local()
	s = time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
	e = time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
