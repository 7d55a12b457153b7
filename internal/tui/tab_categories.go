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

const recentExpenses = 10

func (a App) renderCategoriesTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	b.WriteString(components.ContentCard(
		fmt.Sprintf("Categories this %s", a.period),
		a.renderCategoryTable(components.CardInnerWidth(cw)),
		cw,
	))
	b.WriteString("\n")

	inWindow := pipeline.FilterByRange(a.filtered, a.window.Current)

	// Amount ranges | recent expenses
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var ranges []string
	for _, r := range pipeline.AmountRanges {
		matched := pipeline.FilterByAmount(inWindow, r.Min, r.Max)
		ranges = append(ranges, muted.Render(fmt.Sprintf("%-10s", r.Label))+
			value.Render(fmt.Sprintf(" %4d  %14s", len(matched), a.money(pipeline.Total(matched)))))
	}

	var recent []string
	for i, e := range inWindow {
		if i >= recentExpenses {
			break
		}
		recent = append(recent, muted.Render(e.Date.Format("02 Jan")+"  ")+
			value.Render(fmt.Sprintf("%-14s %12s", truncStr(e.Category.Label(), 14), a.money(e.Amount)))+
			muted.Render("  "+truncStr(e.Notes, 24)))
	}
	if len(recent) == 0 {
		recent = append(recent, muted.Render("No expenses in this period."))
	}

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("By Amount", strings.Join(ranges, "\n"), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Recent", strings.Join(recent, "\n"), cw))
	} else {
		widths := components.LayoutRow(cw, 3)
		b.WriteString(components.CardRow([]string{
			components.ContentCard("By Amount", strings.Join(ranges, "\n"), widths[0]),
			components.ContentCard("Recent", strings.Join(recent, "\n"), widths[1]+widths[2]),
		}))
	}
	return b.String()
}

// renderCategoryTable lists every category with its share, a bar and the
// change against the previous window.
func (a App) renderCategoryTable(innerW int) string {
	t := theme.Active
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(a.categories) == 0 {
		return mutedStyle.Render("No expenses in this period.")
	}

	const nameW, moneyW, shareW, deltaW = 18, 14, 7, 16
	barW := max(innerW-nameW-moneyW-shareW-deltaW-4, 5)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %*s %*s %*s ", nameW, "Category", moneyW, "Total", shareW, "Share", deltaW, "vs Prev")))
	b.WriteString("\n")

	peak := a.categories[0].Total
	for _, c := range a.categories {
		prev := a.prevCats[c.Category]
		deltaStyle := lipgloss.NewStyle().Foreground(t.ForChange(c.Total - prev)).Background(t.Surface)
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s %*s %*s ",
			nameW, truncStr(c.Category, nameW),
			moneyW, a.money(c.Total),
			shareW, cli.FormatPercent(c.Share))))
		b.WriteString(deltaStyle.Render(fmt.Sprintf("%*s ", deltaW, cli.FormatDelta(c.Total, prev, a.currency))))
		b.WriteString(components.HBar(c.Total, peak, barW, t.Accent))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s %*s", nameW, "Total", moneyW, a.money(a.comparison.CurrentTotal))))
	return b.String()
}
