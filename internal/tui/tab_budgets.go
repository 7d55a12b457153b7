package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/tui/components"
	"github.com/tapsave/tapsave/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetsTab(cw int) string {
	var b strings.Builder
	b.WriteString(components.ContentCard("Budgets", a.renderBudgetBars(components.CardInnerWidth(cw)), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Saving Goals", a.renderGoalBars(components.CardInnerWidth(cw), time.Now()), cw))
	return b.String()
}

func (a App) renderBudgetBars(innerW int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(a.budgetStat) == 0 {
		return muted.Render("No budgets. Create one with `tapsave budget set 500 --period month`.")
	}

	const labelW = 24
	barW := max(innerW-labelW-40, 10)

	lines := make([]string, 0, len(a.budgetStat))
	for _, s := range a.budgetStat {
		scope := "All categories"
		if name, ok := s.Budget.Category.Name(); ok {
			scope = name
		}
		label := fmt.Sprintf("%s · %s", scope, s.Budget.Period)
		note := fmt.Sprintf("%s of %s", a.money(s.Spent), a.money(s.Budget.Amount))
		if s.Exceeded {
			note += " · exceeded"
		} else {
			note += " · " + a.money(s.Remaining) + " left"
		}
		lines = append(lines, components.BudgetBar(label, s.Progress, s.Level, note, labelW, barW))
	}
	return strings.Join(lines, "\n")
}

func (a App) renderGoalBars(innerW int, now time.Time) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(a.goals) == 0 {
		return muted.Render("No saving goals. Create one with `tapsave goals add Vacation 1500`.")
	}

	const labelW = 24
	barW := max(innerW-labelW-40, 10)

	lines := make([]string, 0, len(a.goals)+2)
	for _, g := range a.goals {
		label := g.Name
		if g.Icon != "" {
			label = g.Icon + " " + label
		}
		note := fmt.Sprintf("%s of %s", a.money(g.CurrentAmount), a.money(g.TargetAmount))
		if days, ok := g.DaysRemaining(now); ok && !g.Completed {
			if g.IsOverdue(now) {
				note += " · overdue"
			} else {
				note += fmt.Sprintf(" · %dd left", days)
			}
		}
		lines = append(lines, components.GoalBar(label, g.Progress(), note, labelW, barW))
	}

	s := a.goalSum
	lines = append(lines, "",
		muted.Render(fmt.Sprintf("%-*s ", labelW, "Overall"))+components.ProgressBar(s.OverallProgress, barW),
		muted.Render(fmt.Sprintf("%d of %d completed · %s saved of %s (%s)",
			s.Completed, s.Count, a.money(s.TotalSaved), a.money(s.TotalTarget), cli.FormatPercent(s.OverallProgress))))
	return strings.Join(lines, "\n")
}
