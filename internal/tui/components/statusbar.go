package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/tapsave/tapsave/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the status bar reports on its right side.
type StatusInfo struct {
	Period   string
	Ref      time.Time
	Currency string
	Expenses int
	LoadTime time.Duration
	Err      error
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	left := " " + keyStyle.Render("[?]") + style.Render("help ") +
		keyStyle.Render("[p]") + style.Render("eriod ") +
		keyStyle.Render("[ ]") + style.Render("shift ") +
		keyStyle.Render("[r]") + style.Render("eload ") +
		keyStyle.Render("[q]") + style.Render("uit")

	var right string
	if info.Err != nil {
		right = lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).
			Render(fmt.Sprintf("error: %v ", info.Err))
	} else {
		right = style.Render(fmt.Sprintf("%s to %s · %s · %d expenses · %.0fms ",
			info.Period,
			info.Ref.Format("02 Jan 2006"),
			info.Currency,
			info.Expenses,
			float64(info.LoadTime.Microseconds())/1000,
		))
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return left + style.Render(strings.Repeat(" ", padding)) + right
}
