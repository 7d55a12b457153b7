package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/tapsave/tapsave/internal/model"
)

// Palette shared by the plain CLI reports.
var (
	colorFrame = lipgloss.Color("#403E3C")
	colorDim   = lipgloss.Color("#575653")
	colorMuted = lipgloss.Color("#878580")
	colorText  = lipgloss.Color("#FFFCF0")
	colorTeal  = lipgloss.Color("#3AA99F")
	colorGreen = lipgloss.Color("#879A39")
	colorAmber = lipgloss.Color("#D0A215")
	colorRed   = lipgloss.Color("#D14D41")
)

var (
	frameStyle  = lipgloss.NewStyle().Foreground(colorDim)
	headStyle   = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)
	cellStyle   = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	accentStyle = lipgloss.NewStyle().Foreground(colorTeal)
)

// separatorRow marks a horizontal rule inside Table.Rows.
const separatorRow = "---"

// Table is a boxed text table. The first column is left-aligned, the rest
// right-aligned. A row holding the single cell "---" draws a rule.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // nil means fit to content
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == separatorRow
}

func (t Table) columnWidths() []int {
	cols := len(t.Headers)
	if cols == 0 && len(t.Rows) > 0 {
		cols = len(t.Rows[0])
	}
	widths := make([]int, cols)
	if t.Widths != nil {
		copy(widths, t.Widths)
		return widths
	}
	grow := func(cells []string) {
		for i, c := range cells {
			if i < cols {
				widths[i] = max(widths[i], utf8.RuneCountInString(c))
			}
		}
	}
	grow(t.Headers)
	for _, row := range t.Rows {
		if !isSeparator(row) {
			grow(row)
		}
	}
	return widths
}

// rule draws a full-width horizontal line with the given corner glyphs.
func rule(widths []int, left, cross, right string) string {
	segs := make([]string, len(widths))
	for i, w := range widths {
		segs[i] = strings.Repeat("─", w+2)
	}
	return frameStyle.Render(left+strings.Join(segs, cross)+right) + "\n"
}

// line renders one row. With rightAlign every column but the first is right-aligned.
func line(widths []int, cells []string, style lipgloss.Style, rightAlign bool) string {
	bar := frameStyle.Render("│")
	var b strings.Builder
	b.WriteString(bar)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == 0 || !rightAlign {
			b.WriteString(style.Render(fmt.Sprintf(" %-*s ", w, cell)))
		} else {
			b.WriteString(style.Render(fmt.Sprintf(" %*s ", w, cell)))
		}
		b.WriteString(bar)
	}
	return b.String() + "\n"
}

// RenderTitle renders a centred title in a rounded box.
func RenderTitle(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorFrame).
		Width(55).
		Padding(0, 1).
		Align(lipgloss.Center).
		Render(cellStyle.Bold(true).Render(title))
}

// RenderTable renders t with rounded corners.
func RenderTable(t Table) string {
	if len(t.Headers) == 0 && len(t.Rows) == 0 {
		return ""
	}
	widths := t.columnWidths()

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headStyle.Render(t.Title) + "\n")
	}
	b.WriteString(rule(widths, "╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(line(widths, t.Headers, headStyle, false))
		b.WriteString(rule(widths, "├", "┼", "┤"))
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			b.WriteString(rule(widths, "├", "┼", "┤"))
			continue
		}
		b.WriteString(line(widths, row, cellStyle, true))
	}
	b.WriteString(rule(widths, "╰", "┴", "╯"))
	return b.String()
}

// RenderProgressBar renders "[████░░] current/total" for file counters.
func RenderProgressBar(current, total int, width int) string {
	if total <= 0 {
		return ""
	}
	filled := int(clamp01(float64(current)/float64(total)) * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s/%s", mutedStyle.Render(bar),
		FormatNumber(int64(current)), FormatNumber(int64(total)))
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// RenderSparkline maps values onto eight block heights relative to the peak.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}
	top := len(sparkRunes) - 1
	out := make([]rune, len(values))
	for i, v := range values {
		out[i] = sparkRunes[min(max(int(v/peak*float64(top)), 0), top)]
	}
	return string(out)
}

// RenderHorizontalBar renders label followed by a bar of value relative to peak.
func RenderHorizontalBar(label string, value, peak float64, maxWidth int) string {
	if peak <= 0 {
		return "  " + label
	}
	n := int(clamp01(value/peak) * float64(maxWidth))
	return "  " + label + " " + accentStyle.Render(strings.Repeat("█", n))
}

// LevelColor returns the colour used for a budget level.
func LevelColor(l model.BudgetLevel) lipgloss.Color {
	switch l {
	case model.BudgetCritical:
		return colorRed
	case model.BudgetWarning:
		return colorAmber
	default:
		return colorGreen
	}
}

// RenderBudgetBar renders a bar filled to progress (0..1) in the level colour.
func RenderBudgetBar(progress float64, level model.BudgetLevel, width int) string {
	filled := int(clamp01(progress) * float64(width))
	return lipgloss.NewStyle().Foreground(LevelColor(level)).Render(strings.Repeat("█", filled)) +
		frameStyle.Render(strings.Repeat("░", width-filled))
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
