// Package tui provides the interactive Bubble Tea dashboard for tapsave.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/tapsave/tapsave/internal/config"
	"github.com/tapsave/tapsave/internal/model"
	"github.com/tapsave/tapsave/internal/pipeline"
	"github.com/tapsave/tapsave/internal/store"
	"github.com/tapsave/tapsave/internal/tui/components"
	"github.com/tapsave/tapsave/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the store has been read.
type DataLoadedMsg struct {
	Expenses []model.Expense
	Budgets  []model.Budget
	Goals    []model.SavingGoal
	LoadTime time.Duration
	Err      error
}

// Options configures a new App.
type Options struct {
	DBPath   string
	Period   model.Period
	Ref      time.Time // zero means now
	Category string
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	expenses []model.Expense
	budgets  []model.Budget
	goals    []model.SavingGoal
	loaded   bool
	loadTime time.Duration
	loadErr  error

	// Pre-computed for the current period and reference date
	filtered   []model.Expense
	window     model.Window
	comparison model.PeriodComparison
	categories []model.CategoryAggregate
	prevCats   map[string]float64
	days       []model.DailyAggregate
	weekdays   []model.WeekdayAggregate
	quarters   []model.QuarterlyAggregate
	trend      pipeline.LinearFit
	forecast   model.ForecastSummary
	budgetStat []model.BudgetStatus
	goalSum    model.GoalSummary

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	scroll    int

	// Filter state
	period   model.Period
	ref      time.Time
	fixedRef bool // false: ref follows the clock on reload
	category string
	currency config.Currency

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool

	spinner spinner.Model
	dbPath  string
}

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	cfg, _ := config.Load()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	ref := opts.Ref
	if ref.IsZero() {
		ref = time.Now()
	}
	return App{
		period:    opts.Period,
		ref:       ref,
		fixedRef:  !opts.Ref.IsZero(),
		category:  opts.Category,
		currency:  cfg.ActiveCurrency(),
		needSetup: !config.Exists(),
		spinner:   sp,
		dbPath:    opts.DBPath,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.dbPath),
		a.spinner.Tick,
	)
}

// recompute derives every tab's figures from the loaded data.
func (a *App) recompute() {
	a.filtered = a.expenses
	if a.category != "" {
		a.filtered = pipeline.FilterByCategory(a.filtered, a.category)
	}

	a.window = pipeline.SelectWindow(a.period, a.ref)
	a.comparison = pipeline.ComparePeriods(a.filtered, a.period, a.ref)
	a.categories = pipeline.AggregateCategories(a.filtered, a.window.Current)
	a.prevCats = make(map[string]float64)
	for _, c := range pipeline.AggregateCategories(a.filtered, a.window.Previous) {
		a.prevCats[c.Category] = c.Total
	}
	a.days = pipeline.AggregateDays(a.filtered, a.window.Current)
	a.weekdays = pipeline.AggregateWeekdays(a.filtered, a.window.Current)
	a.quarters, a.trend = pipeline.AggregateQuarters(a.filtered, a.ref)
	a.forecast = pipeline.ForecastCategories(a.filtered, a.ref)

	// Budgets carry their own category and period, so they see every expense.
	a.budgetStat = pipeline.EvaluateBudgets(a.budgets, a.expenses, a.ref)
	a.goalSum = pipeline.SummarizeGoals(a.goals)
	a.scroll = 0
}

// shiftRef moves the reference date one period back (dir < 0) or forward.
func (a *App) shiftRef(dir int) {
	var next time.Time
	ok := true
	switch a.period {
	case model.PeriodWeek:
		next = a.ref.AddDate(0, 0, 7*dir)
	case model.PeriodMonth:
		next, ok = pipeline.AddMonths(a.ref, dir)
	case model.PeriodYear:
		next, ok = pipeline.AddMonths(a.ref, 12*dir)
	}
	if !ok {
		return
	}
	a.ref = next
	a.fixedRef = true
	a.recompute()
}

func (a *App) cyclePeriod() {
	a.period = model.Periods[(int(a.period)+1)%len(model.Periods)]
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.setupForm != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.scroll = max(a.scroll-1, 0)
		case tea.MouseButtonWheelDown:
			a.scroll++
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress && msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
					a.scroll = 0
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.loaded {
			return a, nil
		}

		// First-run setup intercepts all keys
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q", "esc":
			return a, tea.Quit
		case "r":
			if !a.fixedRef {
				a.ref = time.Now()
			}
			return a, loadDataCmd(a.dbPath)
		case "p":
			a.cyclePeriod()
		case "[":
			a.shiftRef(-1)
		case "]":
			a.shiftRef(1)
		case "n":
			a.ref = time.Now()
			a.fixedRef = false
			a.recompute()
		case "j", "down":
			a.scroll++
		case "k", "up":
			a.scroll = max(a.scroll-1, 0)
		case "left", "h", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			a.scroll = 0
		case "right", "l", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			a.scroll = 0
		default:
			if r := []rune(key); len(r) == 1 {
				if idx := components.TabIdxByKey(r[0]); idx >= 0 {
					a.activeTab = idx
					a.scroll = 0
				}
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.expenses = msg.Expenses
			a.budgets = msg.Budgets
			a.goals = msg.Goals
		}
		a.recompute()

		if a.needSetup && a.setupForm == nil {
			a.setupVals = defaultSetupValues()
			a.setupForm = NewSetupForm(len(a.expenses), a.dbPath, &a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		cfg, _ := config.Load()
		cfg = ApplySetup(cfg, a.setupVals)
		_ = config.Save(cfg)
		theme.SetActive(cfg.Appearance.Theme)
		a.currency = cfg.ActiveCurrency()
		a.period = cfg.Period()
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) money(v float64) string {
	return config.FormatAmount(v, a.currency)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  tapsave needs at least %d columns.\n",
		a.width, minTerminalWidth)
	h := max(a.height, 5)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)
	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	body := logoStyle.Render("◈ tapsave") + subtitleStyle.Render(" · spending dashboard") + "\n\n" +
		a.spinner.View() + subtitleStyle.Render(" Loading expenses...")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	bindings := []struct{ key, desc string }{
		{"o c t f b", "Jump to tab"},
		{"← →  tab", "Previous / next tab"},
		{"j k", "Scroll"},
		{"p", "Cycle week / month / year"},
		{"[ ]", "Previous / next period"},
		{"n", "Back to today"},
		{"r", "Reload from database"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "%s  %s\n", keyStyle.Render(fmt.Sprintf("%-10s", bind.key)), descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w) + "\n" + a.renderFilterRow(w)
	statusBar := components.RenderStatusBar(w, components.StatusInfo{
		Period:   strings.ToUpper(a.period.String()[:1]) + a.period.String()[1:],
		Ref:      a.ref,
		Currency: a.currency.Code,
		Expenses: len(a.filtered),
		LoadTime: a.loadTime,
		Err:      a.loadErr,
	})

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderCategoriesTab(cw)
	case 2:
		content = a.renderTrendsTab(cw)
	case 3:
		content = a.renderForecastTab(cw)
	case 4:
		content = a.renderBudgetsTab(cw)
	}

	content = scrollLines(content, a.scroll)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, a.height, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderFilterRow shows the active window and category filter under the tabs.
func (a App) renderFilterRow(w int) string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	r := a.window.Current
	s := dim.Render(" ") + accent.Render(a.period.String()) +
		dim.Render(fmt.Sprintf("  %s → %s", r.Start.Format("02 Jan 2006"), r.End.Format("02 Jan 2006")))
	if a.category != "" {
		s += dim.Render(" │ ") + accent.Render(a.category)
	}
	return lipgloss.NewStyle().Background(t.Surface).Width(w).Render(s)
}

// ─── Helpers ────────────────────────────────────────────────────

// loadDataCmd reads expenses, budgets and goals from the store.
func loadDataCmd(dbPath string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		st, err := store.Open(dbPath)
		if err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}
		defer st.Close()

		msg := DataLoadedMsg{}
		if msg.Expenses, err = st.ListExpenses(); err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}
		if msg.Budgets, err = st.ListBudgets(); err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}
		if msg.Goals, err = st.ListGoals(); err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}
		msg.LoadTime = time.Since(start)
		return msg
	}
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes use the same widths as RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// scrollLines drops the first n lines, keeping at least one.
func scrollLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	n = min(n, len(lines)-1)
	return strings.Join(lines[n:], "\n")
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with the background colour.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line, lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
