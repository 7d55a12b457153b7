package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tapsave/tapsave/internal/config"
	"github.com/tapsave/tapsave/internal/logger"
	"github.com/tapsave/tapsave/internal/model"
	"github.com/tapsave/tapsave/internal/pipeline"
	"github.com/tapsave/tapsave/internal/source"
	"github.com/tapsave/tapsave/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagPeriod   string
	flagDate     string
	flagDB       string
	flagCategory string
	flagQuiet    bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "tapsave",
	Short: "Expense tracking and spending statistics",
	Long:  "Record expenses, then see where the money goes: category shares, trends, forecasts and budgets.",
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		log := logger.New(logger.LevelFor(flagVerbose, flagQuiet))
		cmd.SetContext(logger.WithContext(cmd.Context(), log))
	},
	SilenceUsage: true,
	RunE:         runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPeriod, "period", "p", "", "Period: week, month or year (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Reference date YYYY-MM-DD (default today)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Expense database path (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagCategory, "category", "c", "", "Filter to one category")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress and log output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// loadConfig reads the config file, falling back to defaults on error.
func loadConfig(ctx context.Context) config.Config {
	cfg, err := config.Load()
	if err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Msg("using default config")
	}
	return cfg
}

// dbPath resolves the store location: --db, then config, then the data dir default.
func dbPath(cfg config.Config) string {
	if flagDB != "" {
		return flagDB
	}
	return cfg.DBPath()
}

// openStore opens the expense database for commands that write.
func openStore(ctx context.Context) (*store.Store, config.Config, error) {
	cfg := loadConfig(ctx)
	path := dbPath(cfg)
	log := logger.FromContext(ctx)
	log.Debug().Str("path", path).Msg("opening store")

	st, err := store.Open(path)
	if err != nil {
		return nil, cfg, fmt.Errorf("opening store: %w", err)
	}
	return st, cfg, nil
}

// loadExpenses is the shared read path used by the report commands.
func loadExpenses(ctx context.Context) ([]model.Expense, config.Config, error) {
	st, cfg, err := openStore(ctx)
	if err != nil {
		return nil, cfg, err
	}
	defer st.Close()

	expenses, err := st.ListExpenses()
	if err != nil {
		return nil, cfg, fmt.Errorf("loading expenses: %w", err)
	}
	log := logger.FromContext(ctx)
	log.Debug().Int("expenses", len(expenses)).Msg("loaded")
	return expenses, cfg, nil
}

// resolvePeriod returns --period when given, otherwise the configured default.
func resolvePeriod(cfg config.Config) (model.Period, error) {
	if flagPeriod == "" {
		return cfg.Period(), nil
	}
	return model.ParsePeriod(flagPeriod)
}

// referenceDate returns the end of the --date day, or now.
func referenceDate() (time.Time, error) {
	if flagDate == "" {
		return time.Now(), nil
	}
	return endOfDay(flagDate)
}

func endOfDay(s string) (time.Time, error) {
	t, err := source.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location()), nil
}

// applyFilters narrows expenses to --category.
func applyFilters(expenses []model.Expense) []model.Expense {
	if flagCategory == "" {
		return expenses
	}
	return pipeline.FilterByCategory(expenses, flagCategory)
}

// reportContext bundles what every report command needs.
type reportContext struct {
	Expenses []model.Expense
	Period   model.Period
	Ref      time.Time
	Window   model.Window
	Currency config.Currency
}

func loadReport(ctx context.Context) (*reportContext, error) {
	expenses, cfg, err := loadExpenses(ctx)
	if err != nil {
		return nil, err
	}
	period, err := resolvePeriod(cfg)
	if err != nil {
		return nil, err
	}
	ref, err := referenceDate()
	if err != nil {
		return nil, err
	}
	return &reportContext{
		Expenses: applyFilters(expenses),
		Period:   period,
		Ref:      ref,
		Window:   pipeline.SelectWindow(period, ref),
		Currency: cfg.ActiveCurrency(),
	}, nil
}

func (r *reportContext) money(v float64) string {
	return config.FormatAmount(v, r.Currency)
}

// titleFor builds a report title such as "CATEGORIES  Month to 17 Oct 2026".
func (r *reportContext) titleFor(name string) string {
	title := fmt.Sprintf("%s  %s to %s", name, periodLabel(r.Period), r.Ref.Format("02 Jan 2006"))
	if flagCategory != "" {
		title += "  [" + flagCategory + "]"
	}
	return title
}

func periodLabel(p model.Period) string {
	s := p.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
