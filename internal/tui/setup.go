package tui

import (
	"fmt"

	"github.com/tapsave/tapsave/internal/config"
	"github.com/tapsave/tapsave/internal/model"
	"github.com/tapsave/tapsave/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the setup form.
type SetupValues struct {
	Currency string
	Period   string
	Theme    string
}

func defaultSetupValues() SetupValues {
	return SetupValuesFrom(config.DefaultConfig())
}

// SetupValuesFrom pre-fills the form with the current configuration.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Currency: cfg.ActiveCurrency().Code,
		Period:   cfg.Period().String(),
		Theme:    theme.ByName(cfg.Appearance.Theme).Name,
	}
}

// NewSetupForm builds the first-run form. vals receives the answers.
// customs lists user-defined currencies offered next to the built-ins.
func NewSetupForm(expenseCount int, dbPath string, vals *SetupValues, customs ...config.Currency) *huh.Form {
	currencyOpts := make([]huh.Option[string], 0, 4+len(customs))
	for _, c := range config.Currencies(customs) {
		currencyOpts = append(currencyOpts, huh.NewOption(fmt.Sprintf("%s  %s (%s)", c.Symbol, c.Name, c.Code), c.Code))
	}

	periodOpts := make([]huh.Option[string], 0, len(model.Periods))
	for _, p := range model.Periods {
		periodOpts = append(periodOpts, huh.NewOption(p.String(), p.String()))
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	welcome := fmt.Sprintf("Database: %s\n%d expenses recorded.", dbPath, expenseCount)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to tapsave").
				Description(welcome),
			huh.NewSelect[string]().
				Title("Currency").
				Description("Used to display every amount.").
				Options(currencyOpts...).
				Value(&vals.Currency),
			huh.NewSelect[string]().
				Title("Default period").
				Description("Window used by reports when --period is not given.").
				Options(periodOpts...).
				Value(&vals.Period),
			huh.NewSelect[string]().
				Title("Colour theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}

// ApplySetup copies the form answers onto cfg.
func ApplySetup(cfg config.Config, vals SetupValues) config.Config {
	if vals.Currency != "" {
		cfg.Currency.Code = vals.Currency
	}
	if p, err := model.ParsePeriod(vals.Period); err == nil {
		cfg.General.DefaultPeriod = p.String()
	}
	if vals.Theme != "" {
		cfg.Appearance.Theme = theme.ByName(vals.Theme).Name
	}
	return cfg
}
