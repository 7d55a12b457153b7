package cmd

import (
	"fmt"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/pipeline"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Predict next month's spending per category",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(cmd *cobra.Command, _ []string) error {
	rc, err := loadReport(cmd.Context())
	if err != nil {
		return err
	}

	summary := pipeline.ForecastCategories(rc.Expenses, rc.Ref)
	if len(summary.Forecasts) == 0 {
		fmt.Printf("\n  Not enough history to forecast: a category needs spending in %d of the last %d months.\n",
			pipeline.MinForecastMonths, pipeline.ForecastWindowMonths)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FORECAST  Next month from " + cli.FormatMonth(rc.Ref)))
	fmt.Println()

	rows := make([][]string, 0, len(summary.Forecasts)+2)
	for _, f := range summary.Forecasts {
		change := "n/a"
		if f.CurrentPeriodTotal > 0 {
			change = cli.FormatChange(f.PercentChange() * 100)
		}
		rows = append(rows, []string{
			f.Category,
			rc.money(f.CurrentPeriodTotal),
			rc.money(f.PredictedNextPeriodTotal),
			change,
			cli.FormatPercent(f.Confidence),
			fmt.Sprintf("%d", f.Months),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{
			"Total",
			rc.money(summary.TotalCurrent),
			rc.money(summary.TotalPredicted),
			"",
			cli.FormatPercent(summary.AverageConfidence),
			"",
		},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "This Month", "Predicted", "Change", "Confidence", "Months"},
		Rows:    rows,
	}))
	return nil
}
