package cmd

import (
	"fmt"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/pipeline"

	"github.com/spf13/cobra"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Quarterly totals over the last year with a fitted trend",
	RunE:  runTrend,
}

func init() {
	rootCmd.AddCommand(trendCmd)
}

func runTrend(cmd *cobra.Command, _ []string) error {
	rc, err := loadReport(cmd.Context())
	if err != nil {
		return err
	}

	quarters, fit := pipeline.AggregateQuarters(rc.Expenses, rc.Ref)
	if len(quarters) == 0 {
		fmt.Println("\n  No expenses in the last twelve months.")
		return nil
	}

	title := "QUARTERLY TREND  12 months to " + rc.Ref.Format("02 Jan 2006")
	if flagCategory != "" {
		title += "  [" + flagCategory + "]"
	}
	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	values := make([]float64, 0, len(quarters))
	rows := make([][]string, 0, len(quarters))
	for i, q := range quarters {
		values = append(values, q.Total)
		rows = append(rows, []string{
			fmt.Sprintf("Q%d", i+1),
			"from " + q.QuarterStart.Format("02 Jan 2006"),
			rc.money(q.Total),
			rc.money(q.TrendValue),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Quarter", "Start", "Total", "Trend"},
		Rows:    rows,
	}))

	fmt.Printf("\n  %s\n", cli.RenderSparkline(values))
	direction := "flat"
	switch {
	case fit.Slope > 0:
		direction = "rising"
	case fit.Slope < 0:
		direction = "falling"
	}
	fmt.Printf("  Trend: %s, %s per quarter (R² %.2f)\n", direction, cli.FormatDelta(fit.Slope, 0, rc.Currency), fit.RSquared)
	if fit.Degenerate {
		fmt.Println("  Not enough quarters for a meaningful fit.")
	}
	fmt.Println()
	return nil
}
