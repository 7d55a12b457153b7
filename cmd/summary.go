package cmd

import (
	"fmt"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/pipeline"

	"github.com/spf13/cobra"
)

const summaryTopCategories = 5

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending summary with previous-period comparison",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	rc, err := loadReport(cmd.Context())
	if err != nil {
		return err
	}

	if len(rc.Expenses) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		fmt.Println("  Add one with `tapsave add 12.50 -c Comida` or import a file.")
		return nil
	}

	cmp := pipeline.ComparePeriods(rc.Expenses, rc.Period, rc.Ref)
	current := pipeline.FilterByRange(rc.Expenses, rc.Window.Current)
	categories := pipeline.AggregateCategories(rc.Expenses, rc.Window.Current)

	fmt.Println()
	fmt.Println(cli.RenderTitle(rc.titleFor("SPENDING")))
	fmt.Println()

	rows := [][]string{
		{"Spent", rc.money(cmp.CurrentTotal)},
		{"Expenses", cli.FormatNumber(int64(len(current)))},
	}
	if len(current) > 0 {
		rows = append(rows, []string{"Average", rc.money(cmp.CurrentTotal / float64(len(current)))})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Previous " + rc.Period.String(), rc.money(cmp.PreviousTotal)},
		[]string{"Difference", cli.FormatDelta(cmp.CurrentTotal, cmp.PreviousTotal, rc.Currency)},
	)
	if cmp.PreviousTotal > 0 {
		rows = append(rows, []string{"Change", cli.FormatChange(cmp.PercentChange)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if len(categories) == 0 {
		fmt.Println("\n  No expenses in the selected period.")
		return nil
	}

	limit := min(summaryTopCategories, len(categories))
	catRows := make([][]string, 0, limit)
	for _, c := range categories[:limit] {
		catRows = append(catRows, []string{c.Category, rc.money(c.Total), cli.FormatPercent(c.Share)})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Top Categories",
		Headers: []string{"Category", "Total", "Share"},
		Rows:    catRows,
	}))
	return nil
}
