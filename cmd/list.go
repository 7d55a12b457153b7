package cmd

import (
	"fmt"
	"math"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagListLimit int
	flagListMin   float64
	flagListMax   float64
	flagListAll   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses in the current period, newest first",
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVarP(&flagListLimit, "limit", "n", 20, "Maximum rows to show (0 for all)")
	listCmd.Flags().Float64Var(&flagListMin, "min", 0, "Minimum amount (inclusive)")
	listCmd.Flags().Float64Var(&flagListMax, "max", 0, "Maximum amount (inclusive, 0 for no limit)")
	listCmd.Flags().BoolVar(&flagListAll, "all", false, "Ignore the period window")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	rc, err := loadReport(cmd.Context())
	if err != nil {
		return err
	}

	expenses := rc.Expenses
	if !flagListAll {
		expenses = pipeline.FilterByRange(expenses, rc.Window.Current)
	}
	maxAmount := flagListMax
	if maxAmount <= 0 {
		maxAmount = math.Inf(1)
	}
	expenses = pipeline.FilterByAmount(expenses, flagListMin, maxAmount)

	if len(expenses) == 0 {
		fmt.Println("\n  No expenses match.")
		return nil
	}

	shown := expenses
	if flagListLimit > 0 && len(shown) > flagListLimit {
		shown = shown[:flagListLimit]
	}

	rows := make([][]string, 0, len(shown)+2)
	for _, e := range shown {
		rows = append(rows, []string{
			e.Date.Format("2006-01-02 15:04"),
			e.Category.Label(),
			truncate(e.Notes, 30),
			e.ID[:8],
			rc.money(e.Amount),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total", "", "", "", rc.money(pipeline.Total(expenses))},
	)

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Category", "Notes", "ID", "Amount"},
		Rows:    rows,
	}))
	if len(shown) < len(expenses) {
		fmt.Printf("  Showing %d of %s expenses (use --limit 0 for all)\n",
			len(shown), cli.FormatNumber(int64(len(expenses))))
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
