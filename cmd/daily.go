package cmd

import (
	"fmt"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/pipeline"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily spending table",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, _ []string) error {
	rc, err := loadReport(cmd.Context())
	if err != nil {
		return err
	}

	days := pipeline.AggregateDays(rc.Expenses, rc.Window.Current)
	if len(days) == 0 {
		fmt.Println("\n  No data for the selected period.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(rc.titleFor("DAILY SPENDING")))
	fmt.Println()

	values := make([]float64, 0, len(days))
	rows := make([][]string, 0, len(days))
	var total float64
	for _, d := range days {
		values = append(values, d.Total)
		total += d.Total
		rows = append(rows, []string{
			cli.FormatDay(d.Day),
			rc.money(d.Total),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Day", "Spent"},
		Rows:    rows,
	}))
	fmt.Printf("\n  %s\n", cli.RenderSparkline(values))
	fmt.Printf("  %d active days, %s/day\n\n", len(days), rc.money(total/float64(len(days))))
	return nil
}
