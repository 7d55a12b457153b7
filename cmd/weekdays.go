package cmd

import (
	"fmt"
	"strings"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/pipeline"

	"github.com/spf13/cobra"
)

var weekdaysCmd = &cobra.Command{
	Use:   "weekdays",
	Short: "Spending by day of week",
	RunE:  runWeekdays,
}

func init() {
	rootCmd.AddCommand(weekdaysCmd)
}

func runWeekdays(cmd *cobra.Command, _ []string) error {
	rc, err := loadReport(cmd.Context())
	if err != nil {
		return err
	}

	days := pipeline.AggregateWeekdays(rc.Expenses, rc.Window.Current)

	fmt.Println()
	fmt.Println(cli.RenderTitle(rc.titleFor("BY WEEKDAY") + " (local time)"))
	fmt.Println()

	peak := 0
	for i, d := range days {
		if d.Total > days[peak].Total {
			peak = i
		}
	}
	if days[peak].Total == 0 {
		fmt.Println("  No expenses in the selected period.")
		return nil
	}

	maxBarWidth := 40
	for _, d := range days {
		barLen := int(d.Total / days[peak].Total * float64(maxBarWidth))
		bar := strings.Repeat("█", barLen)
		fmt.Printf("  %s │ %12s │ %s\n", cli.ShortWeekday(d.Weekday), rc.money(d.Total), bar)
	}

	fmt.Printf("\n  Peak: %s (%s)\n\n", days[peak].Weekday, rc.money(days[peak].Total))
	return nil
}
