package cmd

import (
	"fmt"
	"time"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/config"
	"github.com/tapsave/tapsave/internal/model"
	"github.com/tapsave/tapsave/internal/pipeline"
	"github.com/tapsave/tapsave/internal/source"

	"github.com/spf13/cobra"
)

var (
	flagGoalDeadline string
	flagGoalIcon     string
	flagGoalNote     string
)

var goalsCmd = &cobra.Command{
	Use:     "goals",
	Aliases: []string{"goal"},
	Short:   "Show saving goals and their progress",
	RunE:    runGoals,
}

var goalsAddCmd = &cobra.Command{
	Use:   "add NAME TARGET",
	Short: "Create a saving goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalsAdd,
}

var goalsContributeCmd = &cobra.Command{
	Use:   "contribute ID AMOUNT",
	Short: "Add money to a saving goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalsContribute,
}

var goalsRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a saving goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsRm,
}

func init() {
	goalsAddCmd.Flags().StringVar(&flagGoalDeadline, "deadline", "", "Deadline YYYY-MM-DD")
	goalsAddCmd.Flags().StringVar(&flagGoalIcon, "icon", "", "Icon shown next to the name")
	goalsAddCmd.Flags().StringVar(&flagGoalNote, "note", "", "Free-form note")
	goalsCmd.AddCommand(goalsAddCmd, goalsContributeCmd, goalsRmCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(cmd *cobra.Command, _ []string) error {
	st, cfg, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	goals, err := st.ListGoals()
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		fmt.Println("\n  No saving goals yet.")
		fmt.Println("  Create one with `tapsave goals add Vacation 1500 --deadline 2027-06-01`.")
		return nil
	}

	cur := cfg.ActiveCurrency()
	now := time.Now()
	summary := pipeline.SummarizeGoals(goals)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVING GOALS"))
	fmt.Println()

	rows := make([][]string, 0, len(goals)+2)
	for _, g := range goals {
		rows = append(rows, []string{
			goalName(g),
			config.FormatAmount(g.CurrentAmount, cur),
			config.FormatAmount(g.TargetAmount, cur),
			cli.FormatPercent(g.Progress()),
			goalDeadline(g, now),
			g.ID[:8],
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{
			fmt.Sprintf("%d of %d completed", summary.Completed, summary.Count),
			config.FormatAmount(summary.TotalSaved, cur),
			config.FormatAmount(summary.TotalTarget, cur),
			cli.FormatPercent(summary.OverallProgress),
			"",
			"",
		},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Goal", "Saved", "Target", "Progress", "Deadline", "ID"},
		Rows:    rows,
	}))
	return nil
}

func goalName(g model.SavingGoal) string {
	name := g.Name
	if g.Icon != "" {
		name = g.Icon + " " + name
	}
	if g.Completed {
		name += " ✓"
	}
	return name
}

func goalDeadline(g model.SavingGoal, now time.Time) string {
	days, ok := g.DaysRemaining(now)
	switch {
	case !ok:
		return "none"
	case g.Completed:
		return g.Deadline.Format("2006-01-02")
	case g.IsOverdue(now):
		return "overdue"
	default:
		return fmt.Sprintf("%dd left", days)
	}
}

func runGoalsAdd(cmd *cobra.Command, args []string) error {
	target, err := model.ParseAmount(args[1])
	if err != nil {
		return err
	}
	if target == 0 {
		return fmt.Errorf("%w: target must be greater than zero", model.ErrInvalidAmount)
	}
	g := model.SavingGoal{
		Name:         args[0],
		TargetAmount: target,
		Icon:         flagGoalIcon,
		Notes:        flagGoalNote,
	}
	if flagGoalDeadline != "" {
		d, err := source.ParseDate(flagGoalDeadline)
		if err != nil {
			return fmt.Errorf("invalid deadline %q: %w", flagGoalDeadline, err)
		}
		g.Deadline = &d
	}

	st, cfg, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	if g, err = st.SaveGoal(g); err != nil {
		return err
	}
	fmt.Printf("  Goal %s: %s toward %s\n",
		g.ID[:8], g.Name, config.FormatAmount(g.TargetAmount, cfg.ActiveCurrency()))
	return nil
}

func runGoalsContribute(cmd *cobra.Command, args []string) error {
	amount, err := model.ParseAmount(args[1])
	if err != nil {
		return err
	}

	st, cfg, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	goals, err := st.ListGoals()
	if err != nil {
		return err
	}
	g, err := findByID(goals, func(g model.SavingGoal) string { return g.ID }, "goal", args[0])
	if err != nil {
		return err
	}
	if g, err = st.Contribute(g.ID, amount); err != nil {
		return err
	}

	cur := cfg.ActiveCurrency()
	fmt.Printf("  %s: %s of %s (%s)\n",
		g.Name,
		config.FormatAmount(g.CurrentAmount, cur),
		config.FormatAmount(g.TargetAmount, cur),
		cli.FormatPercent(g.Progress()))
	if g.Completed {
		fmt.Println("  Goal reached!")
	}
	return nil
}

func runGoalsRm(cmd *cobra.Command, args []string) error {
	st, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	goals, err := st.ListGoals()
	if err != nil {
		return err
	}
	g, err := findByID(goals, func(g model.SavingGoal) string { return g.ID }, "goal", args[0])
	if err != nil {
		return err
	}
	if err := st.DeleteGoal(g.ID); err != nil {
		return err
	}
	fmt.Printf("  Deleted goal %s\n", g.Name)
	return nil
}
