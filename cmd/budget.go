package cmd

import (
	"fmt"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/config"
	"github.com/tapsave/tapsave/internal/model"
	"github.com/tapsave/tapsave/internal/pipeline"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:     "budget",
	Aliases: []string{"budgets"},
	Short:   "Show budgets and how much of each is spent",
	RunE:    runBudget,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set AMOUNT",
	Short: "Create a budget for --period, optionally limited to --category",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetSet,
}

var budgetRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetRm,
}

func init() {
	budgetCmd.AddCommand(budgetSetCmd, budgetRmCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, _ []string) error {
	st, cfg, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	budgets, err := st.ListBudgets()
	if err != nil {
		return err
	}
	if len(budgets) == 0 {
		fmt.Println("\n  No budgets set.")
		fmt.Println("  Create one with `tapsave budget set 500 --period month`.")
		return nil
	}
	expenses, err := st.ListExpenses()
	if err != nil {
		return err
	}
	ref, err := referenceDate()
	if err != nil {
		return err
	}
	cur := cfg.ActiveCurrency()

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGETS  as of " + ref.Format("02 Jan 2006")))
	fmt.Println()

	for _, s := range pipeline.EvaluateBudgets(budgets, expenses, ref) {
		status := s.Level.String()
		if s.Exceeded {
			status = "exceeded"
		}
		fmt.Printf("  %s  %s, %s\n", s.Budget.ID[:8], periodLabel(s.Budget.Period), budgetScope(s.Budget))
		fmt.Printf("  %s %5s  %s of %s  (%s left, %s)\n\n",
			cli.RenderBudgetBar(s.Progress, s.Level, 30),
			cli.FormatPercent(s.Progress),
			config.FormatAmount(s.Spent, cur),
			config.FormatAmount(s.Budget.Amount, cur),
			config.FormatAmount(s.Remaining, cur),
			status,
		)
	}
	return nil
}

func runBudgetSet(cmd *cobra.Command, args []string) error {
	amount, err := model.ParseAmount(args[0])
	if err != nil {
		return err
	}
	if amount == 0 {
		return fmt.Errorf("%w: budget must be greater than zero", model.ErrInvalidAmount)
	}

	st, cfg, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	period, err := resolvePeriod(cfg)
	if err != nil {
		return err
	}
	b, err := st.SaveBudget(model.Budget{
		Amount:   amount,
		Period:   period,
		Category: model.Labeled(flagCategory),
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Budget %s: %s per %s for %s\n",
		b.ID[:8], config.FormatAmount(b.Amount, cfg.ActiveCurrency()), b.Period, budgetScope(b))
	return nil
}

func runBudgetRm(cmd *cobra.Command, args []string) error {
	st, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	budgets, err := st.ListBudgets()
	if err != nil {
		return err
	}
	b, err := findByID(budgets, func(b model.Budget) string { return b.ID }, "budget", args[0])
	if err != nil {
		return err
	}
	if err := st.DeleteBudget(b.ID); err != nil {
		return err
	}
	fmt.Printf("  Deleted budget %s\n", b.ID[:8])
	return nil
}

// budgetScope names what a budget covers.
func budgetScope(b model.Budget) string {
	if name, ok := b.Category.Name(); ok {
		return name
	}
	return "all categories"
}
