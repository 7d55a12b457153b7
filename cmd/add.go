package cmd

import (
	"fmt"
	"time"

	"github.com/tapsave/tapsave/internal/config"
	"github.com/tapsave/tapsave/internal/logger"
	"github.com/tapsave/tapsave/internal/model"
	"github.com/tapsave/tapsave/internal/source"

	"github.com/spf13/cobra"
)

var flagAddNote string

var addCmd = &cobra.Command{
	Use:   "add AMOUNT",
	Short: "Record an expense",
	Long:  "Record an expense. Use --category to file it, --date to backdate it and --note to describe it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddNote, "note", "", "Free-form note")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	amount, err := model.ParseAmount(args[0])
	if err != nil {
		return err
	}
	if amount == 0 {
		return fmt.Errorf("%w: amount must be greater than zero", model.ErrInvalidAmount)
	}
	date := time.Now()
	if flagDate != "" {
		if date, err = source.ParseDate(flagDate); err != nil {
			return fmt.Errorf("invalid date %q: %w", flagDate, err)
		}
	}

	st, cfg, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	e, err := st.AddExpense(model.Expense{
		Amount:   amount,
		Date:     date,
		Notes:    flagAddNote,
		Category: model.Labeled(flagCategory),
	})
	if err != nil {
		return err
	}

	log := logger.FromContext(cmd.Context())
	log.Debug().Str("id", e.ID).Float64("amount", e.Amount).Msg("expense added")

	fmt.Printf("  Added %s  %s  %s\n",
		config.FormatAmount(e.Amount, cfg.ActiveCurrency()),
		e.Category.Label(),
		e.Date.Format("2006-01-02"))
	fmt.Printf("  ID: %s\n", e.ID)
	return nil
}
