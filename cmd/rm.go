package cmd

import (
	"fmt"
	"strings"

	"github.com/tapsave/tapsave/internal/config"
	"github.com/tapsave/tapsave/internal/model"
	"github.com/tapsave/tapsave/internal/store"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete an expense by ID or unique ID prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	expenses, err := st.ListExpenses()
	if err != nil {
		return err
	}
	e, err := findByID(expenses, func(e model.Expense) string { return e.ID }, "expense", args[0])
	if err != nil {
		return err
	}
	if err := st.DeleteExpense(e.ID); err != nil {
		return err
	}

	fmt.Printf("  Deleted %s  %s  %s\n",
		config.FormatAmount(e.Amount, cfg.ActiveCurrency()),
		e.Category.Label(),
		e.Date.Format("2006-01-02"))
	return nil
}

// findByID resolves a full ID or an unambiguous prefix of one.
func findByID[T any](items []T, idOf func(T) string, kind, prefix string) (T, error) {
	var zero T
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	var matches []T
	for _, item := range items {
		id := idOf(item)
		if id == prefix {
			return item, nil
		}
		if prefix != "" && strings.HasPrefix(id, prefix) {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 0:
		return zero, fmt.Errorf("%s %q: %w", kind, prefix, store.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return zero, fmt.Errorf("%s prefix %q matches %d entries", kind, prefix, len(matches))
	}
}
