package cmd

import (
	"errors"
	"fmt"

	"github.com/tapsave/tapsave/internal/config"
	"github.com/tapsave/tapsave/internal/logger"
	"github.com/tapsave/tapsave/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup: currency, default period and theme",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := loadConfig(ctx)

	count := 0
	if st, _, err := openStore(ctx); err == nil {
		count, _ = st.ExpenseCount()
		_ = st.Close()
	} else {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Msg("could not count expenses")
	}

	vals := tui.SetupValuesFrom(cfg)
	form := tui.NewSetupForm(count, dbPath(cfg), &vals, cfg.Currency.Custom...)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	cfg = tui.ApplySetup(cfg, vals)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `tapsave setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
