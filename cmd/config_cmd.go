// Package cmd implements the tapsave CLI commands.
package cmd

import (
	"fmt"

	"github.com/tapsave/tapsave/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default period: %s\n", cfg.Period())
	fmt.Printf("    Database:       %s\n", dbPath(cfg))
	fmt.Println()

	cur := cfg.ActiveCurrency()
	fmt.Println("  [Currency]")
	fmt.Printf("    Active: %s (%s)  e.g. %s\n", cur.Code, cur.Name, config.FormatAmount(1234.5, cur))
	if _, ok := config.LookupCurrency(cfg.Currency.Code, cfg.Currency.Custom); !ok {
		fmt.Printf("    Unknown code %q, falling back to %s\n", cfg.Currency.Code, config.DefaultCurrency.Code)
	}
	for _, c := range cfg.Currency.Custom {
		fmt.Printf("    Custom: %s %s (%s)\n", c.Code, c.Symbol, c.Name)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `tapsave setup` to reconfigure.")
	return nil
}
