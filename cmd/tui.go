package cmd

import (
	"fmt"
	"time"

	"github.com/tapsave/tapsave/internal/tui"
	"github.com/tapsave/tapsave/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig(cmd.Context())
	theme.SetActive(cfg.Appearance.Theme)

	period, err := resolvePeriod(cfg)
	if err != nil {
		return err
	}
	var ref time.Time
	if flagDate != "" {
		if ref, err = referenceDate(); err != nil {
			return err
		}
	}

	// Force TrueColor so background styling always produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		DBPath:   dbPath(cfg),
		Period:   period,
		Ref:      ref,
		Category: flagCategory,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
