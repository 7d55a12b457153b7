package cmd

import (
	"fmt"
	"os"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/config"
	"github.com/tapsave/tapsave/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagImportDryRun bool

var importCmd = &cobra.Command{
	Use:   "import FILE|DIR...",
	Short: "Import expenses from JSON Lines files",
	Long: `Import expenses from JSON Lines files, one expense per line:

  {"amount": "12.50", "date": "2026-10-17", "category": "Comida", "notes": "lunch"}

Directories are scanned recursively for .jsonl and .ndjson files. Files that
have not changed since the last import are skipped; changed files replace the
expenses they produced before.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagImportDryRun, "dry-run", false, "Parse and report without saving")
	rootCmd.AddCommand(importCmd)
}

func importProgress(current, total int) {
	if flagQuiet {
		return
	}
	if current%10 == 0 || current == total {
		fmt.Fprintf(os.Stderr, "\r  Parsing %s", cli.RenderProgressBar(current, total, 20))
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Scanning import files...\n")
	}

	if flagImportDryRun {
		cfg := loadConfig(ctx)
		result, err := pipeline.Load(ctx, args, importProgress)
		if err != nil {
			return err
		}
		if !flagQuiet && result.TotalFiles > 0 {
			fmt.Fprintln(os.Stderr)
		}
		printImportStats(result)
		fmt.Printf("  Would import %s expenses totalling %s\n",
			cli.FormatNumber(int64(len(result.Expenses))),
			config.FormatAmount(pipeline.Total(result.Expenses), cfg.ActiveCurrency()))
		return nil
	}

	st, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	result, err := pipeline.ImportWithTracker(ctx, args, st, importProgress)
	if err != nil {
		return err
	}
	if !flagQuiet && result.TotalFiles > 0 {
		fmt.Fprintln(os.Stderr)
	}
	printImportStats(&result.LoadResult)
	if result.Unchanged > 0 {
		fmt.Printf("  %d files unchanged since last import\n", result.Unchanged)
	}
	fmt.Printf("  Imported %s expenses\n", cli.FormatNumber(int64(result.Imported)))
	return nil
}

func printImportStats(r *pipeline.LoadResult) {
	if r.TotalFiles == 0 {
		fmt.Println("  No .jsonl or .ndjson files found.")
		return
	}
	fmt.Printf("  %d of %d files parsed\n", r.ParsedFiles, r.TotalFiles)
	if r.ParseErrors > 0 {
		fmt.Fprintf(os.Stderr, "  %d malformed lines skipped\n", r.ParseErrors)
	}
	if r.FileErrors > 0 {
		fmt.Fprintf(os.Stderr, "  %d files could not be read\n", r.FileErrors)
	}
}
