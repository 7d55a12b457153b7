package cmd

import (
	"fmt"
	"strings"

	"github.com/tapsave/tapsave/internal/cli"
	"github.com/tapsave/tapsave/internal/model"
	"github.com/tapsave/tapsave/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagCategoryIcon  string
	flagCategoryColor string
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "Spending by category for the current period",
	RunE:    runCategories,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesAdd,
}

var categoriesRmCmd = &cobra.Command{
	Use:   "rm NAME",
	Short: "Delete a user category; its expenses become uncategorized",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesRm,
}

func init() {
	categoriesAddCmd.Flags().StringVar(&flagCategoryIcon, "icon", "", "Icon shown next to the name")
	categoriesAddCmd.Flags().StringVar(&flagCategoryColor, "color", "#4ECDC4", "Hex colour")
	categoriesCmd.AddCommand(categoriesAddCmd, categoriesRmCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	rc, err := loadReport(cmd.Context())
	if err != nil {
		return err
	}

	cats := pipeline.AggregateCategories(rc.Expenses, rc.Window.Current)
	if len(cats) == 0 {
		fmt.Println("\n  No expenses in the selected period.")
		return nil
	}
	prev := pipeline.AggregateCategories(rc.Expenses, rc.Window.Previous)
	prevTotals := make(map[string]float64, len(prev))
	for _, c := range prev {
		prevTotals[c.Category] = c.Total
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(rc.titleFor("CATEGORIES")))
	fmt.Println()

	var total float64
	rows := make([][]string, 0, len(cats)+2)
	for _, c := range cats {
		total += c.Total
		rows = append(rows, []string{
			c.Category,
			rc.money(c.Total),
			cli.FormatPercent(c.Share),
			cli.FormatDelta(c.Total, prevTotals[c.Category], rc.Currency),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total", rc.money(total), cli.FormatPercent(1), ""},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Total", "Share", "vs Prev"},
		Rows:    rows,
	}))

	fmt.Println()
	width := 0
	for _, c := range cats {
		width = max(width, len([]rune(c.Category)))
	}
	for _, c := range cats {
		label := c.Category + strings.Repeat(" ", width-len([]rune(c.Category)))
		fmt.Println(cli.RenderHorizontalBar(label, c.Total, cats[0].Total, 40))
	}
	fmt.Println()
	return nil
}

func runCategoriesAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" || strings.EqualFold(name, model.UncategorizedLabel) {
		return fmt.Errorf("category name %q is reserved", name)
	}

	st, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.AddCategory(model.CategoryInfo{
		Name:  name,
		Icon:  flagCategoryIcon,
		Color: flagCategoryColor,
	}); err != nil {
		return err
	}
	fmt.Printf("  Added category %s\n", name)
	return nil
}

func runCategoriesRm(cmd *cobra.Command, args []string) error {
	st, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteCategory(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Deleted category %s\n", args[0])
	return nil
}
