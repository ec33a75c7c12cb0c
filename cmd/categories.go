package cmd

import (
	"fmt"

	"pennyquest/internal/cli"
	"pennyquest/internal/ledger"

	"github.com/spf13/cobra"
)

var flagCategoriesTop int

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "All-time spending by category",
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().IntVarP(&flagCategoriesTop, "top", "n", 10, "Show the top N categories")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	expenses := svc.Ledger().All()
	if len(expenses) == 0 {
		fmt.Println("\n  No expenses logged yet.")
		return nil
	}

	top := ledger.TopCategories(expenses, flagCategoriesTop)
	maxTotal := top[0].Total

	rows := make([][]string, 0, len(top))
	for _, ct := range top {
		rows = append(rows, []string{
			ct.Category,
			cli.FormatCurrency(ct.Total),
			cli.RenderCategoryBar(ct.Total, maxTotal, 24),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Top %d Categories", len(top)),
		Headers: []string{"Category", "Spent", ""},
		Rows:    rows,
	}))
	fmt.Printf("\n  Total: %s\n\n", cli.FormatCurrency(ledger.TotalOf(expenses)))
	return nil
}
