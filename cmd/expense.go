package cmd

import (
	"fmt"

	"pennyquest/internal/cli"
	"pennyquest/internal/dates"
	"pennyquest/internal/ledger"
	"pennyquest/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagExpenseDate     string
	flagExpenseNotes    string
	flagExpenseCategory string
	flagExpenseFrom     string
	flagExpenseTo       string
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage logged expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add <category> <amount>",
	Short: "Log a one-off expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses, optionally filtered",
	RunE:  runExpenseList,
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseDelete,
}

var expenseUpdateCmd = &cobra.Command{
	Use:   "update <id> <amount>",
	Short: "Correct the amount (and optionally notes) of an expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runExpenseUpdate,
}

func init() {
	expenseAddCmd.Flags().StringVar(&flagExpenseDate, "date", "", "Expense date as YYYY-MM-DD (default today)")
	expenseAddCmd.Flags().StringVar(&flagExpenseNotes, "notes", "", "Free-text notes")
	expenseUpdateCmd.Flags().StringVar(&flagExpenseNotes, "notes", "", "Replace notes")
	expenseListCmd.Flags().StringVar(&flagExpenseCategory, "category", "", "Filter to one category")
	expenseListCmd.Flags().StringVar(&flagExpenseFrom, "from", "", "Range start YYYY-MM-DD")
	expenseListCmd.Flags().StringVar(&flagExpenseTo, "to", "", "Range end YYYY-MM-DD")

	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd, expenseDeleteCmd, expenseUpdateCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(_ *cobra.Command, args []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	amount, err := model.ParseAmount(args[1])
	if err != nil {
		return fmt.Errorf("amount %q: %w", args[1], err)
	}

	date := flagExpenseDate
	if date == "" {
		date = dates.Today()
	} else if _, err := dates.Parse(date); err != nil {
		return err
	}

	e := model.Expense{
		ID:       uuid.NewString(),
		Amount:   amount,
		Category: args[0],
		Notes:    flagExpenseNotes,
		Date:     date,
	}
	if err := svc.Ledger().Append(e); err != nil {
		return err
	}

	fmt.Printf("\n  Logged %s  %s  (%s)\n\n", cli.FormatCurrency(amount), args[0], e.ID)
	return nil
}

func runExpenseList(_ *cobra.Command, _ []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	l := svc.Ledger()
	var expenses []model.Expense
	switch {
	case flagExpenseFrom != "" || flagExpenseTo != "":
		from := flagExpenseFrom
		if from == "" {
			from = "0000-00-00"
		}
		to := flagExpenseTo
		if to == "" {
			to = "9999-99-99"
		}
		expenses = l.ByDateRange(from, to)
	case flagExpenseCategory != "":
		expenses = l.ByCategory(flagExpenseCategory)
	default:
		expenses = l.All()
	}

	if flagExpenseCategory != "" && (flagExpenseFrom != "" || flagExpenseTo != "") {
		var kept []model.Expense
		for _, e := range expenses {
			if e.Category == flagExpenseCategory {
				kept = append(kept, e)
			}
		}
		expenses = kept
	}

	if len(expenses) == 0 {
		fmt.Println("\n  No expenses found.")
		return nil
	}

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		recurring := ""
		if e.IsRecurring {
			recurring = "↻"
		}
		rows = append(rows, []string{
			e.Date, e.Category, cli.FormatCurrency(e.Amount), recurring, e.Notes, e.ID,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Category", "Amount", "", "Notes", "ID"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Total: %s across %d expenses\n\n",
		cli.FormatCurrency(ledger.TotalOf(expenses)), len(expenses))
	return nil
}

func runExpenseDelete(_ *cobra.Command, args []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.Ledger().Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("\n  Deleted expense %s\n\n", args[0])
	return nil
}

func runExpenseUpdate(_ *cobra.Command, args []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	amount, err := model.ParseAmount(args[1])
	if err != nil {
		return fmt.Errorf("amount %q: %w", args[1], err)
	}

	l := svc.Ledger()
	for _, e := range l.All() {
		if e.ID != args[0] {
			continue
		}
		e.Amount = amount
		if flagExpenseNotes != "" {
			e.Notes = flagExpenseNotes
		}
		if err := l.Update(e); err != nil {
			return err
		}
		fmt.Printf("\n  Updated %s to %s\n\n", e.ID, cli.FormatCurrency(amount))
		return nil
	}
	return fmt.Errorf("expense %q not found", args[0])
}
