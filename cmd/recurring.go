package cmd

import (
	"fmt"

	"pennyquest/internal/cli"
	"pennyquest/internal/dates"
	"pennyquest/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagRecurringFreq   string
	flagRecurringDue    string
	flagRecurringAll    bool
	flagRecurringPaused bool
)

var recurringCmd = &cobra.Command{
	Use:   "recurring",
	Short: "Manage recurring bills",
}

var recurringAddCmd = &cobra.Command{
	Use:   "add <name> <category> <amount>",
	Short: "Add a recurring bill",
	Args:  cobra.ExactArgs(3),
	RunE:  runRecurringAdd,
}

var recurringListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recurring bills",
	RunE:  runRecurringList,
}

func init() {
	recurringAddCmd.Flags().StringVar(&flagRecurringFreq, "every", "monthly", "Frequency: daily, weekly, or monthly")
	recurringAddCmd.Flags().StringVar(&flagRecurringDue, "due", "", "Next due date YYYY-MM-DD (default today)")
	recurringAddCmd.Flags().BoolVar(&flagRecurringPaused, "paused", false, "Create inactive")
	recurringListCmd.Flags().BoolVar(&flagRecurringAll, "all", false, "Include inactive bills")

	recurringCmd.AddCommand(recurringAddCmd, recurringListCmd)
	rootCmd.AddCommand(recurringCmd)
}

func runRecurringAdd(_ *cobra.Command, args []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	amount, err := model.ParseAmount(args[2])
	if err != nil {
		return fmt.Errorf("amount %q: %w", args[2], err)
	}

	var freq model.Frequency
	switch model.Frequency(flagRecurringFreq) {
	case model.Daily, model.Weekly, model.Monthly:
		freq = model.Frequency(flagRecurringFreq)
	default:
		return fmt.Errorf("unknown frequency %q, want daily, weekly, or monthly", flagRecurringFreq)
	}

	due := flagRecurringDue
	if due == "" {
		due = dates.Today()
	} else if _, err := dates.Parse(due); err != nil {
		return err
	}

	r := model.RecurringExpense{
		ID:        uuid.NewString(),
		Name:      args[0],
		Amount:    amount,
		Category:  args[1],
		Frequency: freq,
		NextDue:   due,
		IsActive:  !flagRecurringPaused,
	}
	if err := svc.Ledger().AddRecurring(r); err != nil {
		return err
	}

	fmt.Printf("\n  Added %s  %s %s (%s)\n\n", r.Name, cli.FormatCurrency(amount), freq, r.ID)
	return nil
}

func runRecurringList(_ *cobra.Command, _ []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	recurring := svc.Ledger().Recurring(!flagRecurringAll)
	if len(recurring) == 0 {
		fmt.Println("\n  No recurring bills.")
		return nil
	}

	rows := make([][]string, 0, len(recurring))
	for _, r := range recurring {
		status := "active"
		if !r.IsActive {
			status = "paused"
		}
		rows = append(rows, []string{
			r.Name, r.Category, cli.FormatCurrency(r.Amount),
			string(r.Frequency), r.NextDue, status,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Category", "Amount", "Every", "Next Due", "Status"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
