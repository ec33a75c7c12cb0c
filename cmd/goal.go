package cmd

import (
	"fmt"

	"pennyquest/internal/cli"
	"pennyquest/internal/model"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show the weekly spending goal",
	RunE:  runGoalShow,
}

var goalSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Set the weekly spending goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalSet,
}

func init() {
	goalCmd.AddCommand(goalSetCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalShow(_ *cobra.Command, _ []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	stats := svc.Stats()
	if stats.WeeklyGoal == 0 {
		fmt.Println("\n  No weekly goal set. Set one with `pennyquest goal set 250`.")
		fmt.Println()
		return nil
	}

	fmt.Printf("\n  Weekly goal: %s\n", cli.FormatCurrency(stats.WeeklyGoal))
	if week, err := svc.Week(); err == nil {
		fmt.Printf("  This week:   %s  %s\n",
			cli.FormatCurrency(week.Spent),
			cli.RenderGoalBar(week.Progress, week.OverBudget, 30))
	}
	fmt.Println()
	return nil
}

func runGoalSet(_ *cobra.Command, args []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	goal, err := model.ParseAmount(args[0])
	if err != nil {
		return fmt.Errorf("goal %q: %w", args[0], err)
	}

	stats, err := svc.SetWeeklyGoal(goal)
	if err != nil {
		// The prior goal is still the truth; tell the user and let them retry.
		return fmt.Errorf("goal not saved: %w", err)
	}

	fmt.Printf("\n  Weekly goal set to %s\n\n", cli.FormatCurrency(stats.WeeklyGoal))
	return nil
}
