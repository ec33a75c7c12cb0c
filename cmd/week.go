package cmd

import (
	"fmt"

	"pennyquest/internal/cli"

	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Weekly spending summary against your goal",
	RunE:  runWeek,
}

func init() {
	rootCmd.AddCommand(weekCmd)
}

func runWeek(_ *cobra.Command, _ []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	week, err := svc.Week()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("WEEK  %s — %s",
		cli.FormatDateKey(week.WeekStart), cli.FormatDateKey(week.WeekEnd))))
	fmt.Println()

	fmt.Printf("  Spent %s", cli.FormatCurrency(week.Spent))
	if week.Goal > 0 {
		fmt.Printf(" of %s goal\n  %s %s\n",
			cli.FormatCurrency(week.Goal),
			cli.RenderGoalBar(week.Progress, week.OverBudget, 30),
			cli.FormatPercent(week.Progress))
		if week.OverBudget {
			fmt.Printf("  %s over budget\n", cli.FormatCurrency(week.Spent-week.Goal))
		}
	} else {
		fmt.Println("  (no weekly goal set — try `pennyquest goal set`)")
	}

	// Day-by-day sparkline, Sunday through Saturday.
	daily := make([]float64, 7)
	copy(daily, week.ByDay[:])
	fmt.Printf("\n  Sun..Sat  %s\n", cli.RenderSparkline(daily))

	if len(week.Top) > 0 {
		fmt.Println()
		maxTotal := week.Top[0].Total
		rows := make([][]string, 0, len(week.Top))
		for _, ct := range week.Top {
			rows = append(rows, []string{
				ct.Category,
				cli.FormatCurrency(ct.Total),
				cli.RenderCategoryBar(ct.Total, maxTotal, 20),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Top Categories",
			Headers: []string{"Category", "Spent", ""},
			Rows:    rows,
		}))
	}

	fmt.Println()
	return nil
}
