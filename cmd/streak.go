package cmd

import (
	"fmt"

	"pennyquest/internal/cli"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show streak and check-in stats",
	RunE:  runStreak,
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(_ *cobra.Command, _ []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	stats := svc.Stats()

	fmt.Println()
	fmt.Println(cli.RenderTitle("STREAK"))
	fmt.Println()

	last := stats.LastCheckInDate
	if last == "" {
		last = "never"
	} else {
		last = cli.FormatDateKey(last)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Current Streak", cli.FormatStreak(stats.CurrentStreak)},
			{"Longest Streak", fmt.Sprintf("%d days", stats.LongestStreak)},
			{"Total Check-ins", cli.FormatNumber(int64(stats.TotalCheckIns))},
			{"Last Check-in", last},
		},
	}))
	fmt.Println()
	return nil
}
