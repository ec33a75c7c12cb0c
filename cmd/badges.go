package cmd

import (
	"fmt"

	"pennyquest/internal/cli"
	"pennyquest/internal/progression"

	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show unlocked and locked badges",
	RunE:  runBadges,
}

func init() {
	rootCmd.AddCommand(badgesCmd)
}

func runBadges(_ *cobra.Command, _ []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	stats := svc.Stats()

	fmt.Println()
	fmt.Println(cli.RenderTitle("BADGES"))
	fmt.Println()

	if len(stats.Badges) == 0 {
		fmt.Println("  No badges yet — keep tracking your spending daily to earn your first badge.")
	} else {
		rows := make([][]string, 0, len(stats.Badges))
		for _, b := range stats.Badges {
			rows = append(rows, []string{
				b.Icon + " " + b.Name,
				b.Description,
				b.UnlockedAt.Local().Format("Jan 2 2006"),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Unlocked",
			Headers: []string{"Badge", "Description", "Earned"},
			Rows:    rows,
		}))
	}

	var locked [][]string
	for _, b := range progression.Rules() {
		if !stats.HasBadge(b.ID) {
			locked = append(locked, []string{b.Icon + " " + b.Name, b.Description})
		}
	}
	if len(locked) > 0 {
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Still Locked",
			Headers: []string{"Badge", "How to earn"},
			Rows:    locked,
		}))
	}

	fmt.Println()
	return nil
}
