package cmd

import (
	"fmt"
	"strings"

	"pennyquest/internal/cli"
	"pennyquest/internal/model"
	"pennyquest/internal/quest"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagMorningSet []string

var morningCmd = &cobra.Command{
	Use:   "morning",
	Short: "Complete the morning quest (recurring bills)",
	Long:  "Log today's recurring bills and utilities. Run with no flags for the interactive form, or pass --set \"Electricity Bill=80\" one or more times.",
	RunE:  runMorning,
}

func init() {
	morningCmd.Flags().StringArrayVar(&flagMorningSet, "set", nil, `Utility amount as "<label>=<amount>" (repeatable)`)
	rootCmd.AddCommand(morningCmd)
}

func runMorning(_ *cobra.Command, _ []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	if done, _ := svc.Tracker().FindToday(model.Morning); done.Completed {
		fmt.Println("\n  Morning quest already complete — running again replaces today's entry.")
	}

	utilities := make(map[string]float64)
	if len(flagMorningSet) > 0 {
		if err := parseSetFlags(flagMorningSet, utilities); err != nil {
			return err
		}
	} else {
		if err := morningForm(utilities); err != nil {
			return err
		}
	}

	prev := svc.Stats()
	stats, err := svc.CompleteMorning(utilities)
	if err != nil {
		return fmt.Errorf("morning quest failed, try again: %w", err)
	}

	printQuestResult(prev, stats)
	return nil
}

// morningForm prompts for each utility amount. Blank means not paid today.
func morningForm(utilities map[string]float64) error {
	inputs := make([]string, len(quest.MorningUtilities))
	fields := make([]huh.Field, 0, len(quest.MorningUtilities))
	for i, utility := range quest.MorningUtilities {
		fields = append(fields, huh.NewInput().
			Title(utility).
			Placeholder("0.00").
			Validate(validateOptionalAmount).
			Value(&inputs[i]))
	}

	form := huh.NewForm(huh.NewGroup(fields...).Title("Morning Quest — bills paid today"))
	if err := form.Run(); err != nil {
		return err
	}

	for i, utility := range quest.MorningUtilities {
		if strings.TrimSpace(inputs[i]) == "" {
			continue
		}
		amount, err := model.ParseAmount(inputs[i])
		if err != nil {
			return fmt.Errorf("%s: %w", utility, err)
		}
		utilities[utility] = amount
	}
	return nil
}

func validateOptionalAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := model.ParseAmount(s); err != nil {
		return fmt.Errorf("enter a positive amount like 12.50")
	}
	return nil
}

func parseSetFlags(pairs []string, utilities map[string]float64) error {
	for _, pair := range pairs {
		label, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("bad --set %q, want \"<label>=<amount>\"", pair)
		}
		amount, err := model.ParseAmount(value)
		if err != nil {
			return fmt.Errorf("bad amount in --set %q: %w", pair, err)
		}
		utilities[strings.TrimSpace(label)] = amount
	}
	return nil
}

func printQuestResult(prev, stats model.UserStats) {
	fmt.Println()
	fmt.Printf("  Quest complete! %s\n", cli.FormatStreak(stats.CurrentStreak))
	if len(stats.Badges) > len(prev.Badges) {
		for _, b := range stats.Badges[len(prev.Badges):] {
			fmt.Printf("  %s  New badge: %s — %s\n", b.Icon, b.Name, b.Description)
		}
	}
	fmt.Println()
}
