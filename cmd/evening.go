package cmd

import (
	"fmt"
	"strings"

	"pennyquest/internal/model"
	"pennyquest/internal/quest"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagEveningAdd []string

var eveningCmd = &cobra.Command{
	Use:   "evening",
	Short: "Complete the evening quest (today's spending)",
	Long:  "Log what you spent today. Run with no flags for the interactive form, or pass --add \"Food & Dining:22.50:dinner\" one or more times.",
	RunE:  runEvening,
}

func init() {
	eveningCmd.Flags().StringArrayVar(&flagEveningAdd, "add", nil, `Expense as "<category>:<amount>[:<notes>]" (repeatable)`)
	rootCmd.AddCommand(eveningCmd)
}

func runEvening(_ *cobra.Command, _ []string) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	if done, _ := svc.Tracker().FindToday(model.Evening); done.Completed {
		fmt.Println("\n  Evening quest already complete — running again replaces today's entry.")
	}

	var entries []quest.Entry
	if len(flagEveningAdd) > 0 {
		entries, err = parseAddFlags(flagEveningAdd)
	} else {
		entries, err = eveningForm()
	}
	if err != nil {
		return err
	}

	prev := svc.Stats()
	stats, err := svc.CompleteEvening(entries)
	if err != nil {
		return fmt.Errorf("evening quest failed, try again: %w", err)
	}

	printQuestResult(prev, stats)
	return nil
}

// eveningForm collects expense entries one at a time until the user is done.
func eveningForm() ([]quest.Entry, error) {
	var entries []quest.Entry
	for {
		var (
			category = quest.EveningCategories[0]
			amount   string
			notes    string
			more     bool
		)

		options := make([]huh.Option[string], len(quest.EveningCategories))
		for i, c := range quest.EveningCategories {
			options[i] = huh.NewOption(c, c)
		}

		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&category),
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Validate(validateOptionalAmount).
				Value(&amount),
			huh.NewInput().
				Title("Notes").
				Value(&notes),
			huh.NewConfirm().
				Title("Add another expense?").
				Value(&more),
		).Title("Evening Quest — today's spending"))

		if err := form.Run(); err != nil {
			return nil, err
		}

		if strings.TrimSpace(amount) != "" {
			parsed, err := model.ParseAmount(amount)
			if err != nil {
				return nil, err
			}
			entries = append(entries, quest.Entry{Category: category, Amount: parsed, Notes: notes})
		}

		if !more {
			return entries, nil
		}
	}
}

func parseAddFlags(values []string) ([]quest.Entry, error) {
	entries := make([]quest.Entry, 0, len(values))
	for _, value := range values {
		parts := strings.SplitN(value, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("bad --add %q, want \"<category>:<amount>[:<notes>]\"", value)
		}
		amount, err := model.ParseAmount(parts[1])
		if err != nil {
			return nil, fmt.Errorf("bad amount in --add %q: %w", value, err)
		}
		entry := quest.Entry{Category: strings.TrimSpace(parts[0]), Amount: amount}
		if len(parts) == 3 {
			entry.Notes = parts[2]
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
