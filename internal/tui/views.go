package tui

import (
	"fmt"
	"sort"
	"strings"

	"pennyquest/internal/cli"
	"pennyquest/internal/dates"
	"pennyquest/internal/progression"
	"pennyquest/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverview() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	todoStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  Hello, %s — %s\n\n", a.user.Name, cli.FormatDateKey(a.status.Date)))

	mark := func(done bool, label string) string {
		if done {
			return doneStyle.Render("  ✓ " + label + " complete")
		}
		return todoStyle.Render("  ○ " + label + " pending")
	}
	b.WriteString(mark(a.status.MorningDone, "Morning quest") + "\n")
	b.WriteString(mark(a.status.EveningDone, "Evening quest") + "\n\n")

	row := func(label, value string) {
		b.WriteString("  " + labelStyle.Render(fmt.Sprintf("%-16s", label)) + valueStyle.Render(value) + "\n")
	}
	row("Streak", cli.FormatStreak(a.status.Stats.CurrentStreak))
	row("Longest", fmt.Sprintf("%d days", a.status.Stats.LongestStreak))
	row("Check-ins", cli.FormatNumber(int64(a.status.Stats.TotalCheckIns)))
	row("Week spend", cli.FormatCurrency(a.week.Spent))
	if a.week.Goal > 0 {
		row("Weekly goal", cli.FormatCurrency(a.week.Goal))
		b.WriteString("  " + cli.RenderGoalBar(a.week.Progress, a.week.OverBudget, 30) + "\n")
	}
	return b.String()
}

func (a App) renderExpenses() string {
	if len(a.expenses) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("  No expenses yet. Press e to log tonight's spending.")
	}

	// Newest first, most recent 15
	expenses := make([]expenseRow, 0, len(a.expenses))
	for _, e := range a.expenses {
		expenses = append(expenses, expenseRow{e.Date, e.Category, e.Amount, e.Notes})
	}
	sort.SliceStable(expenses, func(i, j int) bool { return expenses[i].date > expenses[j].date })
	if len(expenses) > 15 {
		expenses = expenses[:15]
	}

	table := cli.Table{
		Headers: []string{"Date", "Category", "Amount", "Notes"},
		Rows:    make([][]string, 0, len(expenses)),
	}
	for _, e := range expenses {
		table.Rows = append(table.Rows, []string{e.date, e.category, cli.FormatCurrency(e.amount), e.notes})
	}
	return cli.RenderTable(table)
}

type expenseRow struct {
	date     string
	category string
	amount   float64
	notes    string
}

func (a App) renderProgress() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  Week of %s – %s\n\n", cli.FormatDateKey(a.week.WeekStart), cli.FormatDateKey(a.week.WeekEnd)))
	b.WriteString(fmt.Sprintf("  Spent %s", cli.FormatCurrency(a.week.Spent)))
	if a.week.Goal > 0 {
		b.WriteString(fmt.Sprintf(" of %s (%s)", cli.FormatCurrency(a.week.Goal), cli.FormatPercent(a.week.Progress)))
	}
	b.WriteString("\n\n")
	if a.week.Goal > 0 {
		b.WriteString("  " + cli.RenderGoalBar(a.week.Progress, a.week.OverBudget, 40) + "\n\n")
	}

	days := make([]string, 7)
	for i := range days {
		days[i] = cli.FormatDayOfWeek(i)
	}
	b.WriteString("  " + labelStyle.Render(strings.Join(days, " ")) + "\n")
	b.WriteString("  " + cli.RenderSparkline(a.week.ByDay[:]) + "\n\n")

	if len(a.week.Top) > 0 {
		maxTotal := a.week.Top[0].Total
		for _, ct := range a.week.Top {
			b.WriteString(fmt.Sprintf("  %-22s %10s  %s\n",
				ct.Category, cli.FormatCurrency(ct.Total), cli.RenderCategoryBar(ct.Total, maxTotal, 20)))
		}
	}
	return b.String()
}

func (a App) renderBadges() string {
	t := theme.Active
	unlockedStyle := lipgloss.NewStyle().Foreground(t.Yellow)
	lockedStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	have := make(map[string]bool, len(a.status.Stats.Badges))
	var b strings.Builder
	for _, badge := range a.status.Stats.Badges {
		have[badge.ID] = true
		b.WriteString("  " + unlockedStyle.Render(badge.Icon+" "+badge.Name))
		b.WriteString(descStyle.Render(fmt.Sprintf("  — %s (unlocked %s)\n",
			badge.Description, badge.UnlockedAt.Format(dates.Layout))))
	}
	for _, badge := range progression.Rules() {
		if have[badge.ID] {
			continue
		}
		b.WriteString("  " + lockedStyle.Render("🔒 "+badge.Name+"  — "+badge.Description) + "\n")
	}
	if b.Len() == 0 {
		return lockedStyle.Render("  No badges defined.")
	}
	return b.String()
}
