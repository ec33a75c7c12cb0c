package ledger

import (
	"pennyquest/internal/dates"
)

// WeeklySummary is the spend-versus-goal view for one Sunday..Saturday week.
type WeeklySummary struct {
	WeekStart  string
	WeekEnd    string
	Spent      float64
	Goal       float64
	Progress   float64 // 0..1, 0 when no goal is set
	OverBudget bool
	Top        []CategoryTotal
	ByDay      [7]float64 // Sunday..Saturday
}

// WeekOf builds the weekly summary for the week containing day.
func (l *Ledger) WeekOf(day string, goal float64) (WeeklySummary, error) {
	start, err := dates.WeekStart(day)
	if err != nil {
		return WeeklySummary{}, err
	}
	end, err := dates.WeekEnd(day)
	if err != nil {
		return WeeklySummary{}, err
	}

	weekly := l.ByDateRange(start, end)
	s := WeeklySummary{
		WeekStart: start,
		WeekEnd:   end,
		Spent:     TotalOf(weekly),
		Goal:      goal,
		Top:       TopCategories(weekly, 3),
	}

	for _, e := range weekly {
		if offset, err := dates.DaysBetween(start, e.Date); err == nil && offset >= 0 && offset < 7 {
			s.ByDay[offset] += e.Amount
		}
	}

	if goal > 0 {
		s.Progress = s.Spent / goal
		if s.Progress > 1 {
			s.Progress = 1
		}
		s.OverBudget = s.Spent > goal
	}
	return s, nil
}
