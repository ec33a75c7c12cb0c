package ledger

import (
	"strings"

	"pennyquest/internal/model"
)

// AddRecurring persists a new recurring expense template.
func (l *Ledger) AddRecurring(r model.RecurringExpense) error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Category) == "" {
		return model.ErrEmptyCategory
	}
	if r.Amount < 0 {
		return model.ErrInvalidAmount
	}
	recurring := append(l.gw.RecurringExpenses(), r)
	return l.gw.SaveRecurringExpenses(recurring)
}

// Recurring returns all recurring expense templates. When activeOnly is set,
// disabled templates are skipped.
func (l *Ledger) Recurring(activeOnly bool) []model.RecurringExpense {
	all := l.gw.RecurringExpenses()
	if !activeOnly {
		return all
	}
	var out []model.RecurringExpense
	for _, r := range all {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out
}
