// Package ledger implements the append-only expense collection: filtering,
// aggregation, weekly goal math, and recurring expense templates.
package ledger

import (
	"fmt"
	"sort"
	"strings"

	"pennyquest/internal/model"
	"pennyquest/internal/store"
)

// Ledger owns the persisted expense collections. Every mutation persists the
// full updated collection through the gateway; reads never mutate.
type Ledger struct {
	gw *store.Gateway
}

// New returns a ledger over the given gateway.
func New(gw *store.Gateway) *Ledger {
	return &Ledger{gw: gw}
}

// Append adds an expense and persists the updated collection.
func (l *Ledger) Append(e model.Expense) error {
	if strings.TrimSpace(e.Category) == "" {
		return model.ErrEmptyCategory
	}
	if e.Amount < 0 {
		return model.ErrInvalidAmount
	}
	expenses := append(l.gw.Expenses(), e)
	return l.gw.SaveExpenses(expenses)
}

// All returns every persisted expense, oldest first.
func (l *Ledger) All() []model.Expense {
	return l.gw.Expenses()
}

// Update replaces the expense with the same ID. Unknown IDs are an error so a
// stale caller cannot silently resurrect a deleted record.
func (l *Ledger) Update(e model.Expense) error {
	expenses := l.gw.Expenses()
	for i := range expenses {
		if expenses[i].ID == e.ID {
			expenses[i] = e
			return l.gw.SaveExpenses(expenses)
		}
	}
	return fmt.Errorf("expense %q not found", e.ID)
}

// Delete removes the expense with the given ID.
func (l *Ledger) Delete(id string) error {
	expenses := l.gw.Expenses()
	kept := expenses[:0]
	found := false
	for _, e := range expenses {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return fmt.Errorf("expense %q not found", id)
	}
	return l.gw.SaveExpenses(kept)
}

// ByDateRange returns expenses dated within [start, end], both inclusive.
// Date keys compare correctly as strings.
func (l *Ledger) ByDateRange(start, end string) []model.Expense {
	return filter(l.gw.Expenses(), func(e model.Expense) bool {
		return e.Date >= start && e.Date <= end
	})
}

// ByCategory returns expenses with the given category label.
func (l *Ledger) ByCategory(category string) []model.Expense {
	return filter(l.gw.Expenses(), func(e model.Expense) bool {
		return e.Category == category
	})
}

func filter(expenses []model.Expense, keep func(model.Expense) bool) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// TotalOf sums the amounts in a list of expenses.
func TotalOf(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// CategoryTotal is one row of a per-category spend breakdown.
type CategoryTotal struct {
	Category string
	Total    float64
}

// TopCategories groups expenses by category, sums amounts, and returns the n
// largest, descending by total. Ties keep first-encountered category order.
func TopCategories(expenses []model.Expense, n int) []CategoryTotal {
	totals := make(map[string]float64)
	var order []string
	for _, e := range expenses {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryTotal{Category: cat, Total: totals[cat]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})

	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
