package ledger

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"pennyquest/internal/model"
	"pennyquest/internal/store"

	"github.com/rs/zerolog"
)

func testLedger(t *testing.T) (*Ledger, *store.MemStore) {
	t.Helper()
	kv := store.NewMemStore()
	return New(store.NewGateway(kv, zerolog.Nop())), kv
}

func expense(id, date, category string, amount float64) model.Expense {
	return model.Expense{ID: id, Amount: amount, Category: category, Date: date}
}

func TestAppendAndAll(t *testing.T) {
	l, _ := testLedger(t)

	e1 := expense("e1", "2024-01-01", "Food & Dining", 10)
	e2 := expense("e2", "2024-01-02", "Shopping", 25)
	for _, e := range []model.Expense{e1, e2} {
		if err := l.Append(e); err != nil {
			t.Fatalf("Append(%s): %v", e.ID, err)
		}
	}

	got := l.All()
	if !reflect.DeepEqual(got, []model.Expense{e1, e2}) {
		t.Errorf("All() = %+v, want appended order preserved", got)
	}
}

func TestAppendRejectsBadInput(t *testing.T) {
	l, _ := testLedger(t)

	if err := l.Append(expense("e1", "2024-01-01", "", 10)); !errors.Is(err, model.ErrEmptyCategory) {
		t.Errorf("Append empty category err = %v, want ErrEmptyCategory", err)
	}
	if err := l.Append(expense("e1", "2024-01-01", "Food & Dining", -5)); !errors.Is(err, model.ErrInvalidAmount) {
		t.Errorf("Append negative amount err = %v, want ErrInvalidAmount", err)
	}
	if got := l.All(); len(got) != 0 {
		t.Errorf("rejected input reached storage: %+v", got)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	l, _ := testLedger(t)

	e := expense("e1", "2024-01-01", "Food & Dining", 10)
	if err := l.Append(e); err != nil {
		t.Fatalf("Append: %v", err)
	}

	e.Amount = 12.5
	e.Notes = "corrected"
	if err := l.Update(e); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := l.All()[0]; got.Amount != 12.5 || got.Notes != "corrected" {
		t.Errorf("updated expense = %+v", got)
	}

	if err := l.Update(expense("ghost", "2024-01-01", "Food & Dining", 1)); err == nil {
		t.Error("Update of unknown id succeeded, want error")
	}

	if err := l.Delete("e1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := l.All(); len(got) != 0 {
		t.Errorf("All() after delete = %+v, want empty", got)
	}
	if err := l.Delete("e1"); err == nil {
		t.Error("Delete of unknown id succeeded, want error")
	}
}

func TestByDateRangeBoundaries(t *testing.T) {
	l, _ := testLedger(t)

	// Week of Wednesday 2024-03-13 runs Sunday 03-10 through Saturday 03-16.
	onStart := expense("e1", "2024-03-10", "Food & Dining", 10)
	dayBefore := expense("e2", "2024-03-09", "Food & Dining", 99)
	midweek := expense("e3", "2024-03-13", "Shopping", 20)
	for _, e := range []model.Expense{onStart, dayBefore, midweek} {
		if err := l.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got := l.ByDateRange("2024-03-10", "2024-03-16")
	if !reflect.DeepEqual(got, []model.Expense{onStart, midweek}) {
		t.Errorf("ByDateRange = %+v, want week-start inclusive, prior day excluded", got)
	}
}

func TestByCategory(t *testing.T) {
	l, _ := testLedger(t)

	food := expense("e1", "2024-01-01", "Food & Dining", 10)
	shop := expense("e2", "2024-01-01", "Shopping", 20)
	for _, e := range []model.Expense{food, shop} {
		if err := l.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	if got := l.ByCategory("Food & Dining"); !reflect.DeepEqual(got, []model.Expense{food}) {
		t.Errorf("ByCategory = %+v, want only food", got)
	}
}

func TestTotalOf(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "2024-01-01", "A", 10.25),
		expense("e2", "2024-01-01", "B", 4.75),
	}
	if got := TotalOf(expenses); math.Abs(got-15) > 1e-9 {
		t.Errorf("TotalOf = %v, want 15", got)
	}
	if got := TotalOf(nil); got != 0 {
		t.Errorf("TotalOf(nil) = %v, want 0", got)
	}
}

func TestTopCategories(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "2024-01-01", "A", 10),
		expense("e2", "2024-01-01", "B", 20),
		expense("e3", "2024-01-01", "A", 5),
	}

	got := TopCategories(expenses, 2)
	want := []CategoryTotal{{"B", 20}, {"A", 15}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopCategories = %+v, want %+v", got, want)
	}
}

func TestTopCategoriesTieKeepsFirstEncountered(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "2024-01-01", "Transportation", 10),
		expense("e2", "2024-01-01", "Entertainment", 10),
		expense("e3", "2024-01-01", "Healthcare", 30),
	}

	got := TopCategories(expenses, 3)
	want := []CategoryTotal{{"Healthcare", 30}, {"Transportation", 10}, {"Entertainment", 10}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopCategories tie order = %+v, want %+v", got, want)
	}
}

func TestTopCategoriesNLargerThanGroups(t *testing.T) {
	got := TopCategories([]model.Expense{expense("e1", "2024-01-01", "A", 1)}, 10)
	if len(got) != 1 {
		t.Errorf("TopCategories with oversized n = %+v, want 1 entry", got)
	}
}

func TestWeekOf(t *testing.T) {
	l, _ := testLedger(t)

	for _, e := range []model.Expense{
		expense("e1", "2024-03-10", "Food & Dining", 50),  // Sunday, week start
		expense("e2", "2024-03-13", "Shopping", 100),      // Wednesday
		expense("e3", "2024-03-09", "Food & Dining", 999), // prior Saturday, excluded
	} {
		if err := l.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	s, err := l.WeekOf("2024-03-13", 200)
	if err != nil {
		t.Fatalf("WeekOf: %v", err)
	}
	if s.WeekStart != "2024-03-10" || s.WeekEnd != "2024-03-16" {
		t.Errorf("week bounds = %s..%s", s.WeekStart, s.WeekEnd)
	}
	if s.Spent != 150 {
		t.Errorf("Spent = %v, want 150", s.Spent)
	}
	if math.Abs(s.Progress-0.75) > 1e-9 {
		t.Errorf("Progress = %v, want 0.75", s.Progress)
	}
	if s.OverBudget {
		t.Error("OverBudget = true under goal")
	}
	if s.ByDay[0] != 50 || s.ByDay[3] != 100 {
		t.Errorf("ByDay = %v", s.ByDay)
	}
}

func TestWeekOfGoalEdges(t *testing.T) {
	l, _ := testLedger(t)
	if err := l.Append(expense("e1", "2024-03-13", "Shopping", 300)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	// No goal set: progress pinned at zero, never over budget.
	s, err := l.WeekOf("2024-03-13", 0)
	if err != nil {
		t.Fatalf("WeekOf: %v", err)
	}
	if s.Progress != 0 || s.OverBudget {
		t.Errorf("zero goal: progress=%v over=%v, want 0/false", s.Progress, s.OverBudget)
	}

	// Over goal: progress clamps to 1 and over-budget trips.
	s, err = l.WeekOf("2024-03-13", 200)
	if err != nil {
		t.Fatalf("WeekOf: %v", err)
	}
	if s.Progress != 1 || !s.OverBudget {
		t.Errorf("over goal: progress=%v over=%v, want 1/true", s.Progress, s.OverBudget)
	}
}

func TestRecurring(t *testing.T) {
	l, _ := testLedger(t)

	active := model.RecurringExpense{ID: "r1", Name: "Netflix", Amount: 15.99, Category: "Entertainment", Frequency: model.Monthly, NextDue: "2024-02-01", IsActive: true}
	inactive := model.RecurringExpense{ID: "r2", Name: "Gym", Amount: 40, Category: "Personal Care", Frequency: model.Monthly, NextDue: "2024-02-15"}
	for _, r := range []model.RecurringExpense{active, inactive} {
		if err := l.AddRecurring(r); err != nil {
			t.Fatalf("AddRecurring(%s): %v", r.ID, err)
		}
	}

	if got := l.Recurring(false); len(got) != 2 {
		t.Errorf("Recurring(false) = %+v, want both", got)
	}
	if got := l.Recurring(true); !reflect.DeepEqual(got, []model.RecurringExpense{active}) {
		t.Errorf("Recurring(true) = %+v, want only active", got)
	}
}
