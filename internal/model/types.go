// Package model defines domain types for pennyquest expenses, check-ins, and stats.
package model

import "time"

// CheckInType distinguishes the two daily quests.
type CheckInType string

const (
	Morning CheckInType = "morning"
	Evening CheckInType = "evening"
)

// BadgeType categorizes how a badge was earned.
type BadgeType string

const (
	BadgeStreak      BadgeType = "streak"
	BadgeSpending    BadgeType = "spending"
	BadgeConsistency BadgeType = "consistency"
)

// Frequency is how often a recurring expense comes due.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// Expense is a single logged expense. Immutable once appended; changes go
// through explicit update/delete by ID.
type Expense struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Notes       string  `json:"notes"`
	Date        string  `json:"date"` // YYYY-MM-DD
	IsRecurring bool    `json:"isRecurring"`
}

// CheckIn records one completed quest. At most one exists per (date, type) pair.
// Questions maps a quest label to the amount the user entered (morning) or a
// completion marker (evening, where the expenses themselves are recorded in
// the ledger).
type CheckIn struct {
	ID        string             `json:"id"`
	Date      string             `json:"date"`
	Type      CheckInType        `json:"type"`
	Questions map[string]float64 `json:"questions"`
	Completed bool               `json:"completed"`
}

// Badge is an unlocked achievement. The same ID is never unlocked twice.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
	Type        BadgeType `json:"type"`
}

// UserStats is the singleton progression state. It is mutated only by the
// progression engine and by explicit weekly-goal edits.
type UserStats struct {
	CurrentStreak   int     `json:"currentStreak"`
	LongestStreak   int     `json:"longestStreak"`
	TotalCheckIns   int     `json:"totalCheckIns"`
	Badges          []Badge `json:"badges"`
	WeeklyGoal      float64 `json:"weeklyGoal"`
	LastCheckInDate string  `json:"lastCheckInDate"` // YYYY-MM-DD, empty if never
}

// NewUserStats returns the zero-state used when nothing is persisted yet.
func NewUserStats() UserStats {
	return UserStats{Badges: []Badge{}}
}

// HasBadge reports whether a badge with the given ID has been unlocked.
func (s UserStats) HasBadge(id string) bool {
	for _, b := range s.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// RecurringExpense is a bill template with a due schedule. Persisted but not
// fed back into ledger aggregation.
type RecurringExpense struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Frequency Frequency `json:"frequency"`
	NextDue   string    `json:"nextDue"`
	IsActive  bool      `json:"isActive"`
}
