// Package quest implements the morning and evening quest flows: completing a
// quest upserts the day's check-in, records the entered expenses, and runs
// the progression engine over the user's stats.
package quest

import (
	"fmt"
	"time"

	"pennyquest/internal/checkin"
	"pennyquest/internal/dates"
	"pennyquest/internal/ledger"
	"pennyquest/internal/model"
	"pennyquest/internal/progression"
	"pennyquest/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MorningUtilities are the recurring-bill prompts of the morning quest.
var MorningUtilities = []string{
	"Rent/Mortgage Payment",
	"Electricity Bill",
	"Gas Bill",
	"Water Bill",
	"Internet/Phone Bill",
	"Insurance Payment",
	"Loan Payment",
	"Subscription Services",
}

// EveningCategories are the spending categories of the evening quest.
var EveningCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Healthcare",
	"Personal Care",
	"Education",
	"Other",
}

// UtilityCategory is the ledger category for morning-quest bills.
const UtilityCategory = "Bills & Utilities"

// Entry is one expense line entered during the evening quest.
type Entry struct {
	Category string
	Amount   float64
	Notes    string
}

// Service coordinates quests across the tracker, ledger, and engine. All
// operations run on the caller's goroutine; callers driving it from a UI must
// disable the triggering control while a completion is in flight.
type Service struct {
	gw      *store.Gateway
	ledger  *ledger.Ledger
	tracker *checkin.Tracker
	log     zerolog.Logger
	now     func() time.Time
}

// NewService builds a quest service over the given gateway.
func NewService(gw *store.Gateway, log zerolog.Logger) *Service {
	return &Service{
		gw:      gw,
		ledger:  ledger.New(gw),
		tracker: checkin.New(gw),
		log:     log.With().Str("component", "quest").Logger(),
		now:     time.Now,
	}
}

// Ledger exposes the expense ledger for read paths and direct expense entry.
func (s *Service) Ledger() *ledger.Ledger { return s.ledger }

// Tracker exposes the check-in tracker for read paths.
func (s *Service) Tracker() *checkin.Tracker { return s.tracker }

// Stats returns the persisted progression state.
func (s *Service) Stats() model.UserStats { return s.gw.UserStats() }

// CompleteMorning records the morning quest: the per-utility amounts become
// the check-in's questions, each non-zero amount is logged as a recurring
// bill expense, and the streak advances.
func (s *Service) CompleteMorning(utilities map[string]float64) (model.UserStats, error) {
	today := dates.Today()
	c := model.CheckIn{
		ID:        today + "-" + string(model.Morning),
		Date:      today,
		Type:      model.Morning,
		Questions: utilities,
		Completed: true,
	}
	if err := s.tracker.Upsert(c); err != nil {
		return s.Stats(), fmt.Errorf("recording morning check-in: %w", err)
	}

	for utility, amount := range utilities {
		if amount <= 0 {
			continue
		}
		e := model.Expense{
			ID:          uuid.NewString(),
			Amount:      amount,
			Category:    UtilityCategory,
			Notes:       utility,
			Date:        today,
			IsRecurring: true,
		}
		if err := s.ledger.Append(e); err != nil {
			return s.Stats(), fmt.Errorf("recording %q: %w", utility, err)
		}
	}

	return s.advance(today)
}

// CompleteEvening records the evening quest: each entry becomes an expense
// and the streak advances. Zero-amount entries are skipped.
func (s *Service) CompleteEvening(entries []Entry) (model.UserStats, error) {
	today := dates.Today()
	c := model.CheckIn{
		ID:        today + "-" + string(model.Evening),
		Date:      today,
		Type:      model.Evening,
		Questions: map[string]float64{},
		Completed: true,
	}
	if err := s.tracker.Upsert(c); err != nil {
		return s.Stats(), fmt.Errorf("recording evening check-in: %w", err)
	}

	for _, entry := range entries {
		if entry.Amount <= 0 {
			continue
		}
		e := model.Expense{
			ID:       uuid.NewString(),
			Amount:   entry.Amount,
			Category: entry.Category,
			Notes:    entry.Notes,
			Date:     today,
		}
		if err := s.ledger.Append(e); err != nil {
			return s.Stats(), fmt.Errorf("recording %q: %w", entry.Category, err)
		}
	}

	return s.advance(today)
}

// advance runs the progression transition once and persists the result. The
// transition itself is pure; on a save failure the persisted stats are
// unchanged and the same advance can be retried from the same pre-state.
func (s *Service) advance(today string) (model.UserStats, error) {
	prev := s.gw.UserStats()
	next := progression.Advance(prev, today, s.now())

	if err := s.gw.SaveUserStats(next); err != nil {
		// In-memory result must not be presented as saved.
		return prev, fmt.Errorf("saving stats: %w", err)
	}

	if len(next.Badges) > len(prev.Badges) {
		for _, b := range next.Badges[len(prev.Badges):] {
			s.log.Info().Str("badge", b.ID).Msg("badge unlocked")
		}
	}
	return next, nil
}

// SetWeeklyGoal validates and persists a new weekly spending goal. On a write
// failure the prior persisted value remains the presented truth.
func (s *Service) SetWeeklyGoal(goal float64) (model.UserStats, error) {
	if goal < 0 {
		return s.Stats(), model.ErrNegativeGoal
	}
	prev := s.gw.UserStats()
	next := prev
	next.WeeklyGoal = goal
	if err := s.gw.SaveUserStats(next); err != nil {
		return prev, fmt.Errorf("saving goal: %w", err)
	}
	return next, nil
}

// Week returns the weekly summary for the week containing today.
func (s *Service) Week() (ledger.WeeklySummary, error) {
	return s.ledger.WeekOf(dates.Today(), s.Stats().WeeklyGoal)
}

// TodayStatus reports which of today's quests are done.
type TodayStatus struct {
	Date        string
	MorningDone bool
	EveningDone bool
	Stats       model.UserStats
}

// Today returns today's quest completion status alongside current stats.
func (s *Service) Today() TodayStatus {
	_, morning := s.tracker.FindToday(model.Morning)
	_, evening := s.tracker.FindToday(model.Evening)
	return TodayStatus{
		Date:        dates.Today(),
		MorningDone: morning,
		EveningDone: evening,
		Stats:       s.Stats(),
	}
}
