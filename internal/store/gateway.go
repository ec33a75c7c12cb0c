package store

import (
	"encoding/json"
	"fmt"

	"pennyquest/internal/model"

	"github.com/rs/zerolog"
)

// Storage keys for the four persisted collections.
const (
	KeyExpenses          = "expenses"
	KeyCheckIns          = "checkIns"
	KeyUserStats         = "userStats"
	KeyRecurringExpenses = "recurringExpenses"
)

// Gateway provides typed reads and writes over a KeyValueStore. Each
// collection is one JSON document replaced wholesale on every save. Absent or
// corrupt stored data never surfaces as an error: reads fall back to the
// collection's empty default and log a warning.
type Gateway struct {
	kv  KeyValueStore
	log zerolog.Logger
}

// NewGateway wraps a KeyValueStore.
func NewGateway(kv KeyValueStore, log zerolog.Logger) *Gateway {
	return &Gateway{kv: kv, log: log.With().Str("component", "store").Logger()}
}

// Expenses returns all persisted expenses, oldest first.
func (g *Gateway) Expenses() []model.Expense {
	var out []model.Expense
	if !g.read(KeyExpenses, &out) || out == nil {
		return []model.Expense{}
	}
	return out
}

// SaveExpenses replaces the expenses collection.
func (g *Gateway) SaveExpenses(expenses []model.Expense) error {
	return g.write(KeyExpenses, expenses)
}

// CheckIns returns all persisted check-ins.
func (g *Gateway) CheckIns() []model.CheckIn {
	var out []model.CheckIn
	if !g.read(KeyCheckIns, &out) || out == nil {
		return []model.CheckIn{}
	}
	return out
}

// SaveCheckIns replaces the check-ins collection.
func (g *Gateway) SaveCheckIns(checkIns []model.CheckIn) error {
	return g.write(KeyCheckIns, checkIns)
}

// UserStats returns the persisted progression state, or the zero-state when
// nothing has been stored yet.
func (g *Gateway) UserStats() model.UserStats {
	var out model.UserStats
	if !g.read(KeyUserStats, &out) {
		return model.NewUserStats()
	}
	if out.Badges == nil {
		out.Badges = []model.Badge{}
	}
	return out
}

// SaveUserStats replaces the progression state.
func (g *Gateway) SaveUserStats(stats model.UserStats) error {
	return g.write(KeyUserStats, stats)
}

// RecurringExpenses returns all persisted recurring expense templates.
func (g *Gateway) RecurringExpenses() []model.RecurringExpense {
	var out []model.RecurringExpense
	if !g.read(KeyRecurringExpenses, &out) || out == nil {
		return []model.RecurringExpense{}
	}
	return out
}

// SaveRecurringExpenses replaces the recurring expenses collection.
func (g *Gateway) SaveRecurringExpenses(recurring []model.RecurringExpense) error {
	return g.write(KeyRecurringExpenses, recurring)
}

// read unmarshals the stored document for key into out. Returns false when the
// key is absent or the stored data is unreadable; out is left at its default.
func (g *Gateway) read(key string, out any) bool {
	data, ok, err := g.kv.Get(key)
	if err != nil {
		g.log.Warn().Err(err).Str("key", key).Msg("read failed, using empty default")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		g.log.Warn().Err(err).Str("key", key).Msg("stored data corrupt, using empty default")
		return false
	}
	return true
}

// write marshals value and replaces the document for key. The value is fully
// marshaled before the store is touched, so a failed write leaves the prior
// persisted state intact.
func (g *Gateway) write(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	if err := g.kv.Set(key, data); err != nil {
		return fmt.Errorf("saving %q: %w", key, err)
	}
	return nil
}
