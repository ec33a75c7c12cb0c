// Package checkin records completed quests, one per (date, type) pair.
package checkin

import (
	"pennyquest/internal/dates"
	"pennyquest/internal/model"
	"pennyquest/internal/store"
)

// Tracker owns the persisted check-in collection.
type Tracker struct {
	gw *store.Gateway
}

// New returns a tracker over the given gateway.
func New(gw *store.Gateway) *Tracker {
	return &Tracker{gw: gw}
}

// Upsert stores a check-in. An existing record for the same (date, type) is
// replaced entirely; otherwise the check-in is appended. After Upsert exactly
// one record exists for that pair.
func (t *Tracker) Upsert(c model.CheckIn) error {
	checkIns := t.gw.CheckIns()
	for i := range checkIns {
		if checkIns[i].Date == c.Date && checkIns[i].Type == c.Type {
			checkIns[i] = c
			return t.gw.SaveCheckIns(checkIns)
		}
	}
	return t.gw.SaveCheckIns(append(checkIns, c))
}

// Find returns the check-in for the given date and type.
func (t *Tracker) Find(date string, typ model.CheckInType) (model.CheckIn, bool) {
	for _, c := range t.gw.CheckIns() {
		if c.Date == date && c.Type == typ {
			return c, true
		}
	}
	return model.CheckIn{}, false
}

// FindToday returns today's check-in of the given type, if any.
func (t *Tracker) FindToday(typ model.CheckInType) (model.CheckIn, bool) {
	return t.Find(dates.Today(), typ)
}

// All returns every persisted check-in.
func (t *Tracker) All() []model.CheckIn {
	return t.gw.CheckIns()
}
