package checkin

import (
	"testing"

	"pennyquest/internal/dates"
	"pennyquest/internal/model"
	"pennyquest/internal/store"

	"github.com/rs/zerolog"
)

func testTracker(t *testing.T) *Tracker {
	t.Helper()
	return New(store.NewGateway(store.NewMemStore(), zerolog.Nop()))
}

func checkIn(date string, typ model.CheckInType) model.CheckIn {
	return model.CheckIn{
		ID:        date + "-" + string(typ),
		Date:      date,
		Type:      typ,
		Questions: map[string]float64{},
		Completed: true,
	}
}

func TestUpsertAppendsThenReplaces(t *testing.T) {
	tr := testTracker(t)

	first := checkIn("2024-01-01", model.Morning)
	first.Questions = map[string]float64{"Electricity Bill": 80}
	if err := tr.Upsert(first); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	replacement := checkIn("2024-01-01", model.Morning)
	replacement.Questions = map[string]float64{"Electricity Bill": 95, "Water Bill": 30}
	if err := tr.Upsert(replacement); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	all := tr.All()
	if len(all) != 1 {
		t.Fatalf("len(All()) = %d after double upsert, want 1", len(all))
	}
	if all[0].Questions["Electricity Bill"] != 95 {
		t.Errorf("record not replaced: %+v", all[0])
	}
}

func TestUpsertKeysOnDateAndType(t *testing.T) {
	tr := testTracker(t)

	records := []model.CheckIn{
		checkIn("2024-01-01", model.Morning),
		checkIn("2024-01-01", model.Evening),
		checkIn("2024-01-02", model.Morning),
	}
	for _, c := range records {
		if err := tr.Upsert(c); err != nil {
			t.Fatalf("Upsert(%s): %v", c.ID, err)
		}
	}

	if got := len(tr.All()); got != 3 {
		t.Fatalf("len(All()) = %d, want 3 distinct (date, type) pairs", got)
	}

	got, ok := tr.Find("2024-01-01", model.Evening)
	if !ok || got.ID != "2024-01-01-evening" {
		t.Errorf("Find = %+v ok=%v", got, ok)
	}
	if _, ok := tr.Find("2024-01-03", model.Morning); ok {
		t.Error("Find for missing date returned ok")
	}
}

func TestFindToday(t *testing.T) {
	tr := testTracker(t)
	today := dates.Today()

	if _, ok := tr.FindToday(model.Morning); ok {
		t.Fatal("FindToday on empty tracker returned ok")
	}

	if err := tr.Upsert(checkIn(today, model.Morning)); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, ok := tr.FindToday(model.Morning)
	if !ok || got.Date != today {
		t.Errorf("FindToday = %+v ok=%v", got, ok)
	}
	if _, ok := tr.FindToday(model.Evening); ok {
		t.Error("FindToday(evening) returned ok with only a morning record")
	}
}
