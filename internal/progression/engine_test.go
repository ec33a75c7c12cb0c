package progression

import (
	"testing"
	"time"

	"pennyquest/internal/model"
)

var testNow = time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC)

func TestAdvanceFirstCheckInEver(t *testing.T) {
	next := Advance(model.NewUserStats(), "2024-01-01", testNow)

	if next.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1 (first check-in counts as day one)", next.CurrentStreak)
	}
	if next.LongestStreak != 1 {
		t.Errorf("LongestStreak = %d, want 1", next.LongestStreak)
	}
	if next.TotalCheckIns != 1 {
		t.Errorf("TotalCheckIns = %d, want 1", next.TotalCheckIns)
	}
	if next.LastCheckInDate != "2024-01-01" {
		t.Errorf("LastCheckInDate = %q", next.LastCheckInDate)
	}
}

func TestAdvanceConsecutiveDayIncrements(t *testing.T) {
	stats := model.UserStats{CurrentStreak: 1, LongestStreak: 1, TotalCheckIns: 1, LastCheckInDate: "2024-01-01"}

	next := Advance(stats, "2024-01-02", testNow)
	if next.CurrentStreak != 2 || next.LongestStreak != 2 {
		t.Errorf("streaks = %d/%d, want 2/2", next.CurrentStreak, next.LongestStreak)
	}

	// Gap of three days resets to 1 but the high-water mark stays.
	later := Advance(next, "2024-01-05", testNow)
	if later.CurrentStreak != 1 || later.LongestStreak != 2 {
		t.Errorf("after gap: streaks = %d/%d, want 1/2", later.CurrentStreak, later.LongestStreak)
	}
}

func TestAdvanceSameDaySecondCheckIn(t *testing.T) {
	stats := model.UserStats{CurrentStreak: 4, LongestStreak: 6, TotalCheckIns: 10, LastCheckInDate: "2024-01-04"}

	next := Advance(stats, "2024-01-04", testNow)
	if next.CurrentStreak != 4 {
		t.Errorf("same-day CurrentStreak = %d, want unchanged 4", next.CurrentStreak)
	}
	if next.LongestStreak != 6 {
		t.Errorf("same-day LongestStreak = %d, want unchanged 6", next.LongestStreak)
	}
	if next.TotalCheckIns != 11 {
		t.Errorf("same-day TotalCheckIns = %d, want 11 (always counts)", next.TotalCheckIns)
	}
}

func TestAdvanceGapResets(t *testing.T) {
	tests := []struct {
		name string
		last string
		day  string
	}{
		{"two day gap", "2024-01-01", "2024-01-03"},
		{"week gap", "2024-01-01", "2024-01-08"},
		{"check-in dated before last", "2024-01-05", "2024-01-03"},
		{"malformed last date", "not-a-date", "2024-01-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := model.UserStats{CurrentStreak: 5, LongestStreak: 5, LastCheckInDate: tt.last}
			next := Advance(stats, tt.day, testNow)
			if next.CurrentStreak != 1 {
				t.Errorf("CurrentStreak = %d, want reset to 1", next.CurrentStreak)
			}
			if next.LongestStreak != 5 {
				t.Errorf("LongestStreak = %d, want 5 preserved", next.LongestStreak)
			}
		})
	}
}

func TestLongestStreakNeverBelowCurrent(t *testing.T) {
	stats := model.NewUserStats()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		stats = Advance(stats, day.Format("2006-01-02"), testNow)
		if stats.LongestStreak < stats.CurrentStreak {
			t.Fatalf("day %d: LongestStreak %d < CurrentStreak %d", i, stats.LongestStreak, stats.CurrentStreak)
		}
		day = day.AddDate(0, 0, 1)
	}
	if stats.CurrentStreak != 10 || stats.LongestStreak != 10 {
		t.Errorf("after 10 consecutive days: %d/%d", stats.CurrentStreak, stats.LongestStreak)
	}
}

func TestFirstWeekBadgeUnlocksAtThree(t *testing.T) {
	stats := model.NewUserStats()
	for i, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		stats = Advance(stats, day, testNow)
		if i < 2 && len(stats.Badges) != 0 {
			t.Fatalf("badge unlocked early on day %d: %+v", i+1, stats.Badges)
		}
	}

	if len(stats.Badges) != 1 {
		t.Fatalf("badges = %+v, want exactly first-week", stats.Badges)
	}
	b := stats.Badges[0]
	if b.ID != "first-week" || b.Type != model.BadgeStreak {
		t.Errorf("badge = %+v", b)
	}
	if !b.UnlockedAt.Equal(testNow) {
		t.Errorf("UnlockedAt = %v, want %v", b.UnlockedAt, testNow)
	}
}

func TestFirstWeekBadgeNeverReawarded(t *testing.T) {
	stats := model.NewUserStats()
	days := []string{
		"2024-01-01", "2024-01-02", "2024-01-03", // climb to 3, unlock
		"2024-01-10",               // reset
		"2024-01-11", "2024-01-12", // reclimb to 3
	}
	for _, day := range days {
		stats = Advance(stats, day, testNow)
	}

	if stats.CurrentStreak != 3 {
		t.Fatalf("CurrentStreak = %d, want 3 after reclimb", stats.CurrentStreak)
	}
	count := 0
	for _, b := range stats.Badges {
		if b.ID == "first-week" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("first-week appears %d times, want exactly once ever", count)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	stats := model.UserStats{
		CurrentStreak:   2,
		LongestStreak:   2,
		TotalCheckIns:   2,
		Badges:          []model.Badge{},
		LastCheckInDate: "2024-01-02",
	}
	_ = Advance(stats, "2024-01-03", testNow)

	if stats.CurrentStreak != 2 || stats.TotalCheckIns != 2 || stats.LastCheckInDate != "2024-01-02" {
		t.Errorf("input snapshot mutated: %+v", stats)
	}
	if len(stats.Badges) != 0 {
		t.Errorf("input badge slice mutated: %+v", stats.Badges)
	}
}

func TestAdvanceIsReenterableFromSamePreState(t *testing.T) {
	// A failed save is retried by re-saving the same result, never by
	// re-running Advance on already-advanced state. Equal inputs must give
	// equal outputs.
	stats := model.UserStats{CurrentStreak: 1, LongestStreak: 1, TotalCheckIns: 1, LastCheckInDate: "2024-01-01"}

	a := Advance(stats, "2024-01-02", testNow)
	b := Advance(stats, "2024-01-02", testNow)
	if a.CurrentStreak != b.CurrentStreak || a.TotalCheckIns != b.TotalCheckIns || a.LastCheckInDate != b.LastCheckInDate {
		t.Errorf("Advance not deterministic: %+v vs %+v", a, b)
	}
}

func TestStreakGrowsThenResets(t *testing.T) {
	stats := model.UserStats{CurrentStreak: 1, LongestStreak: 1, LastCheckInDate: "2024-01-01"}

	stats = Advance(stats, "2024-01-02", testNow)
	if stats.CurrentStreak != 2 || stats.LongestStreak != 2 {
		t.Fatalf("after 01-02: %d/%d, want 2/2", stats.CurrentStreak, stats.LongestStreak)
	}

	stats = Advance(stats, "2024-01-05", testNow)
	if stats.CurrentStreak != 1 || stats.LongestStreak != 2 {
		t.Fatalf("after 01-05: %d/%d, want 1/2", stats.CurrentStreak, stats.LongestStreak)
	}
}

func TestRulesListsEarnableBadges(t *testing.T) {
	rules := Rules()
	if len(rules) == 0 {
		t.Fatal("Rules() returned no badges")
	}
	if rules[0].ID != "first-week" {
		t.Errorf("Rules()[0].ID = %q, want first-week", rules[0].ID)
	}
}
