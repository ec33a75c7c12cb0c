// Package progression computes streak transitions and badge unlocks from
// check-in events. Advance is a pure function over the previous stats
// snapshot; persisting the result is the caller's separate step, so a failed
// save can be retried from the same pre-state without double-counting.
package progression

import (
	"time"

	"pennyquest/internal/dates"
	"pennyquest/internal/model"
)

// Advance applies one completed check-in on todayKey to the previous stats
// snapshot and returns the next state. All comparisons read the pre-update
// snapshot.
//
// Streak policy:
//   - second check-in on the same day: streak unchanged
//   - check-in on the day immediately after the last one: streak + 1
//   - anything else (gap, or first check-in ever): streak restarts at 1,
//     since the check-in itself counts as day one
func Advance(stats model.UserStats, todayKey string, now time.Time) model.UserStats {
	next := stats
	next.Badges = append([]model.Badge(nil), stats.Badges...)
	next.TotalCheckIns++

	switch {
	case stats.LastCheckInDate == todayKey:
		// same-day check-ins never double-increment
	case daysFrom(stats.LastCheckInDate, todayKey) == 1:
		next.CurrentStreak = stats.CurrentStreak + 1
	default:
		next.CurrentStreak = 1
	}

	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}
	next.LastCheckInDate = todayKey

	for _, rule := range badgeRules {
		if next.HasBadge(rule.badge.ID) {
			continue
		}
		if rule.unlocked(next) {
			b := rule.badge
			b.UnlockedAt = now
			next.Badges = append(next.Badges, b)
		}
	}

	return next
}

// daysFrom is DaysBetween with malformed or empty keys collapsing to -1,
// which never matches the streak-continuation gap of exactly one day.
func daysFrom(last, today string) int {
	if last == "" {
		return -1
	}
	d, err := dates.DaysBetween(last, today)
	if err != nil {
		return -1
	}
	return d
}
