// Package dates implements calendar-day rules: date keys, week boundaries,
// and day arithmetic. All math is done on calendar days, never on elapsed
// wall-clock hours, so daylight-saving shifts cannot skew day counts.
package dates

import (
	"fmt"
	"time"
)

// Layout is the canonical calendar-day key format.
const Layout = "2006-01-02"

// Key is a calendar-day key in YYYY-MM-DD form.
type Key = string

// Today returns the device-local calendar date as a key. The same physical
// day always yields the same key regardless of time of day.
func Today() Key {
	return KeyOf(time.Now())
}

// KeyOf converts a time to its local calendar-day key.
func KeyOf(t time.Time) Key {
	return t.Local().Format(Layout)
}

// Parse converts a key back to a midnight UTC time. Parsing in UTC keeps day
// arithmetic free of timezone offsets.
func Parse(k Key) (time.Time, error) {
	t, err := time.Parse(Layout, k)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date key %q: %w", k, err)
	}
	return t, nil
}

// WeekStart returns the key of the Sunday of the week containing k.
// Handles month and year rollover (e.g. a week spanning Jan 31 - Feb 6).
func WeekStart(k Key) (Key, error) {
	t, err := Parse(k)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -int(t.Weekday())).Format(Layout), nil
}

// WeekEnd returns the key of the Saturday of the week containing k.
func WeekEnd(k Key) (Key, error) {
	t, err := Parse(k)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, 6-int(t.Weekday())).Format(Layout), nil
}

// DaysBetween returns the number of calendar days from a to b (positive when
// b is later). Both keys are anchored at midnight UTC before dividing, so the
// result is exact day counts, not hour-division.
func DaysBetween(a, b Key) (int, error) {
	ta, err := Parse(a)
	if err != nil {
		return 0, err
	}
	tb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// DaysSince returns calendar days elapsed from k to today.
func DaysSince(k Key) (int, error) {
	return DaysBetween(k, Today())
}

// IsToday reports whether k is today's local calendar date.
func IsToday(k Key) bool {
	return k == Today()
}
