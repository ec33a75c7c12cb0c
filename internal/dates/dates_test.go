package dates

import (
	"testing"
	"time"
)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		day       string
		wantStart string
		wantEnd   string
	}{
		{"midweek wednesday", "2024-03-13", "2024-03-10", "2024-03-16"},
		{"sunday is its own week start", "2024-03-10", "2024-03-10", "2024-03-16"},
		{"saturday closes the week", "2024-03-16", "2024-03-10", "2024-03-16"},
		{"month rollover", "2024-02-01", "2024-01-28", "2024-02-03"},
		{"year rollover", "2025-01-01", "2024-12-29", "2025-01-04"},
		{"leap day week", "2024-02-29", "2024-02-25", "2024-03-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := WeekStart(tt.day)
			if err != nil {
				t.Fatalf("WeekStart(%q): %v", tt.day, err)
			}
			if start != tt.wantStart {
				t.Errorf("WeekStart(%q) = %q, want %q", tt.day, start, tt.wantStart)
			}
			end, err := WeekEnd(tt.day)
			if err != nil {
				t.Fatalf("WeekEnd(%q): %v", tt.day, err)
			}
			if end != tt.wantEnd {
				t.Errorf("WeekEnd(%q) = %q, want %q", tt.day, end, tt.wantEnd)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2024-01-01", "2024-01-02", 1},
		{"2024-01-01", "2024-01-01", 0},
		{"2024-01-01", "2024-01-05", 4},
		{"2024-01-05", "2024-01-01", -4},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2023-02-28", "2023-03-01", 1},
		{"2023-12-31", "2024-01-01", 1},
		// Spans a US DST transition (Mar 10 2024); must stay whole days.
		{"2024-03-09", "2024-03-11", 2},
	}

	for _, tt := range tests {
		got, err := DaysBetween(tt.a, tt.b)
		if err != nil {
			t.Fatalf("DaysBetween(%q, %q): %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("DaysBetween(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestKeyOfRoundTrip(t *testing.T) {
	k := KeyOf(time.Date(2024, 7, 4, 23, 59, 59, 0, time.Local))
	if k != "2024-07-04" {
		t.Fatalf("KeyOf late evening = %q, want 2024-07-04", k)
	}
	if _, err := Parse(k); err != nil {
		t.Fatalf("Parse(%q): %v", k, err)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "2024-13-01", "01/02/2024", "2024-1-1"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", bad)
		}
	}
}

func TestTodayIsStable(t *testing.T) {
	if Today() != Today() {
		t.Fatal("Today() changed between consecutive calls")
	}
	if !IsToday(Today()) {
		t.Fatal("IsToday(Today()) = false")
	}
}
